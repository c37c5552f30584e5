package helper

import (
	"cinema_booking/model"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAccountByUsername(db *gorm.DB, username string) (*model.Account, error) {
	var account model.Account
	if err := db.Where(&model.Account{Username: username}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["accountId"] = tokenClaim.AccountId
	claims["username"] = tokenClaim.Username
	claims["isAdmin"] = tokenClaim.IsAdmin
	claims["sessionId"] = tokenClaim.SessionId
	claims["exp"] = time.Now().Add(time.Hour * 12).Unix()

	return token.SignedString(JwtSecret)
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["accountId"] = tokenClaim.AccountId
	claims["username"] = tokenClaim.Username
	claims["sessionId"] = tokenClaim.SessionId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(JwtSecret)
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})
}

// ClaimFromToken rebuilds the TokenClaim carried by a parsed JWT.
func ClaimFromToken(token *jwt.Token) (model.TokenClaim, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, errors.New("malformed claims")
	}
	accountId, ok := claims["accountId"].(float64)
	if !ok {
		return model.TokenClaim{}, errors.New("malformed claims")
	}
	username, _ := claims["username"].(string)
	isAdmin, _ := claims["isAdmin"].(bool)
	sessionId, _ := claims["sessionId"].(string)
	return model.TokenClaim{
		AccountId: uint(accountId),
		Username:  username,
		IsAdmin:   isAdmin,
		SessionId: sessionId,
	}, nil
}
