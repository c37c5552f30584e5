package handler

import (
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func Register(c *fiber.Ctx) error {
	input := c.Locals("input").(model.RegisterInput)
	db := database.DB

	existing, err := helper.GetAccountByUsername(db, input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.USERNAME_TAKEN, errors.New("username exists"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	account := model.Account{Username: input.Username, Password: hash}
	if err := db.Create(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Registration logs the account straight in.
	return issueTokens(c, &account)
}

func Login(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LoginInput)
	db := database.DB

	account, err := helper.GetAccountByUsername(db, input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_USERNAME, errors.New("username not exists"))
	}
	if !helper.CheckPasswordHash(input.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match username"))
	}

	return issueTokens(c, account)
}

func issueTokens(c *fiber.Ctx, account *model.Account) error {
	claim := model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		IsAdmin:   account.IsAdmin,
		SessionId: uuid.New().String(),
	}

	if !account.IsAdmin {
		if err := helper.CreateSession(c.Context(), claim.AccountId, claim.SessionId); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	token, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"tokens":  model.TokenData{AccessToken: token, RefreshToken: refreshToken},
		"account": fiber.Map{
			"id":       account.ID,
			"username": account.Username,
			"isAdmin":  account.IsAdmin,
		},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	type refreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	token, err := helper.ParseToken(req.RefreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHENTICATED, err)
	}
	claim, err := helper.ClaimFromToken(token)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHENTICATED, err)
	}

	if !claim.IsAdmin {
		alive, err := helper.TouchSession(c.Context(), claim.AccountId, claim.SessionId)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if !alive {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.SESSION_EXPIRED, errors.New("session not found"))
		}
	}

	access, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{
		AccessToken:  access,
		RefreshToken: req.RefreshToken,
	})
}

func Logout(c *fiber.Ctx) error {
	claim, ok := helper.ClaimsFromCtx(c)
	if ok && !claim.IsAdmin {
		if err := helper.DeleteSession(c.Context(), claim.AccountId, claim.SessionId); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	c.ClearCookie("access_token")
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "logged out"})
}
