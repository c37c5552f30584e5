package database

import (
	"cinema_booking/config"
	"cinema_booking/model"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData creates the initial admin account when none exists.
func SeedData(db *gorm.DB) {
	var count int64
	db.Model(&model.Account{}).Where("is_admin = ?", true).Count(&count)
	if count > 0 {
		return
	}

	username := config.Config("ADMIN_USERNAME")
	password := config.Config("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	admin := model.Account{Username: username, Password: string(hash), IsAdmin: true}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	log.Printf("seeded admin account '%s'", username)
}
