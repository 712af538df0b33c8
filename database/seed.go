package database

import (
	"coursehub/config"
	"coursehub/models"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminAccount creates the platform admin from ADMIN_EMAIL and
// ADMIN_PASSWORD if no account exists for that email yet
func SeedAdminAccount(db *gorm.DB) {
	email := config.AppConfig.AdminEmail
	password := config.AppConfig.AdminPassword
	if email == "" || password == "" {
		return
	}

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "Platform Admin",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error seeding admin account: %v", err)
		return
	}

	log.Printf("Admin account created for %s", email)
}
