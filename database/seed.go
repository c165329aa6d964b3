package database

import (
	"errors"
	"log"

	"github.com/taskmanager-simple/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	devUserEmail    = "user@gmail.com"
	devUserPassword = "7894"
)

// SeedDevUser inserts the demo account if it does not exist yet. It is only
// called from main when SEED_DEV_USER is set, never during request handling.
func SeedDevUser() error {
	var existing models.User
	err := DB.Where("email = ?", devUserEmail).First(&existing).Error
	if err == nil {
		return nil // already seeded
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(devUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    devUserEmail,
		Password: string(hashed),
	}
	if err := DB.Create(&user).Error; err != nil {
		return err
	}

	log.Printf("🌱 Seeded dev user %s", devUserEmail)
	return nil
}
