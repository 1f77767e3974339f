package models

import "gorm.io/gorm"

// User represents a registered player.
type User struct {
	gorm.Model
	Username     string `gorm:"size:255;unique;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	FirstName    string `gorm:"size:255"`
	LastName     string `gorm:"size:255"`
	PasswordHash string `gorm:"size:255;not null"`
}
