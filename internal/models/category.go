package models

import "gorm.io/gorm"

// Category represents a board game category (e.g. "Strategy", "Party").
type Category struct {
	gorm.Model
	Label string `gorm:"size:255;unique;not null"`
}
