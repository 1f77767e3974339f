package models

import "time"

// Game is a board game catalog entry, owned by the player who created it.
type Game struct {
	ID                  uint      `gorm:"primaryKey"`
	Title               string    `gorm:"size:255;unique;not null"`
	Description         string    `gorm:"not null"`
	Designer            string    `gorm:"size:255;not null"`
	YearReleased        int       `gorm:"not null"`
	NumberOfPlayers     int       `gorm:"not null"`
	EstimatedTimeToPlay float64   `gorm:"not null"`
	AgeRecommendation   int       `gorm:"not null"`
	PlayerID            uint      `gorm:"not null;index"`
	CreatedOn           time.Time `gorm:"autoCreateTime"`

	Player     User        `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
	Categories []*Category `gorm:"many2many:game_categories;"`
}

// GameCategory is the join row between a game and a category.
// The composite primary key keeps a game from being linked to the
// same category twice.
type GameCategory struct {
	GameID     uint `gorm:"primaryKey"`
	CategoryID uint `gorm:"primaryKey"`
}
