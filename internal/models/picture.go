package models

import "time"

// GamePicture is a photo a player attached to a game. The image itself
// lives outside the database; only its path is stored.
type GamePicture struct {
	ID         uint    `gorm:"primaryKey"`
	GameID     uint    `gorm:"not null;index"`
	PlayerID   uint    `gorm:"not null"`
	ImagePath  string  `gorm:"size:500;not null"`
	Caption    *string
	UploadedOn time.Time `gorm:"autoCreateTime"`

	Game   Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Player User `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}
