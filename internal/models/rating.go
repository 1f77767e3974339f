package models

import "time"

// GameRating is a 1-10 score a player gave a game, at most one per
// (game, player) pair.
type GameRating struct {
	ID        uint      `gorm:"primaryKey"`
	GameID    uint      `gorm:"not null;uniqueIndex:idx_ratings_game_player"`
	PlayerID  uint      `gorm:"not null;uniqueIndex:idx_ratings_game_player"`
	Rating    int       `gorm:"not null"`
	CreatedOn time.Time `gorm:"autoCreateTime"`
	UpdatedOn time.Time `gorm:"autoUpdateTime"`

	Game   Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Player User `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}
