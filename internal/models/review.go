package models

import "time"

// Review is a player's written review of a game.
// The (game, player) unique index backs the one-review-per-player-per-game
// rule; a repeat POST updates the existing row instead of failing.
type Review struct {
	ID        uint      `gorm:"primaryKey"`
	GameID    uint      `gorm:"not null;uniqueIndex:idx_reviews_game_player"`
	PlayerID  uint      `gorm:"not null;uniqueIndex:idx_reviews_game_player"`
	Review    string    `gorm:"not null"`
	CreatedOn time.Time `gorm:"autoCreateTime"`
	UpdatedOn time.Time `gorm:"autoUpdateTime"`

	Game   Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	Player User `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}
