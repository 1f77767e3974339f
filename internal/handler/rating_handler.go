package handler

import (
	"net/http"
	"strconv"
	"time"

	"gamerater/backend/internal/database"
	"gamerater/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type RatingInput struct {
	GameID uint `json:"game_id" binding:"required"`
	Rating int  `json:"rating" binding:"required,min=1,max=10"`
}

type RatingResponse struct {
	ID        uint           `json:"id"`
	Game      uint           `json:"game"`
	GameTitle string         `json:"game_title"`
	Player    PlayerResponse `json:"player"`
	Rating    int            `json:"rating"`
	CreatedOn time.Time      `json:"created_on"`
	UpdatedOn time.Time      `json:"updated_on"`
}

func newRatingResponse(rating models.GameRating) RatingResponse {
	return RatingResponse{
		ID:        rating.ID,
		Game:      rating.GameID,
		GameTitle: rating.Game.Title,
		Player:    newPlayerResponse(rating.Player),
		Rating:    rating.Rating,
		CreatedOn: rating.CreatedOn,
		UpdatedOn: rating.UpdatedOn,
	}
}

// CreateRating godoc
// @Summary      Rate a game
// @Description  Records a 1-10 rating. A player has at most one rating per game; a repeat POST replaces it and returns 200.
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body RatingInput true "Rating Info"
// @Success      201  {object}  RatingResponse "Created"
// @Success      200  {object}  RatingResponse "Existing rating replaced"
// @Failure      400  {object}  ErrorResponse "Missing field or rating out of range"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /ratings [post]
func CreateRating(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, input.GameID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	var existing int64
	database.DB.Model(&models.GameRating{}).
		Where("game_id = ? AND player_id = ?", game.ID, userID).
		Count(&existing)

	rating := models.GameRating{
		GameID:   game.ID,
		PlayerID: userID,
		Rating:   input.Rating,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_id"}, {Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_on"}),
	}).Create(&rating).Error
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var saved models.GameRating
	if err := database.DB.Preload("Game").Preload("Player").
		Where("game_id = ? AND player_id = ?", game.ID, userID).
		First(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusCreated
	if existing > 0 {
		status = http.StatusOK
	}
	c.JSON(status, newRatingResponse(saved))
}

// GetRatings godoc
// @Summary      List ratings
// @Description  Returns all ratings, most recently updated first, optionally filtered to one game.
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Param        game_id query int false "Only ratings for this game"
// @Success      200 {array} RatingResponse
// @Failure      500 {object} ErrorResponse
// @Router       /ratings [get]
func GetRatings(c *gin.Context) {
	query := database.DB.Preload("Game").Preload("Player").Order("updated_on DESC")
	if gameID := c.Query("game_id"); gameID != "" {
		query = query.Where("game_id = ?", gameID)
	}

	var ratings []models.GameRating
	if err := query.Find(&ratings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		response = append(response, newRatingResponse(rating))
	}

	c.JSON(http.StatusOK, response)
}

// DeleteRating godoc
// @Summary      Delete a rating
// @Description  Only the rating's author may delete it.
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Rating ID"
// @Success      204 "No Content"
// @Failure      403 {object} ErrorResponse "Not the rating's author"
// @Failure      404 {object} ErrorResponse "Rating not found"
// @Failure      500 {object} ErrorResponse
// @Router       /ratings/{id} [delete]
func DeleteRating(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, _ := strconv.Atoi(c.Param("id"))

	var rating models.GameRating
	if err := database.DB.First(&rating, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		return
	}

	if rating.PlayerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own ratings"})
		return
	}

	if err := database.DB.Delete(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
