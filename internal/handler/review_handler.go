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

// region --- DTOs ---

type ReviewInput struct {
	GameID uint   `json:"game_id" binding:"required"`
	Review string `json:"review" binding:"required"`
}

type ReviewUpdateInput struct {
	Review string `json:"review" binding:"required"`
}

type ReviewResponse struct {
	ID        uint           `json:"id"`
	Game      uint           `json:"game"`
	GameTitle string         `json:"game_title"`
	Player    PlayerResponse `json:"player"`
	Review    string         `json:"review"`
	CreatedOn time.Time      `json:"created_on"`
}

// newReviewResponse expects the review's Game and Player associations
// to be preloaded.
func newReviewResponse(review models.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		Game:      review.GameID,
		GameTitle: review.Game.Title,
		Player:    newPlayerResponse(review.Player),
		Review:    review.Review,
		CreatedOn: review.CreatedOn,
	}
}

// endregion

// CreateReview godoc
// @Summary      Create or update the player's review of a game
// @Description  A player has at most one review per game. A repeat POST updates the existing review and returns 200 instead of 201.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ReviewInput true "Review Info"
// @Success      201  {object}  ReviewResponse "Created"
// @Success      200  {object}  ReviewResponse "Existing review updated"
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /reviews [post]
func CreateReview(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, input.GameID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	// The status code alone depends on this pre-read; the write below is
	// a single atomic upsert, so racing writers cannot violate the
	// one-review-per-player-per-game constraint.
	var existing int64
	database.DB.Model(&models.Review{}).
		Where("game_id = ? AND player_id = ?", game.ID, userID).
		Count(&existing)

	review := models.Review{
		GameID:   game.ID,
		PlayerID: userID,
		Review:   input.Review,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_id"}, {Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"review", "updated_on"}),
	}).Create(&review).Error
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Reload into a fresh value: after a conflicting insert the driver may
	// report a stale row id, which First would otherwise use as a condition.
	var saved models.Review
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
	c.JSON(status, newReviewResponse(saved))
}

// GetReviews godoc
// @Summary      List reviews
// @Description  Returns all reviews newest first, optionally filtered to one game.
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        game_id query int false "Only reviews for this game"
// @Success      200 {array} ReviewResponse
// @Failure      500 {object} ErrorResponse
// @Router       /reviews [get]
func GetReviews(c *gin.Context) {
	query := database.DB.Preload("Game").Preload("Player").Order("created_on DESC")
	if gameID := c.Query("game_id"); gameID != "" {
		query = query.Where("game_id = ?", gameID)
	}

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		response = append(response, newReviewResponse(review))
	}

	c.JSON(http.StatusOK, response)
}

// GetReviewByID godoc
// @Summary      Get a single review by ID
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Review ID"
// @Success      200 {object} ReviewResponse
// @Failure      400 {object} ErrorResponse "Invalid ID"
// @Failure      404 {object} ErrorResponse "Review not found"
// @Router       /reviews/{id} [get]
func GetReviewByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var review models.Review
	if err := database.DB.Preload("Game").Preload("Player").First(&review, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	c.JSON(http.StatusOK, newReviewResponse(review))
}

// UpdateReview godoc
// @Summary      Update a review
// @Description  Replaces the review text. Only the review's author may update it.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int               true "Review ID"
// @Param        input body ReviewUpdateInput true "New review text"
// @Success      204   "No Content"
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Not the review's author"
// @Failure      404   {object}  ErrorResponse "Review not found"
// @Failure      500   {object}  ErrorResponse
// @Router       /reviews/{id} [put]
func UpdateReview(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, _ := strconv.Atoi(c.Param("id"))

	var review models.Review
	if err := database.DB.First(&review, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	if review.PlayerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only edit your own reviews"})
		return
	}

	var input ReviewUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review.Review = input.Review
	if err := database.DB.Save(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteReview godoc
// @Summary      Delete a review
// @Description  Only the review's author may delete it.
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Review ID"
// @Success      204 "No Content"
// @Failure      403 {object} ErrorResponse "Not the review's author"
// @Failure      404 {object} ErrorResponse "Review not found"
// @Failure      500 {object} ErrorResponse
// @Router       /reviews/{id} [delete]
func DeleteReview(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, _ := strconv.Atoi(c.Param("id"))

	var review models.Review
	if err := database.DB.First(&review, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	if review.PlayerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own reviews"})
		return
	}

	if err := database.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
