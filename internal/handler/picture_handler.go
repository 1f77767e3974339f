package handler

import (
	"net/http"
	"strconv"
	"time"

	"gamerater/backend/internal/database"
	"gamerater/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type PictureInput struct {
	GameID    uint    `json:"game_id" binding:"required"`
	ImagePath string  `json:"image_path" binding:"required"`
	Caption   *string `json:"caption"`
}

type PictureResponse struct {
	ID         uint           `json:"id"`
	Game       uint           `json:"game"`
	GameTitle  string         `json:"game_title"`
	Player     PlayerResponse `json:"player"`
	ImagePath  string         `json:"image_path"`
	Caption    *string        `json:"caption"`
	UploadedOn time.Time      `json:"uploaded_on"`
}

func newPictureResponse(picture models.GamePicture) PictureResponse {
	return PictureResponse{
		ID:         picture.ID,
		Game:       picture.GameID,
		GameTitle:  picture.Game.Title,
		Player:     newPlayerResponse(picture.Player),
		ImagePath:  picture.ImagePath,
		Caption:    picture.Caption,
		UploadedOn: picture.UploadedOn,
	}
}

// CreatePicture godoc
// @Summary      Attach a picture to a game
// @Tags         pictures
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PictureInput true "Picture Info"
// @Success      201  {object}  PictureResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /pictures [post]
func CreatePicture(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input PictureInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, input.GameID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	picture := models.GamePicture{
		GameID:    game.ID,
		PlayerID:  userID,
		ImagePath: input.ImagePath,
		Caption:   input.Caption,
	}
	if err := database.DB.Create(&picture).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Preload("Game").Preload("Player").First(&picture, picture.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, newPictureResponse(picture))
}

// GetPictures godoc
// @Summary      List pictures
// @Description  Returns all pictures newest first, optionally filtered to one game.
// @Tags         pictures
// @Produce      json
// @Security     BearerAuth
// @Param        game_id query int false "Only pictures for this game"
// @Success      200 {array} PictureResponse
// @Failure      500 {object} ErrorResponse
// @Router       /pictures [get]
func GetPictures(c *gin.Context) {
	query := database.DB.Preload("Game").Preload("Player").Order("uploaded_on DESC")
	if gameID := c.Query("game_id"); gameID != "" {
		query = query.Where("game_id = ?", gameID)
	}

	var pictures []models.GamePicture
	if err := query.Find(&pictures).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]PictureResponse, 0, len(pictures))
	for _, picture := range pictures {
		response = append(response, newPictureResponse(picture))
	}

	c.JSON(http.StatusOK, response)
}

// DeletePicture godoc
// @Summary      Delete a picture
// @Description  Only the uploading player may delete it.
// @Tags         pictures
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Picture ID"
// @Success      204 "No Content"
// @Failure      403 {object} ErrorResponse "Not the picture's uploader"
// @Failure      404 {object} ErrorResponse "Picture not found"
// @Failure      500 {object} ErrorResponse
// @Router       /pictures/{id} [delete]
func DeletePicture(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, _ := strconv.Atoi(c.Param("id"))

	var picture models.GamePicture
	if err := database.DB.First(&picture, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Picture not found"})
		return
	}

	if picture.PlayerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own pictures"})
		return
	}

	if err := database.DB.Delete(&picture).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
