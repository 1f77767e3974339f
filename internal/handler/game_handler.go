package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gamerater/backend/internal/database"
	"gamerater/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// errCategoryNotFound marks a create/update payload referencing a
// category id that does not exist.
var errCategoryNotFound = errors.New("category not found")

// region --- DTOs ---

// GameInput is the payload for creating or fully replacing a game.
// Categories is a pointer so that update can tell "not supplied"
// (keep the current set) apart from an empty list (clear the set).
type GameInput struct {
	Title               string  `json:"title" binding:"required"`
	Description         string  `json:"description" binding:"required"`
	Designer            string  `json:"designer" binding:"required"`
	YearReleased        int     `json:"year_released" binding:"required"`
	NumberOfPlayers     int     `json:"number_of_players" binding:"required"`
	EstimatedTimeToPlay float64 `json:"estimated_time_to_play" binding:"required"`
	AgeRecommendation   int     `json:"age_recommendation" binding:"required"`
	Categories          *[]uint `json:"categories"`
}

type GameResponse struct {
	ID                  uint               `json:"id"`
	Title               string             `json:"title"`
	Description         string             `json:"description"`
	Designer            string             `json:"designer"`
	YearReleased        int                `json:"year_released"`
	NumberOfPlayers     int                `json:"number_of_players"`
	EstimatedTimeToPlay float64            `json:"estimated_time_to_play"`
	AgeRecommendation   int                `json:"age_recommendation"`
	Player              uint               `json:"player"`
	Categories          []CategoryResponse `json:"categories"`
	CreatedOn           time.Time          `json:"created_on"`
}

func newGameResponse(game models.Game) GameResponse {
	categories := make([]CategoryResponse, 0, len(game.Categories))
	for _, category := range game.Categories {
		if category != nil {
			categories = append(categories, newCategoryResponse(*category))
		}
	}

	return GameResponse{
		ID:                  game.ID,
		Title:               game.Title,
		Description:         game.Description,
		Designer:            game.Designer,
		YearReleased:        game.YearReleased,
		NumberOfPlayers:     game.NumberOfPlayers,
		EstimatedTimeToPlay: game.EstimatedTimeToPlay,
		AgeRecommendation:   game.AgeRecommendation,
		Player:              game.PlayerID,
		Categories:          categories,
		CreatedOn:           game.CreatedOn,
	}
}

// endregion

// findCategories resolves the supplied category ids, failing with
// errCategoryNotFound when any of them is unknown.
func findCategories(tx *gorm.DB, ids []uint) ([]*models.Category, error) {
	categories := make([]*models.Category, 0, len(ids))
	if len(ids) == 0 {
		return categories, nil
	}

	if err := tx.Find(&categories, ids).Error; err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, errCategoryNotFound
	}
	return categories, nil
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a game owned by the authenticated player and links the given categories.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse "Missing field or duplicate title"
// @Failure      404  {object}  ErrorResponse "Category not found"
// @Router       /games [post]
func CreateGame(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game := models.Game{
		Title:               input.Title,
		Description:         input.Description,
		Designer:            input.Designer,
		YearReleased:        input.YearReleased,
		NumberOfPlayers:     input.NumberOfPlayers,
		EstimatedTimeToPlay: input.EstimatedTimeToPlay,
		AgeRecommendation:   input.AgeRecommendation,
		PlayerID:            userID,
	}

	// Insert and category linking are one transaction, so a bad category
	// id cannot leave a half-configured game behind.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if input.Categories != nil {
			categories, err := findCategories(tx, *input.Categories)
			if err != nil {
				return err
			}
			game.Categories = categories
		}
		return tx.Create(&game).Error
	})
	if errors.Is(err, errCategoryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(game))
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves a game with its categories.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      400 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var game models.Game
	if err := database.DB.Preload("Categories").First(&game, id).Error; err != nil {
		// The original API reports a missing game on retrieve as a bad
		// request rather than 404.
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Fully replaces a game's fields; when categories are supplied the whole set is replaced.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int       true  "Game ID"
// @Param        input body      GameInput true  "New Game Info"
// @Success      204   "No Content"
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Failure      500   {object}  ErrorResponse
// @Router       /games/{id} [put]
func UpdateGame(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game.Title = input.Title
	game.Description = input.Description
	game.Designer = input.Designer
	game.YearReleased = input.YearReleased
	game.NumberOfPlayers = input.NumberOfPlayers
	game.EstimatedTimeToPlay = input.EstimatedTimeToPlay
	game.AgeRecommendation = input.AgeRecommendation

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if input.Categories != nil {
			categories, err := findCategories(tx, *input.Categories)
			if err != nil {
				return err
			}
			// Clear-then-add: the supplied set replaces the current one.
			if err := tx.Model(&game).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}
		return tx.Save(&game).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game together with its category links, pictures, ratings and reviews.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      204 "No Content"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      500 {object} ErrorResponse
// @Router       /games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", game.ID).Delete(&models.GameCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", game.ID).Delete(&models.GamePicture{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", game.ID).Delete(&models.GameRating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", game.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&game).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetGames godoc
// @Summary      List games
// @Description  Returns all games newest first; with my_games=true only the authenticated player's games.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        my_games query string false "Set to true to list only your games"
// @Success      200 {array} GameResponse
// @Failure      500 {object} ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	query := database.DB.Preload("Categories").Order("created_on DESC")
	if c.Query("my_games") == "true" {
		query = query.Where("player_id = ?", userID)
	}

	var games []models.Game
	if err := query.Find(&games).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}

	c.JSON(http.StatusOK, response)
}
