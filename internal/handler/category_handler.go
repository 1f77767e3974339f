package handler

import (
	"net/http"
	"strconv"

	"gamerater/backend/internal/database"
	"gamerater/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type CategoryResponse struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

func newCategoryResponse(category models.Category) CategoryResponse {
	return CategoryResponse{
		ID:    category.ID,
		Label: category.Label,
	}
}

// GetCategories godoc
// @Summary      List categories
// @Description  Returns all categories sorted by label.
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   CategoryResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /categories [get]
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.Order("label ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, newCategoryResponse(category))
	}

	c.JSON(http.StatusOK, response)
}

// GetCategoryByID godoc
// @Summary      Get a single category by ID
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Success      200 {object} CategoryResponse
// @Failure      400 {object} ErrorResponse "Invalid ID"
// @Failure      404 {object} ErrorResponse "Category not found"
// @Router       /categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, newCategoryResponse(category))
}
