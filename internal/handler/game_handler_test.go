package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"gamerater/backend/internal/database"
	"gamerater/backend/internal/handler"
	"gamerater/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGameWithCategories(t *testing.T) {
	router := setupRouter(t)
	token := registerPlayer(t, router, "alice")

	strategy := createCategory(t, "Strategy")
	family := createCategory(t, "Family")

	game := createGame(t, router, token, "Catan", []uint{strategy.ID, family.ID})

	assert.Equal(t, "Catan", game.Title)
	assert.NotZero(t, game.ID)
	assert.NotZero(t, game.Player)
	require.Len(t, game.Categories, 2)
	labels := []string{game.Categories[0].Label, game.Categories[1].Label}
	assert.ElementsMatch(t, []string{"Strategy", "Family"}, labels)
}

func TestCreateGameDuplicateTitle(t *testing.T) {
	router := setupRouter(t)
	token := registerPlayer(t, router, "alice")

	createGame(t, router, token, "Catan", nil)

	resp := performRequest(router, http.MethodPost, "/games", token, gameInput("Catan", nil))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateGameValidation(t *testing.T) {
	router := setupRouter(t)
	token := registerPlayer(t, router, "alice")

	resp := performRequest(router, http.MethodPost, "/games", token, map[string]interface{}{
		"title": "Incomplete",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateGameUnknownCategoryRollsBack(t *testing.T) {
	router := setupRouter(t)
	token := registerPlayer(t, router, "alice")

	resp := performRequest(router, http.MethodPost, "/games", token, gameInput("Catan", []uint{999}))
	assert.Equal(t, http.StatusNotFound, resp.Code)

	// The insert must not survive the failed category link.
	var count int64
	database.DB.Model(&models.Game{}).Count(&count)
	assert.Zero(t, count)
}

func TestRetrieveGame(t *testing.T) {
	router := setupRouter(t)
	token := registerPlayer(t, router, "alice")

	game := createGame(t, router, token, "Azul", nil)

	resp := performRequest(router, http.MethodGet, fmt.Sprintf("/games/%d", game.ID), token, nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	var fetched handler.GameResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &fetched))
	assert.Equal(t, "Azul", fetched.Title)
	assert.Equal(t, 90.5, fetched.EstimatedTimeToPlay)

	// Missing game on retrieve maps to 400, not 404
	resp = performRequest(router, http.MethodGet, "/games/999", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateGameReplacesCategories(t *testing.T) {
	router := setupRouter(t)
	token := registerPlayer(t, router, "alice")

	strategy := createCategory(t, "Strategy")
	family := createCategory(t, "Family")
	party := createCategory(t, "Party")

	game := createGame(t, router, token, "Catan", []uint{strategy.ID, family.ID})

	input := gameInput("Catan", []uint{party.ID})
	resp := performRequest(router, http.MethodPut, fmt.Sprintf("/games/%d", game.ID), token, input)
	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Empty(t, resp.Body.String())

	resp = performRequest(router, http.MethodGet, fmt.Sprintf("/games/%d", game.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var fetched handler.GameResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &fetched))
	require.Len(t, fetched.Categories, 1)
	assert.Equal(t, "Party", fetched.Categories[0].Label)
}

func TestUpdateGameWithoutCategoriesKeepsSet(t *testing.T) {
	router := setupRouter(t)
	token := registerPlayer(t, router, "alice")

	strategy := createCategory(t, "Strategy")
	game := createGame(t, router, token, "Catan", []uint{strategy.ID})

	input := gameInput("Catan: Seafarers", nil)
	resp := performRequest(router, http.MethodPut, fmt.Sprintf("/games/%d", game.ID), token, input)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = performRequest(router, http.MethodGet, fmt.Sprintf("/games/%d", game.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var fetched handler.GameResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &fetched))
	assert.Equal(t, "Catan: Seafarers", fetched.Title)
	assert.Len(t, fetched.Categories, 1)
}

func TestUpdateGameNotFound(t *testing.T) {
	router := setupRouter(t)
	token := registerPlayer(t, router, "alice")

	resp := performRequest(router, http.MethodPut, "/games/999", token, gameInput("Ghost", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteGameCascades(t *testing.T) {
	router := setupRouter(t)
	aliceToken := registerPlayer(t, router, "alice")
	bobToken := registerPlayer(t, router, "bob")

	strategy := createCategory(t, "Strategy")
	game := createGame(t, router, aliceToken, "Catan", []uint{strategy.ID})

	resp := performRequest(router, http.MethodPost, "/reviews", bobToken, map[string]interface{}{
		"game_id": game.ID,
		"review":  "Trading is the heart of it.",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = performRequest(router, http.MethodPost, "/ratings", bobToken, map[string]interface{}{
		"game_id": game.ID,
		"rating":  8,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = performRequest(router, http.MethodPost, "/pictures", bobToken, map[string]interface{}{
		"game_id":    game.ID,
		"image_path": "/uploads/catan.jpg",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = performRequest(router, http.MethodDelete, fmt.Sprintf("/games/%d", game.ID), aliceToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	// Dependents are gone
	resp = performRequest(router, http.MethodGet, fmt.Sprintf("/reviews?game_id=%d", game.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var reviews []handler.ReviewResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &reviews))
	assert.Empty(t, reviews)

	resp = performRequest(router, http.MethodGet, fmt.Sprintf("/ratings?game_id=%d", game.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var ratings []handler.RatingResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &ratings))
	assert.Empty(t, ratings)

	var links int64
	database.DB.Model(&models.GameCategory{}).Where("game_id = ?", game.ID).Count(&links)
	assert.Zero(t, links)

	// The game itself is gone; a repeat delete is a 404
	resp = performRequest(router, http.MethodGet, fmt.Sprintf("/games/%d", game.ID), aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = performRequest(router, http.MethodDelete, fmt.Sprintf("/games/%d", game.ID), aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListGamesOrderAndFilter(t *testing.T) {
	router := setupRouter(t)
	aliceToken := registerPlayer(t, router, "alice")
	bobToken := registerPlayer(t, router, "bob")

	createGame(t, router, aliceToken, "Catan", nil)
	time.Sleep(10 * time.Millisecond)
	createGame(t, router, bobToken, "Azul", nil)
	time.Sleep(10 * time.Millisecond)
	createGame(t, router, aliceToken, "Wingspan", nil)

	resp := performRequest(router, http.MethodGet, "/games", aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var games []handler.GameResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &games))
	require.Len(t, games, 3)
	assert.Equal(t, "Wingspan", games[0].Title)
	assert.Equal(t, "Azul", games[1].Title)
	assert.Equal(t, "Catan", games[2].Title)

	// my_games restricts to the authenticated player's games
	resp = performRequest(router, http.MethodGet, "/games?my_games=true", aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &games))
	require.Len(t, games, 2)
	for _, game := range games {
		assert.NotEqual(t, "Azul", game.Title)
	}
}
