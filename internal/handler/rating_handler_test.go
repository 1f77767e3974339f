package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"gamerater/backend/internal/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRatingBounds(t *testing.T) {
	router := setupRouter(t)
	token := registerPlayer(t, router, "alice")

	game := createGame(t, router, token, "Catan", nil)

	for _, rating := range []int{0, 11, -3} {
		resp := performRequest(router, http.MethodPost, "/ratings", token, map[string]interface{}{
			"game_id": game.ID,
			"rating":  rating,
		})
		assert.Equal(t, http.StatusBadRequest, resp.Code, "rating %d should be rejected", rating)
	}

	resp := performRequest(router, http.MethodPost, "/ratings", token, map[string]interface{}{
		"game_id": game.ID,
		"rating":  10,
	})
	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestCreateRatingUpsert(t *testing.T) {
	router := setupRouter(t)
	token := registerPlayer(t, router, "alice")

	game := createGame(t, router, token, "Catan", nil)

	resp := performRequest(router, http.MethodPost, "/ratings", token, map[string]interface{}{
		"game_id": game.ID,
		"rating":  5,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	// A repeat rating from the same player replaces the score
	resp = performRequest(router, http.MethodPost, "/ratings", token, map[string]interface{}{
		"game_id": game.ID,
		"rating":  9,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(router, http.MethodGet, fmt.Sprintf("/ratings?game_id=%d", game.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var ratings []handler.RatingResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &ratings))
	require.Len(t, ratings, 1)
	assert.Equal(t, 9, ratings[0].Rating)
}

func TestCreateRatingGameNotFound(t *testing.T) {
	router := setupRouter(t)
	token := registerPlayer(t, router, "alice")

	resp := performRequest(router, http.MethodPost, "/ratings", token, map[string]interface{}{
		"game_id": 999,
		"rating":  7,
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteRatingOwnership(t *testing.T) {
	router := setupRouter(t)
	aliceToken := registerPlayer(t, router, "alice")
	bobToken := registerPlayer(t, router, "bob")

	game := createGame(t, router, aliceToken, "Catan", nil)

	resp := performRequest(router, http.MethodPost, "/ratings", aliceToken, map[string]interface{}{
		"game_id": game.ID,
		"rating":  6,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var rating handler.RatingResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &rating))

	resp = performRequest(router, http.MethodDelete, fmt.Sprintf("/ratings/%d", rating.ID), bobToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = performRequest(router, http.MethodDelete, fmt.Sprintf("/ratings/%d", rating.ID), aliceToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = performRequest(router, http.MethodDelete, fmt.Sprintf("/ratings/%d", rating.ID), aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
