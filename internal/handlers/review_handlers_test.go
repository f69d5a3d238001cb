package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/secureshop/backend/internal/models"
)

func TestCreateReviewRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/products/1/review", map[string]interface{}{"rating": 5})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateReviewValidation(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.login("user", "user123")

	for _, rating := range []int{0, -1, 6} {
		rec := env.do(http.MethodPost, "/api/products/1/review",
			map[string]interface{}{"rating": rating, "comment": "ok"}, withBearer(token))
		require.Equal(t, http.StatusBadRequest, rec.Code, "rating %d", rating)
	}

	rec := env.do(http.MethodPost, "/api/products/1/review",
		map[string]interface{}{"rating": 4, "comment": strings.Repeat("a", 501)}, withBearer(token))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/api/products/999/review",
		map[string]interface{}{"rating": 4, "comment": "ok"}, withBearer(token))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateAndListReviews(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.login("user", "user123")

	rec := env.do(http.MethodPost, "/api/products/1/review",
		map[string]interface{}{"rating": 4, "comment": "solid laptop"}, withBearer(token))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool          `json:"success"`
		Review  models.Review `json:"review"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, 4, resp.Review.Rating)
	require.Equal(t, uint(2), resp.Review.UserID)
	require.NotZero(t, resp.Review.ID)

	rec = env.do(http.MethodGet, "/api/products/1/reviews", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var reviews []models.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	require.Equal(t, "solid laptop", reviews[0].Comment)

	// Other products stay untouched.
	rec = env.do(http.MethodGet, "/api/products/2/reviews", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}
