package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"localchef-api/middleware"
	"localchef-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bearer(t *testing.T, email string) map[string]string {
	t.Helper()
	token, err := middleware.GenerateToken(email, testSecret, time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestListOrdersRequiresCredential(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/orders?email=buyer@example.com", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/orders?email=buyer@example.com", nil, map[string]string{
		"Authorization": "Bearer not.a.token",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListOrdersByEmail(t *testing.T) {
	r := setupRouter(t)

	// Creating an order is unauthenticated.
	for _, o := range []map[string]any{
		{"email": "buyer@example.com", "meal_id": "m1", "meal_name": "Dal", "price": 4.0, "quantity": 2},
		{"email": "buyer@example.com", "meal_id": "m2", "meal_name": "Naan", "price": 1.5, "quantity": 4},
		{"email": "other@example.com", "meal_id": "m1", "meal_name": "Dal", "price": 4.0, "quantity": 1},
	} {
		w := doJSON(t, r, http.MethodPost, "/orders", o, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/orders?email=buyer@example.com", nil, bearer(t, "buyer@example.com"))
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	decodeBody(t, w, &orders)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, "buyer@example.com", o.Email)
		assert.False(t, o.CreatedAt.IsZero())
	}
}

func TestCreateOrderMissingEmail(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(t, r, http.MethodPost, "/orders", map[string]any{"meal_id": "m1"}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
