package handlers_test

import (
	"net/http"
	"regexp"
	"testing"

	"localchef-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUserAndRequest(t *testing.T, r *gin.Engine, email string, reqType string) models.RoleRequest {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/users", map[string]any{
		"email": email, "name": "Test User",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/requests", map[string]any{
		"email": email, "type": reqType,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var request models.RoleRequest
	decodeBody(t, w, &request)
	require.NotEmpty(t, request.ID)
	require.Equal(t, models.RequestPending, request.Status)
	return request
}

func getUser(t *testing.T, r *gin.Engine, email string) models.User {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, "/users/"+email, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var user models.User
	decodeBody(t, w, &user)
	return user
}

func TestApproveChefRequest(t *testing.T) {
	r := setupRouter(t)
	request := createUserAndRequest(t, r, "wannabe-chef@example.com", "chef")

	w := doJSON(t, r, http.MethodPatch, "/requests/"+request.ID, map[string]any{
		"status": "approved",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	user := getUser(t, r, "wannabe-chef@example.com")
	assert.Equal(t, models.RoleChef, user.Role)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), user.ChefID, "chef id must be a 4-digit string")
}

func TestApproveAdminRequest(t *testing.T) {
	r := setupRouter(t)
	request := createUserAndRequest(t, r, "wannabe-admin@example.com", "admin")

	w := doJSON(t, r, http.MethodPatch, "/requests/"+request.ID, map[string]any{
		"status": "approved",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	user := getUser(t, r, "wannabe-admin@example.com")
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Empty(t, user.ChefID)
}

func TestApproveUnknownTypeLeavesUserAlone(t *testing.T) {
	r := setupRouter(t)
	request := createUserAndRequest(t, r, "someone@example.com", "moderator")

	w := doJSON(t, r, http.MethodPatch, "/requests/"+request.ID, map[string]any{
		"status": "approved",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	user := getUser(t, r, "someone@example.com")
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Empty(t, user.ChefID)
}

func TestRejectRequestLeavesUserAlone(t *testing.T) {
	r := setupRouter(t)
	request := createUserAndRequest(t, r, "rejected@example.com", "chef")

	w := doJSON(t, r, http.MethodPatch, "/requests/"+request.ID, map[string]any{
		"status": "rejected",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	user := getUser(t, r, "rejected@example.com")
	assert.Equal(t, models.RoleUser, user.Role)

	// The status itself is persisted.
	w = doJSON(t, r, http.MethodGet, "/requests", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var requests []models.RoleRequest
	decodeBody(t, w, &requests)
	require.Len(t, requests, 1)
	assert.Equal(t, models.RequestRejected, requests[0].Status)
}

func TestPatchMissingRequestIs404(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users", map[string]any{
		"email": "bystander@example.com",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/requests/no-such-id", map[string]any{
		"status": "approved",
	}, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// No user mutation happened.
	user := getUser(t, r, "bystander@example.com")
	assert.Equal(t, models.RoleUser, user.Role)
}
