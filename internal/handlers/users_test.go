package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sems-dev/event-scheduling-api/internal/dto"
	"github.com/sems-dev/event-scheduling-api/internal/middleware"
	"github.com/sems-dev/event-scheduling-api/internal/models"
	"github.com/sems-dev/event-scheduling-api/internal/utils"
	"github.com/stretchr/testify/require"
)

func newUserRouter(env testEnv) *gin.Engine {
	r := newSessionRouter()

	authHandler := NewAuthHandler(env.authService)
	userHandler := NewUserHandler(env.userService)

	r.POST("/api/auth/login", authHandler.Login)

	users := r.Group("/api/users")
	users.Use(middleware.RequireAuth())
	{
		users.GET("", middleware.RequireAdmin(env.authService), userHandler.ListUsers)
		users.POST("", middleware.RequireAdmin(env.authService), userHandler.CreateUser)
		users.GET("/:id", middleware.RequireSelfOrAdmin(env.authService), userHandler.GetUser)
		users.PUT("/:id", middleware.RequireSelfOrAdmin(env.authService), userHandler.UpdateUser)
		users.DELETE("/:id", middleware.RequireAdmin(env.authService), userHandler.DeleteUser)
	}

	return r
}

func TestUserHandler_AdminCreateListDelete(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "admin@sems.com", models.RoleAdmin)

	r := newUserRouter(env)
	cookies := loginAs(t, r, "admin@sems.com")

	w := doJSON(t, r, http.MethodPost, "/api/users", map[string]string{
		"email":      "bob@sems.com",
		"password":   "secret123",
		"name":       "Bob",
		"department": "Facilities",
	}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "bob@sems.com", created.Email)
	require.Equal(t, models.RoleUser, created.Role)
	require.True(t, created.IsActive)

	w = doJSON(t, r, http.MethodGet, "/api/users", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var listResponse struct {
		Users      []dto.UserDTO            `json:"users"`
		Pagination utils.PaginationResponse `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResponse))
	require.Len(t, listResponse.Users, 2)
	require.Equal(t, int64(2), listResponse.Pagination.Total)

	// A one-row page slices the listing without changing the total.
	w = doJSON(t, r, http.MethodGet, "/api/users?page=2&limit=1", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResponse))
	require.Len(t, listResponse.Users, 1)
	require.Equal(t, int64(2), listResponse.Pagination.Total)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/users/%d", created.ID), nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUserHandler_CreateUser_Conflicts(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "admin@sems.com", models.RoleAdmin)
	env.createUser(t, "bob@sems.com", models.RoleUser)

	r := newUserRouter(env)
	cookies := loginAs(t, r, "admin@sems.com")

	w := doJSON(t, r, http.MethodPost, "/api/users", map[string]string{
		"email":    "bob@sems.com",
		"password": "secret123",
		"name":     "Duplicate Bob",
	}, cookies)
	require.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/users", map[string]string{
		"email":    "short@sems.com",
		"password": "abc",
		"name":     "Short",
	}, cookies)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_DeleteLastAdminRefused(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.createUser(t, "admin@sems.com", models.RoleAdmin)

	r := newUserRouter(env)
	cookies := loginAs(t, r, "admin@sems.com")

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/users/%d", admin.ID), nil, cookies)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestUserHandler_NonAdminAccess(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "alice@sems.com", models.RoleUser)
	other := env.createUser(t, "bob@sems.com", models.RoleUser)

	r := newUserRouter(env)
	cookies := loginAs(t, r, "alice@sems.com")

	// Listing and creating are admin-only.
	w := doJSON(t, r, http.MethodGet, "/api/users", nil, cookies)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/users", map[string]string{
		"email":    "new@sems.com",
		"password": "secret123",
		"name":     "New",
	}, cookies)
	require.Equal(t, http.StatusForbidden, w.Code)

	// A user can read and edit their own profile but nobody else's.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d", other.ID), nil, cookies)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/users/%d", user.ID), map[string]any{
		"email":     "alice@sems.com",
		"name":      "Alice Renamed",
		"role":      models.RoleUser,
		"is_active": true,
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Alice Renamed", updated.Name)

	// A self-edit cannot change the role.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/users/%d", user.ID), map[string]any{
		"email":     "alice@sems.com",
		"name":      "Alice Renamed",
		"role":      models.RoleAdmin,
		"is_active": true,
	}, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, models.RoleUser, updated.Role)
}

func TestUserHandler_Unauthenticated(t *testing.T) {
	env := setupTestEnv(t)
	r := newUserRouter(env)

	w := doJSON(t, r, http.MethodGet, "/api/users", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
