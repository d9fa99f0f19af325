package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ratemystore/ratemystore-backend/internal/app/model"
	"github.com/ratemystore/ratemystore-backend/internal/app/repository"
	"github.com/ratemystore/ratemystore-backend/internal/app/service"
	"github.com/ratemystore/ratemystore-backend/internal/db"
	"github.com/ratemystore/ratemystore-backend/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type adminTestEnv struct {
	router     *gin.Engine
	db         *gorm.DB
	adminToken string
	userToken  string
}

func setupAdminControllerTest(t *testing.T) *adminTestEnv {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	userRepo := repository.NewUserRepository(testDB)
	storeRepo := repository.NewStoreRepository(testDB)
	ratingRepo := repository.NewRatingRepository(testDB)

	userService := service.NewUserService(userRepo, storeRepo, ratingRepo)
	ctrl := NewAdminController(userService)
	authMiddleware := middleware.NewAuthMiddleware(testSecret)

	router := gin.New()
	admin := router.Group("/admin",
		authMiddleware.Authenticate(),
		authMiddleware.RequireRole(model.RoleAdmin),
	)
	admin.GET("/users", ctrl.ListUsers)
	admin.POST("/users", ctrl.CreateUser)
	admin.GET("/stats", ctrl.GetStats)

	env := &adminTestEnv{router: router, db: testDB}
	_, env.adminToken = seedTestUser(t, testDB, "Platform Administrator Account", "admin@example.com", model.RoleAdmin)
	_, env.userToken = seedTestUser(t, testDB, "Regular Visitor Example Person", "user@example.com", model.RoleUser)
	return env
}

func TestAdminController_RoleGate(t *testing.T) {
	env := setupAdminControllerTest(t)

	for _, path := range []string{"/admin/users", "/admin/stats"} {
		w := postJSON(env.router, "GET", path, nil, env.userToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = postJSON(env.router, "GET", path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestAdminController_CreateUser(t *testing.T) {
	env := setupAdminControllerTest(t)

	// Explicit role assignment, unlike public signup
	w := postJSON(env.router, "POST", "/admin/users", CreateUserRequest{
		Name:     "Store Owner Example Person Here",
		Email:    "owner@example.com",
		Password: testPassword,
		Address:  "1 Market Square",
		Role:     "owner",
	}, env.adminToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	user := decodeBody(t, w)["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "owner", user["role"])

	// Unknown role is rejected
	w = postJSON(env.router, "POST", "/admin/users", CreateUserRequest{
		Name:     "Store Owner Example Person Here",
		Email:    "super@example.com",
		Password: testPassword,
		Address:  "1 Market Square",
		Role:     "superuser",
	}, env.adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid role", decodeBody(t, w)["error"])

	// Duplicate email
	w = postJSON(env.router, "POST", "/admin/users", CreateUserRequest{
		Name:     "Store Owner Example Person Here",
		Email:    "owner@example.com",
		Password: testPassword,
		Address:  "1 Market Square",
		Role:     "user",
	}, env.adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already exists", decodeBody(t, w)["error"])
}

func TestAdminController_ListUsers(t *testing.T) {
	env := setupAdminControllerTest(t)

	w := postJSON(env.router, "GET", "/admin/users?role=admin", nil, env.adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeBody(t, w)
	assert.Equal(t, float64(1), response["results"])

	users := response["data"].(map[string]interface{})["users"].([]interface{})
	entry := users[0].(map[string]interface{})
	assert.Equal(t, "admin@example.com", entry["email"])
	assert.Nil(t, entry["password_hash"])

	// Name filter is case-insensitive
	w = postJSON(env.router, "GET", "/admin/users?name=VISITOR", nil, env.adminToken)
	response = decodeBody(t, w)
	assert.Equal(t, float64(1), response["results"])

	// Unknown sort key is rejected
	w = postJSON(env.router, "GET", "/admin/users?sort=email", nil, env.adminToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminController_GetStats(t *testing.T) {
	env := setupAdminControllerTest(t)

	owner, _ := seedTestUser(t, env.db, "Store Owner Example Person Here", "owner@example.com", model.RoleOwner)
	store := &model.Store{
		Name:    "Springfield Grocery and Hardware",
		Email:   "grocery@example.com",
		OwnerID: owner.ID,
	}
	require.NoError(t, env.db.Create(store).Error)
	require.NoError(t, env.db.Create(&model.Rating{
		StoreID: store.ID,
		UserID:  owner.ID,
		Rating:  5,
	}).Error)

	w := postJSON(env.router, "GET", "/admin/stats", nil, env.adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	stats := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), stats["total_users"])
	assert.Equal(t, float64(1), stats["total_stores"])
	assert.Equal(t, float64(1), stats["total_ratings"])
}
