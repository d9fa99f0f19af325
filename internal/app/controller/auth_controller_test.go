package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ratemystore/ratemystore-backend/internal/app/repository"
	"github.com/ratemystore/ratemystore-backend/internal/app/service"
	"github.com/ratemystore/ratemystore-backend/internal/db"
	"github.com/ratemystore/ratemystore-backend/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-secret"
	testName     = "Jonathan Doe Smith the Third"
	testPassword = "Password1!"
)

func setupAuthControllerTest(t *testing.T) (*gin.Engine, service.AuthService) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	userRepo := repository.NewUserRepository(testDB)
	authService := service.NewAuthService(userRepo, testSecret, time.Hour)

	ctrl := NewAuthController(authService)
	authMiddleware := middleware.NewAuthMiddleware(testSecret)

	router := gin.New()
	router.POST("/signup", ctrl.Signup)
	router.POST("/login", ctrl.Login)
	router.PUT("/users/password", authMiddleware.Authenticate(), ctrl.UpdatePassword)

	return router, authService
}

func postJSON(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestAuthController_Signup_Success(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	w := postJSON(router, "POST", "/signup", SignupRequest{
		Name:     testName,
		Email:    "test@example.com",
		Password: testPassword,
		Address:  "123 Main Street",
	}, "")

	assert.Equal(t, http.StatusCreated, w.Code)

	response := decodeBody(t, w)
	assert.Equal(t, "Success", response["status"])

	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "test@example.com", user["email"])
	assert.Nil(t, user["password_hash"])
}

func TestAuthController_Signup_Validation(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	tests := []struct {
		name      string
		req       SignupRequest
		wantError string
	}{
		{
			name: "Name too short",
			req: SignupRequest{
				Name:     "Short",
				Email:    "a@example.com",
				Password: testPassword,
				Address:  "123 Main Street",
			},
			wantError: "Name must be 20-60 characters",
		},
		{
			name: "Invalid email",
			req: SignupRequest{
				Name:     testName,
				Email:    "not-an-email",
				Password: testPassword,
				Address:  "123 Main Street",
			},
			wantError: "Invalid email format",
		},
		{
			name: "Weak password",
			req: SignupRequest{
				Name:     testName,
				Email:    "a@example.com",
				Password: "password",
				Address:  "123 Main Street",
			},
			wantError: "Password must be 8-16 characters, include one uppercase and one special character",
		},
		{
			name: "Missing address",
			req: SignupRequest{
				Name:     testName,
				Email:    "a@example.com",
				Password: testPassword,
			},
			wantError: "All fields are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "POST", "/signup", tt.req, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			response := decodeBody(t, w)
			assert.Equal(t, tt.wantError, response["error"])
		})
	}
}

func TestAuthController_Signup_DuplicateEmail(t *testing.T) {
	router, authService := setupAuthControllerTest(t)

	_, _, err := authService.Signup(testName, "test@example.com", testPassword, "123 Main Street")
	require.NoError(t, err)

	w := postJSON(router, "POST", "/signup", SignupRequest{
		Name:     testName,
		Email:    "test@example.com",
		Password: testPassword,
		Address:  "123 Main Street",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "Email already exists", response["error"])
}

func TestAuthController_Login(t *testing.T) {
	router, authService := setupAuthControllerTest(t)

	_, _, err := authService.Signup(testName, "test@example.com", testPassword, "123 Main Street")
	require.NoError(t, err)

	// Success
	w := postJSON(router, "POST", "/login", LoginRequest{
		Email:    "test@example.com",
		Password: testPassword,
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	// Wrong password
	w = postJSON(router, "POST", "/login", LoginRequest{
		Email:    "test@example.com",
		Password: "Wrong-Pass1!",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])

	// Unknown email gets the same message
	w = postJSON(router, "POST", "/login", LoginRequest{
		Email:    "nobody@example.com",
		Password: testPassword,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, w)["error"])
}

func TestAuthController_UpdatePassword(t *testing.T) {
	router, authService := setupAuthControllerTest(t)

	_, token, err := authService.Signup(testName, "test@example.com", testPassword, "123 Main Street")
	require.NoError(t, err)

	// No token
	w := postJSON(router, "PUT", "/users/password", UpdatePasswordRequest{
		OldPassword: testPassword,
		NewPassword: "NewPassword1!",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong old password
	w = postJSON(router, "PUT", "/users/password", UpdatePasswordRequest{
		OldPassword: "Wrong-Pass1!",
		NewPassword: "NewPassword1!",
	}, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid old password", decodeBody(t, w)["error"])

	// Success, then the new credential logs in
	w = postJSON(router, "PUT", "/users/password", UpdatePasswordRequest{
		OldPassword: testPassword,
		NewPassword: "NewPassword1!",
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)

	_, _, err = authService.Login("test@example.com", "NewPassword1!")
	assert.NoError(t, err)
}
