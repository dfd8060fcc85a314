package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Teknetic/templink/internal/mocks"
	"github.com/Teknetic/templink/internal/model"
	"github.com/Teknetic/templink/internal/service"
)

const testUserID = "11111111-2222-3333-4444-555555555555"

// newTestAuthRouter wires the auth routes with a stand-in for the session
// middleware that injects a fixed user
func newTestAuthRouter(h *AuthHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	})
	router.POST("/api/v1/auth/register", h.Register)
	router.POST("/api/v1/auth/login", h.Login)
	router.GET("/api/v1/auth/me", h.Me)
	router.GET("/api/v1/auth/stats", h.Stats)
	router.POST("/api/v1/auth/verify-email/request", h.RequestVerification)
	router.GET("/api/v1/auth/verify-email", h.VerifyEmail)
	router.POST("/api/v1/auth/forgot-password", h.ForgotPassword)
	router.POST("/api/v1/auth/reset-password", h.ResetPassword)
	router.PUT("/api/v1/auth/password", h.ChangePassword)
	router.PUT("/api/v1/auth/profile", h.UpdateProfile)
	router.PUT("/api/v1/auth/plan", h.UpdatePlan)
	router.DELETE("/api/v1/auth/account", h.DeleteAccount)
	return router
}

func postJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestNewAuthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mocks.NewMockAuthServiceInterface(ctrl)
	handler := NewAuthHandler(mockAuthService)

	assert.NotNil(t, handler)
}

func TestAuthHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mocks.NewMockAuthServiceInterface(ctrl)
	handler := NewAuthHandler(mockAuthService)
	router := newTestAuthRouter(handler)

	t.Run("successful registration", func(t *testing.T) {
		mockAuthService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(&model.AuthResponse{
				User:  &model.User{ID: testUserID, Email: "alice@example.com", Plan: model.PlanFree},
				Token: "signed-credential",
			}, nil)

		w := postJSON(router, "POST", "/api/v1/auth/register", model.RegisterRequest{
			Email:    "alice@example.com",
			Password: "secret1",
			Name:     "Alice",
		})

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "signed-credential", data["token"])
	})

	t.Run("missing fields", func(t *testing.T) {
		w := postJSON(router, "POST", "/api/v1/auth/register", map[string]string{"email": "alice@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		mockAuthService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, service.ErrInvalidEmail)

		w := postJSON(router, "POST", "/api/v1/auth/register", model.RegisterRequest{
			Email:    "not-an-email",
			Password: "secret1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("weak password", func(t *testing.T) {
		mockAuthService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, service.ErrPasswordTooWeak)

		w := postJSON(router, "POST", "/api/v1/auth/register", model.RegisterRequest{
			Email:    "alice@example.com",
			Password: "short",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("email already taken", func(t *testing.T) {
		mockAuthService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, service.ErrEmailTaken)

		w := postJSON(router, "POST", "/api/v1/auth/register", model.RegisterRequest{
			Email:    "alice@example.com",
			Password: "secret1",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mocks.NewMockAuthServiceInterface(ctrl)
	handler := NewAuthHandler(mockAuthService)
	router := newTestAuthRouter(handler)

	t.Run("successful login", func(t *testing.T) {
		mockAuthService.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(&model.AuthResponse{
				User:  &model.User{ID: testUserID, Email: "alice@example.com"},
				Token: "signed-credential",
			}, nil)

		w := postJSON(router, "POST", "/api/v1/auth/login", model.LoginRequest{
			Email:    "alice@example.com",
			Password: "secret1",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockAuthService.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, service.ErrInvalidCredentials)

		w := postJSON(router, "POST", "/api/v1/auth/login", model.LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong99",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "Invalid email or password", resp.Message)
	})

	t.Run("service error", func(t *testing.T) {
		mockAuthService.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		w := postJSON(router, "POST", "/api/v1/auth/login", model.LoginRequest{
			Email:    "alice@example.com",
			Password: "secret1",
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mocks.NewMockAuthServiceInterface(ctrl)
	handler := NewAuthHandler(mockAuthService)
	router := newTestAuthRouter(handler)

	t.Run("returns the current user", func(t *testing.T) {
		mockAuthService.EXPECT().
			GetUser(gomock.Any(), testUserID).
			Return(&model.User{ID: testUserID, Email: "alice@example.com", Plan: model.PlanPro}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/auth/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "alice@example.com", data["email"])
	})

	t.Run("unknown user", func(t *testing.T) {
		mockAuthService.EXPECT().
			GetUser(gomock.Any(), testUserID).
			Return(nil, service.ErrUserNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/auth/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuthHandler_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mocks.NewMockAuthServiceInterface(ctrl)
	handler := NewAuthHandler(mockAuthService)
	router := newTestAuthRouter(handler)

	mockAuthService.EXPECT().
		UserStats(gomock.Any(), testUserID).
		Return(&model.UserStats{TotalLinks: 12, TotalViews: 340}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/auth/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(12), data["total_links"])
	assert.Equal(t, float64(340), data["total_views"])
}

func TestAuthHandler_VerifyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mocks.NewMockAuthServiceInterface(ctrl)
	handler := NewAuthHandler(mockAuthService)
	router := newTestAuthRouter(handler)

	t.Run("request verification mail", func(t *testing.T) {
		mockAuthService.EXPECT().
			RequestEmailVerification(gomock.Any(), testUserID).
			Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/verify-email/request", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("already verified", func(t *testing.T) {
		mockAuthService.EXPECT().
			RequestEmailVerification(gomock.Any(), testUserID).
			Return(service.ErrAlreadyVerified)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/auth/verify-email/request", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("successful verification from the mailed link", func(t *testing.T) {
		mockAuthService.EXPECT().
			VerifyEmail(gomock.Any(), "some-secret").
			Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/auth/verify-email?token=some-secret", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		mockAuthService.EXPECT().
			VerifyEmail(gomock.Any(), "stale-secret").
			Return(service.ErrTokenInvalid)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/auth/verify-email?token=stale-secret", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/auth/verify-email", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_PasswordReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mocks.NewMockAuthServiceInterface(ctrl)
	handler := NewAuthHandler(mockAuthService)
	router := newTestAuthRouter(handler)

	t.Run("forgot password always succeeds", func(t *testing.T) {
		mockAuthService.EXPECT().
			RequestPasswordReset(gomock.Any(), "whoever@example.com").
			Return(nil)

		w := postJSON(router, "POST", "/api/v1/auth/forgot-password", model.ForgotPasswordRequest{
			Email: "whoever@example.com",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Contains(t, resp.Message, "reset link has been sent")
	})

	t.Run("successful reset", func(t *testing.T) {
		mockAuthService.EXPECT().
			ResetPassword(gomock.Any(), "reset-secret", "newsecret").
			Return(nil)

		w := postJSON(router, "POST", "/api/v1/auth/reset-password", model.ResetPasswordRequest{
			Token:    "reset-secret",
			Password: "newsecret",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid reset token", func(t *testing.T) {
		mockAuthService.EXPECT().
			ResetPassword(gomock.Any(), "stale", "newsecret").
			Return(service.ErrTokenInvalid)

		w := postJSON(router, "POST", "/api/v1/auth/reset-password", model.ResetPasswordRequest{
			Token:    "stale",
			Password: "newsecret",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("weak replacement password", func(t *testing.T) {
		mockAuthService.EXPECT().
			ResetPassword(gomock.Any(), "reset-secret", "tiny").
			Return(service.ErrPasswordTooWeak)

		w := postJSON(router, "POST", "/api/v1/auth/reset-password", model.ResetPasswordRequest{
			Token:    "reset-secret",
			Password: "tiny",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mocks.NewMockAuthServiceInterface(ctrl)
	handler := NewAuthHandler(mockAuthService)
	router := newTestAuthRouter(handler)

	t.Run("successful change", func(t *testing.T) {
		mockAuthService.EXPECT().
			ChangePassword(gomock.Any(), testUserID, gomock.Any()).
			Return(nil)

		w := postJSON(router, "PUT", "/api/v1/auth/password", model.ChangePasswordRequest{
			CurrentPassword: "secret1",
			NewPassword:     "secret2",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockAuthService.EXPECT().
			ChangePassword(gomock.Any(), testUserID, gomock.Any()).
			Return(service.ErrPasswordIncorrect)

		w := postJSON(router, "PUT", "/api/v1/auth/password", model.ChangePasswordRequest{
			CurrentPassword: "wrong99",
			NewPassword:     "secret2",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("weak new password", func(t *testing.T) {
		mockAuthService.EXPECT().
			ChangePassword(gomock.Any(), testUserID, gomock.Any()).
			Return(service.ErrPasswordTooWeak)

		w := postJSON(router, "PUT", "/api/v1/auth/password", model.ChangePasswordRequest{
			CurrentPassword: "secret1",
			NewPassword:     "tiny",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mocks.NewMockAuthServiceInterface(ctrl)
	handler := NewAuthHandler(mockAuthService)
	router := newTestAuthRouter(handler)

	t.Run("successful update", func(t *testing.T) {
		name := "Alice B"
		mockAuthService.EXPECT().
			UpdateProfile(gomock.Any(), testUserID, gomock.Any()).
			Return(&model.User{ID: testUserID, Name: name}, nil)

		w := postJSON(router, "PUT", "/api/v1/auth/profile", model.UpdateProfileRequest{Name: &name})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("email taken", func(t *testing.T) {
		email := "taken@example.com"
		mockAuthService.EXPECT().
			UpdateProfile(gomock.Any(), testUserID, gomock.Any()).
			Return(nil, service.ErrEmailTaken)

		w := postJSON(router, "PUT", "/api/v1/auth/profile", model.UpdateProfileRequest{Email: &email})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_UpdatePlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mocks.NewMockAuthServiceInterface(ctrl)
	handler := NewAuthHandler(mockAuthService)
	router := newTestAuthRouter(handler)

	t.Run("upgrade to pro", func(t *testing.T) {
		mockAuthService.EXPECT().
			UpdatePlan(gomock.Any(), testUserID, model.PlanPro).
			Return(&model.User{ID: testUserID, Plan: model.PlanPro}, nil)

		w := postJSON(router, "PUT", "/api/v1/auth/plan", map[string]string{"plan": "pro"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown plan", func(t *testing.T) {
		mockAuthService.EXPECT().
			UpdatePlan(gomock.Any(), testUserID, model.Plan("platinum")).
			Return(nil, errors.New("unknown plan"))

		w := postJSON(router, "PUT", "/api/v1/auth/plan", map[string]string{"plan": "platinum"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_DeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mocks.NewMockAuthServiceInterface(ctrl)
	handler := NewAuthHandler(mockAuthService)
	router := newTestAuthRouter(handler)

	t.Run("successful deactivation", func(t *testing.T) {
		mockAuthService.EXPECT().
			DeactivateAccount(gomock.Any(), testUserID, "secret1").
			Return(nil)

		w := postJSON(router, "DELETE", "/api/v1/auth/account", model.DeleteAccountRequest{Password: "secret1"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockAuthService.EXPECT().
			DeactivateAccount(gomock.Any(), testUserID, "wrong99").
			Return(service.ErrPasswordIncorrect)

		w := postJSON(router, "DELETE", "/api/v1/auth/account", model.DeleteAccountRequest{Password: "wrong99"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
