package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Teknetic/templink/internal/mocks"
	"github.com/Teknetic/templink/internal/model"
	"github.com/Teknetic/templink/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestLinkRouter(h *LinkHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.POST("/api/v1/links", h.Create)
	router.GET("/api/v1/links/recent", h.Recent)
	router.GET("/api/v1/links/:slug/report", h.Report)
	router.DELETE("/api/v1/links/:slug", func(c *gin.Context) {
		c.Set("user_id", "user-1")
	}, h.Deactivate)
	router.GET("/api/v1/analytics/:slug", h.Stats)
	return router
}

func TestNewLinkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
	mockAnalyticsService := mocks.NewMockAnalyticsServiceInterface(ctrl)
	handler := NewLinkHandler(mockLinkService, mockAnalyticsService)

	assert.NotNil(t, handler)
}

func TestLinkHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
	mockAnalyticsService := mocks.NewMockAnalyticsServiceInterface(ctrl)
	handler := NewLinkHandler(mockLinkService, mockAnalyticsService)
	router := newTestLinkRouter(handler)

	t.Run("invalid JSON body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/links", bytes.NewBuffer([]byte("{invalid json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Contains(t, resp.Message, "Invalid request")
	})

	t.Run("missing URL field", func(t *testing.T) {
		jsonBody, _ := json.Marshal(map[string]string{"custom_slug": "promo"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/links", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("successful creation", func(t *testing.T) {
		created := time.Now()
		mockLinkService.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any(), "").
			Return(&model.CreateLinkResponse{
				Slug:        "aZ3kP9q_",
				ShortURL:    "http://localhost:8080/aZ3kP9q_",
				OriginalURL: "https://example.com/page",
				CreatedAt:   created,
			}, nil)

		jsonBody, _ := json.Marshal(model.CreateLinkRequest{URL: "https://example.com/page"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/links", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Code)

		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "aZ3kP9q_", data["slug"])
		assert.Equal(t, "http://localhost:8080/aZ3kP9q_", data["short_url"])
	})

	t.Run("invalid URL", func(t *testing.T) {
		mockLinkService.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any(), "").
			Return(nil, service.ErrInvalidURL)

		jsonBody, _ := json.Marshal(model.CreateLinkRequest{URL: "not-a-url"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/links", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid custom slug", func(t *testing.T) {
		mockLinkService.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any(), "").
			Return(nil, service.ErrInvalidSlug)

		jsonBody, _ := json.Marshal(model.CreateLinkRequest{
			URL:        "https://example.com",
			CustomSlug: "bad slug!",
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/links", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("custom slug taken", func(t *testing.T) {
		mockLinkService.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any(), "").
			Return(nil, service.ErrSlugTaken)

		jsonBody, _ := json.Marshal(model.CreateLinkRequest{
			URL:        "https://example.com",
			CustomSlug: "promo",
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/links", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockLinkService.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any(), "").
			Return(nil, errors.New("db down"))

		jsonBody, _ := json.Marshal(model.CreateLinkRequest{URL: "https://example.com"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/links", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLinkHandler_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
	mockAnalyticsService := mocks.NewMockAnalyticsServiceInterface(ctrl)
	handler := NewLinkHandler(mockLinkService, mockAnalyticsService)
	router := newTestLinkRouter(handler)

	t.Run("default limit", func(t *testing.T) {
		mockLinkService.EXPECT().
			RecentLinks(gomock.Any(), 10).
			Return([]model.Link{{Slug: "aZ3kP9q_"}}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/links/recent", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("limit clamped to maximum", func(t *testing.T) {
		mockLinkService.EXPECT().
			RecentLinks(gomock.Any(), 100).
			Return([]model.Link{}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/links/recent?limit=500", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("garbage limit falls back to default", func(t *testing.T) {
		mockLinkService.EXPECT().
			RecentLinks(gomock.Any(), 10).
			Return([]model.Link{}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/links/recent?limit=abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockLinkService.EXPECT().
			RecentLinks(gomock.Any(), 10).
			Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/links/recent", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLinkHandler_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
	mockAnalyticsService := mocks.NewMockAnalyticsServiceInterface(ctrl)
	handler := NewLinkHandler(mockLinkService, mockAnalyticsService)
	router := newTestLinkRouter(handler)

	t.Run("successful report", func(t *testing.T) {
		maxViews := int64(10)
		remaining := int64(4)
		mockLinkService.EXPECT().
			Report(gomock.Any(), "aZ3kP9q_").
			Return(&model.LinkReport{
				TotalViews:     6,
				MaxViews:       &maxViews,
				RemainingViews: &remaining,
				IsActive:       true,
				OriginalURL:    "https://example.com",
			}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/links/aZ3kP9q_/report", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(6), data["total_views"])
		assert.Equal(t, float64(4), data["remaining_views"])
	})

	t.Run("link not found", func(t *testing.T) {
		mockLinkService.EXPECT().
			Report(gomock.Any(), "missing1").
			Return(nil, service.ErrLinkNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/links/missing1/report", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockLinkService.EXPECT().
			Report(gomock.Any(), "aZ3kP9q_").
			Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/links/aZ3kP9q_/report", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLinkHandler_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
	mockAnalyticsService := mocks.NewMockAnalyticsServiceInterface(ctrl)
	handler := NewLinkHandler(mockLinkService, mockAnalyticsService)
	router := newTestLinkRouter(handler)

	t.Run("successful deactivation", func(t *testing.T) {
		mockLinkService.EXPECT().
			Deactivate(gomock.Any(), "aZ3kP9q_", "user-1").
			Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/links/aZ3kP9q_", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown slug", func(t *testing.T) {
		mockLinkService.EXPECT().
			Deactivate(gomock.Any(), "missing1", "user-1").
			Return(service.ErrLinkNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/links/missing1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("someone else's link", func(t *testing.T) {
		mockLinkService.EXPECT().
			Deactivate(gomock.Any(), "aZ3kP9q_", "user-1").
			Return(service.ErrNotLinkOwner)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/links/aZ3kP9q_", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockLinkService.EXPECT().
			Deactivate(gomock.Any(), "aZ3kP9q_", "user-1").
			Return(errors.New("db down"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/links/aZ3kP9q_", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLinkHandler_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLinkService := mocks.NewMockLinkServiceInterface(ctrl)
	mockAnalyticsService := mocks.NewMockAnalyticsServiceInterface(ctrl)
	handler := NewLinkHandler(mockLinkService, mockAnalyticsService)
	router := newTestLinkRouter(handler)

	t.Run("successful stats", func(t *testing.T) {
		mockLinkService.EXPECT().
			Resolve(gomock.Any(), "aZ3kP9q_").
			Return(&model.Link{Slug: "aZ3kP9q_"}, nil)
		mockAnalyticsService.EXPECT().
			GetStats(gomock.Any(), "aZ3kP9q_").
			Return(&model.LinkStats{PV: 42, UV: 17}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/analytics/aZ3kP9q_", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(42), data["pv"])
		assert.Equal(t, float64(17), data["uv"])
	})

	t.Run("unknown link", func(t *testing.T) {
		mockLinkService.EXPECT().
			Resolve(gomock.Any(), "missing1").
			Return(nil, service.ErrLinkNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/analytics/missing1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("stats backend error", func(t *testing.T) {
		mockLinkService.EXPECT().
			Resolve(gomock.Any(), "aZ3kP9q_").
			Return(&model.Link{Slug: "aZ3kP9q_"}, nil)
		mockAnalyticsService.EXPECT().
			GetStats(gomock.Any(), "aZ3kP9q_").
			Return(nil, errors.New("redis down"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/analytics/aZ3kP9q_", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
