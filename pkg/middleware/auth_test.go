package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Teknetic/templink/internal/model"
	"github.com/Teknetic/templink/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signerAndCredential(t *testing.T, plan model.Plan) (*session.JWTSigner, string) {
	t.Helper()
	signer := session.NewJWTSigner("test-secret", time.Hour)
	credential, err := signer.Sign(&model.User{
		ID:    "user-1",
		Email: "a@b.com",
		Plan:  plan,
	})
	require.NoError(t, err)
	return signer, credential
}

func TestRequireAuth(t *testing.T) {
	signer, credential := signerAndCredential(t, model.PlanFree)

	router := gin.New()
	router.GET("/protected", RequireAuth(signer), func(c *gin.Context) {
		id, ok := UserID(c)
		require.True(t, ok)
		c.String(http.StatusOK, id)
	})

	t.Run("valid credential", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+credential)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", credential)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage credential", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	signer, credential := signerAndCredential(t, model.PlanFree)

	router := gin.New()
	router.GET("/open", OptionalAuth(signer), func(c *gin.Context) {
		if id, ok := UserID(c); ok {
			c.String(http.StatusOK, id)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	t.Run("with credential", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/open", nil)
		req.Header.Set("Authorization", "Bearer "+credential)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", w.Body.String())
	})

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/open", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("invalid credential is treated as anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/open", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	})
}

func TestRequirePlan(t *testing.T) {
	tests := []struct {
		name     string
		plan     model.Plan
		required model.Plan
		want     int
	}{
		{name: "free meets free", plan: model.PlanFree, required: model.PlanFree, want: http.StatusOK},
		{name: "free blocked from pro", plan: model.PlanFree, required: model.PlanPro, want: http.StatusForbidden},
		{name: "pro meets pro", plan: model.PlanPro, required: model.PlanPro, want: http.StatusOK},
		{name: "business meets pro", plan: model.PlanBusiness, required: model.PlanPro, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signer, credential := signerAndCredential(t, tt.plan)

			router := gin.New()
			router.GET("/gated", RequireAuth(signer), RequirePlan(tt.required), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/gated", nil)
			req.Header.Set("Authorization", "Bearer "+credential)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequirePlan_WithoutAuth(t *testing.T) {
	router := gin.New()
	router.GET("/gated", RequirePlan(model.PlanPro), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/gated", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
