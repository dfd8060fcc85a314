package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	t.Run("panic becomes a 500 JSON response", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery())
		router.GET("/:slug", func(c *gin.Context) {
			panic("broken redirect handler")
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/aZ3kP9q_", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
		assert.Contains(t, w.Body.String(), "500")
	})

	t.Run("nil dereference is recovered too", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery())
		router.GET("/:slug", func(c *gin.Context) {
			var link *struct{ URL string }
			c.String(http.StatusOK, link.URL)
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/aZ3kP9q_", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("normal requests are untouched", func(t *testing.T) {
		router := gin.New()
		router.Use(Recovery())
		router.GET("/:slug", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"slug": c.Param("slug")})
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/aZ3kP9q_", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
