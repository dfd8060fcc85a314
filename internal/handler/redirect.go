package handler

import (
	"context"
	"net/http"

	"github.com/Teknetic/templink/internal/model"
	"github.com/Teknetic/templink/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RedirectHandler handles short link redemption
type RedirectHandler struct {
	linkService      service.LinkServiceInterface
	analyticsService service.AnalyticsServiceInterface
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(
	linkService service.LinkServiceInterface,
	analyticsService service.AnalyticsServiceInterface,
) *RedirectHandler {
	return &RedirectHandler{
		linkService:      linkService,
		analyticsService: analyticsService,
	}
}

// Redirect handles GET /:slug
// @Summary Redeem a short link
// @Description Redeems a view and redirects to the original URL. Password protected links take the password as a query parameter.
// @Tags links
// @Param slug path string true "Link slug"
// @Param password query string false "Link password"
// @Success 302
// @Router /{slug} [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	slug := c.Param("slug")
	password := c.Query("password")

	visitor := model.Visitor{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referer:   c.Request.Header.Get("Referer"),
	}

	result, err := h.linkService.Redeem(c.Request.Context(), slug, password, visitor)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Redemption failed")
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"slug": slug,
		})
		return
	}

	switch result.Status {
	case model.RedeemNotFound:
		c.HTML(http.StatusNotFound, "404.html", gin.H{
			"slug": slug,
		})
	case model.RedeemExpired:
		c.HTML(http.StatusGone, "410.html", gin.H{
			"slug": slug,
		})
	case model.RedeemPasswordRequired:
		c.HTML(http.StatusUnauthorized, "password.html", gin.H{
			"slug": slug,
		})
	case model.RedeemPasswordIncorrect:
		c.HTML(http.StatusUnauthorized, "password.html", gin.H{
			"slug":  slug,
			"error": "Incorrect password",
		})
	case model.RedeemSuccess:
		// Realtime counters update off the request path. The request context
		// dies with the response, so the goroutine gets its own.
		go func() {
			if err := h.analyticsService.RecordAccess(context.Background(), slug, visitor.IP, visitor.UserAgent, visitor.Referer); err != nil {
				log.Error().Err(err).Str("slug", slug).Msg("Failed to record access")
			}
		}()

		c.Redirect(http.StatusFound, result.OriginalURL)
	}
}
