package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Teknetic/templink/internal/model"
	"github.com/Teknetic/templink/internal/service"
	"github.com/Teknetic/templink/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

// LinkHandler handles link creation and reporting
type LinkHandler struct {
	linkService      service.LinkServiceInterface
	analyticsService service.AnalyticsServiceInterface
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(linkService service.LinkServiceInterface, analyticsService service.AnalyticsServiceInterface) *LinkHandler {
	return &LinkHandler{
		linkService:      linkService,
		analyticsService: analyticsService,
	}
}

// Create handles POST /api/v1/links
// @Summary Create a short link
// @Description Creates a short link with optional expiry, view cap, password and custom slug
// @Tags links
// @Accept json
// @Produce json
// @Param request body model.CreateLinkRequest true "Create request"
// @Success 201 {object} Response{data=model.CreateLinkResponse}
// @Router /api/v1/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req model.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	creatorID, _ := middleware.UserID(c)

	resp, err := h.linkService.Create(c.Request.Context(), &req, c.ClientIP(), creatorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidURL):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "A valid absolute URL is required",
			})
		case errors.Is(err, service.ErrInvalidSlug):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Custom slug contains invalid characters or is too long",
			})
		case errors.Is(err, service.ErrSlugTaken):
			c.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "Custom slug already in use",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Failed to create link",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    resp,
	})
}

// Recent handles GET /api/v1/links/recent
// @Summary List recent links
// @Tags links
// @Produce json
// @Param limit query int false "Max links to return" default(10)
// @Success 200 {object} Response{data=[]model.Link}
// @Router /api/v1/links/recent [get]
func (h *LinkHandler) Recent(c *gin.Context) {
	limit := defaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	links, err := h.linkService.RecentLinks(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to list links",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    links,
	})
}

// Report handles GET /api/v1/links/:slug/report
// @Summary Get the analytics report for a link
// @Description Returns view totals and recent visits; inactive links included
// @Tags links
// @Produce json
// @Param slug path string true "Link slug"
// @Success 200 {object} Response{data=model.LinkReport}
// @Router /api/v1/links/{slug}/report [get]
func (h *LinkHandler) Report(c *gin.Context) {
	slug := c.Param("slug")

	report, err := h.linkService.Report(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Link not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build report",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    report,
	})
}

// Deactivate handles DELETE /api/v1/links/:slug
// @Summary Deactivate a link
// @Description Soft-deletes a link owned by the authenticated account
// @Tags links
// @Produce json
// @Param slug path string true "Link slug"
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /api/v1/links/{slug} [delete]
func (h *LinkHandler) Deactivate(c *gin.Context) {
	slug := c.Param("slug")
	requesterID, _ := middleware.UserID(c)

	if err := h.linkService.Deactivate(c.Request.Context(), slug, requesterID); err != nil {
		switch {
		case errors.Is(err, service.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Link not found",
			})
		case errors.Is(err, service.ErrNotLinkOwner):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "You do not own this link",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Failed to deactivate link",
			})
		}
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
	})
}

// Stats handles GET /api/v1/analytics/:slug
// @Summary Get realtime stats for a link
// @Description Returns PV/UV counters and top traffic sources
// @Tags analytics
// @Produce json
// @Param slug path string true "Link slug"
// @Success 200 {object} Response{data=model.LinkStats}
// @Router /api/v1/analytics/{slug} [get]
func (h *LinkHandler) Stats(c *gin.Context) {
	slug := c.Param("slug")

	if _, err := h.linkService.Resolve(c.Request.Context(), slug); err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Link not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to look up link",
		})
		return
	}

	stats, err := h.analyticsService.GetStats(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to get stats",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    stats,
	})
}
