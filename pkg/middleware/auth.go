package middleware

import (
	"net/http"
	"strings"

	"github.com/Teknetic/templink/internal/model"
	"github.com/Teknetic/templink/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID    = "user_id"
	ctxUserEmail = "user_email"
	ctxUserPlan  = "user_plan"
)

// SessionVerifier checks a session credential and returns its claims
type SessionVerifier interface {
	Verify(credential string) (*session.Claims, error)
}

// RequireAuth returns a gin middleware that rejects requests without a valid
// Bearer session credential and stores the claims on the context
func RequireAuth(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "Authentication required",
			})
			return
		}

		claims, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    http.StatusUnauthorized,
				"message": "Invalid or expired session",
			})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserEmail, claims.Email)
		c.Set(ctxUserPlan, claims.Plan)
		c.Next()
	}
}

// OptionalAuth stores claims when a valid credential is present but lets
// anonymous requests through
func OptionalAuth(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if claims, err := verifier.Verify(strings.TrimPrefix(header, "Bearer ")); err == nil {
				c.Set(ctxUserID, claims.UserID)
				c.Set(ctxUserEmail, claims.Email)
				c.Set(ctxUserPlan, claims.Plan)
			}
		}
		c.Next()
	}
}

// RequirePlan returns a gin middleware gating a route to accounts at or
// above the given tier. It must run after RequireAuth.
func RequirePlan(required model.Plan) gin.HandlerFunc {
	return func(c *gin.Context) {
		plan, ok := UserPlan(c)
		if !ok || !plan.AtLeast(required) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    http.StatusForbidden,
				"message": "This feature requires the " + string(required) + " plan",
			})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's ID from the context
func UserID(c *gin.Context) (string, bool) {
	id, ok := c.Get(ctxUserID)
	if !ok {
		return "", false
	}
	s, ok := id.(string)
	return s, ok
}

// UserPlan returns the authenticated user's plan from the context
func UserPlan(c *gin.Context) (model.Plan, bool) {
	v, ok := c.Get(ctxUserPlan)
	if !ok {
		return "", false
	}
	p, ok := v.(model.Plan)
	return p, ok
}
