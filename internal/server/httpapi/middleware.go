package httpapi

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/server/auth"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

const principalKey = "principal"

// bearerToken extracts the credential from "Authorization: Bearer <token>".
// Anything else yields "".
func bearerToken(c *gin.Context) string {
	scheme, token, ok := strings.Cut(c.GetHeader(common.AuthorizationHeaderName), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return ""
	}
	return strings.TrimSpace(token)
}

// principal returns the identity attached by requireAuth or optionalAuth.
func principal(c *gin.Context) *models.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*models.Principal)
	return p
}

// requestDeadline bounds the time a request may wait for the store.
func (h *Handler) requestDeadline() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.requestTimeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.requestTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// accessLog logs one line per request and feeds the HTTP metrics.
func (h *Handler) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		args := []any{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"latency_ms", elapsed.Milliseconds(),
		}
		if p := principal(c); p != nil {
			args = append(args, "user_id", p.ID)
		}
		h.logger.Info(c.Request.Context(), "request", args...)

		if h.metrics != nil {
			h.metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
			h.metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(elapsed.Seconds())
		}
	}
}

// requireAuth rejects requests without a resolvable bearer token.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := h.resolver.Resolve(c.Request.Context(), bearerToken(c))
		if err != nil {
			if errors.Is(err, common.ErrorUnauthorized) {
				h.countAuthFailure("unauthenticated")
			}
			h.fail(c, err, "")
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// optionalAuth attaches a principal when the caller presents a usable token
// and lets anonymous callers through otherwise.
func (h *Handler) optionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := h.resolver.ResolveOptional(c.Request.Context(), bearerToken(c))
		if err != nil {
			h.fail(c, err, "")
			return
		}
		if p != nil {
			c.Set(principalKey, p)
		}
		c.Next()
	}
}

// requireAdmin must run after requireAuth.
func (h *Handler) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.RequireAdmin(principal(c)); err != nil {
			h.countAuthFailure("forbidden")
			h.fail(c, err, "")
			return
		}
		c.Next()
	}
}

func (h *Handler) countAuthFailure(reason string) {
	if h.metrics != nil {
		h.metrics.AuthFailures.WithLabelValues(reason).Inc()
	}
}
