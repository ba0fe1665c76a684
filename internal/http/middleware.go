// Package http provides the HTTP server, routing and middleware for the
// gatekeeper API.
package http

import (
	"crypto/subtle"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/allisson/gatekeeper/internal/httputil"

	apperrors "github.com/allisson/gatekeeper/internal/errors"
)

// CustomLoggerMiddleware logs HTTP requests with structured logging, tagging
// each entry with the request id set by the requestid middleware.
func CustomLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("http request",
			slog.String("request_id", requestid.Get(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// adminCredentials maps bearer tokens to administrator names.
type adminCredentials map[string]string

// parseAdminTokens parses the "actor:token" comma-separated configuration
// format into a token lookup table. Malformed entries are skipped.
func parseAdminTokens(tokens string) adminCredentials {
	credentials := adminCredentials{}
	for _, pair := range strings.Split(tokens, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		actor, token, ok := strings.Cut(pair, ":")
		actor = strings.TrimSpace(actor)
		token = strings.TrimSpace(token)
		if !ok || actor == "" || token == "" {
			continue
		}
		credentials[token] = actor
	}
	return credentials
}

// lookup resolves a presented token to an administrator name using a
// constant-time comparison per known token.
func (a adminCredentials) lookup(presented string) (string, bool) {
	actor := ""
	found := false
	for token, name := range a {
		if subtle.ConstantTimeCompare([]byte(token), []byte(presented)) == 1 {
			actor = name
			found = true
		}
	}
	return actor, found
}

// AdminAuthMiddleware authenticates administrative requests with a bearer
// token and stores the resolved administrator name in the context for audit
// stamping. With no tokens configured every administrative request is
// rejected, which fails closed on a missing configuration.
func AdminAuthMiddleware(tokens string, logger *slog.Logger) gin.HandlerFunc {
	credentials := parseAdminTokens(tokens)
	if len(credentials) == 0 {
		logger.Warn("no admin tokens configured, administrative endpoints will reject all requests")
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		actor, ok := credentials.lookup(token)
		if !ok {
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		c.Set(httputil.ActorKey, actor)
		c.Next()
	}
}
