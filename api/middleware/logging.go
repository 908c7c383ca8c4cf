package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/keej24/visita-bohol-system-sub001/utils"
)

// NewLogging writes one line per request, tagged with the authenticated actor
// when the token middleware has stored credentials in the request context.
// Probe and scrape paths are skipped.
func NewLogging(logger *slog.Logger, ignorePaths ...string) gin.HandlerFunc {
	ignore := make(map[string]struct{}, len(ignorePaths))
	for _, path := range ignorePaths {
		ignore[path] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := ignore[c.Request.URL.Path]; ok {
			return
		}

		path := c.Request.URL.Path
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		attributes := []slog.Attr{
			slog.Int("status", status),
			slog.Int64("latency_ms", time.Since(start).Milliseconds()),
			slog.String("client_ip", c.ClientIP()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
		}
		// The token middleware swaps the request context, so credentials are
		// visible here once the chain has run.
		if creds, ok := utils.CredentialsFromCtx(c.Request.Context()); ok {
			attributes = append(attributes,
				slog.String("actor_id", creds.ActorId),
				slog.String("role", string(creds.Role)))
		}
		if len(c.Errors) > 0 {
			attributes = append(attributes, slog.String("error", c.Errors.String()))
		}

		logger.LogAttrs(c.Request.Context(), level,
			fmt.Sprintf("%s %s", c.Request.Method, path), attributes...)
	}
}
