package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimiter limits inbound requests per client IP.
func (m *Middlewares) RateLimiter() func(next http.Handler) http.Handler {
	limit := m.InternalConfig.App.MaxTimeRequestsPerSeconds
	if limit <= 0 {
		limit = 100
	}
	return httprate.LimitByIP(limit, time.Second)
}
