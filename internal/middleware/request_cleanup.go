package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxBodyBytes fits a routine with a few hundred exercises.
const DefaultMaxBodyBytes int64 = 1 << 20

// DrainAndCloseRequest caps the request body at maxBodyBytes and, once the handler
// returned, drains what it left unread and closes the body so the connection can be reused.
// A non-positive maxBodyBytes uses DefaultMaxBodyBytes.
func DrainAndCloseRequest(maxBodyBytes int64) func(next http.Handler) http.Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			}
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, r.Body)
				_ = r.Body.Close()
			}
		})
	}
}
