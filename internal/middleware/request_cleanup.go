package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// maxDrainBytes caps how much of an unread body is consumed, the rest is
// discarded by Close.
const maxDrainBytes = 64 << 10

// DrainAndCloseRequest drains (up to maxDrainBytes) and closes the request
// body once the handler is done.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			drained, _ := io.CopyN(io.Discard, r.Body, maxDrainBytes)
			if drained == maxDrainBytes {
				log.Tracef("request body of [%s %s] left partially unread", r.Method, r.URL.Path)
			}
			if err := r.Body.Close(); err != nil {
				log.Tracef("close request body [%s %s]: %s", r.Method, r.URL.Path, err)
			}
		})
	}
}
