package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

const SessionHeader = "X-Session-ID"

type sessionContextKey string

const sessionKey = sessionContextKey("session_id")

// Session resolves the caller's session from the X-Session-ID header. A new
// id is issued when the header is missing or not a UUID, and the id in use
// is always echoed back.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
		}

		w.Header().Set(SessionHeader, sessionID)

		ctx := context.WithValue(r.Context(), sessionKey, sessionID)
		ctx = WithLogger(ctx, LoggerFromContext(ctx).With(slog.String("session_id", sessionID)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SessionFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionKey).(string)
	return sessionID, ok && sessionID != ""
}

// WithSession is used by tests and background jobs that act for a session
// outside an HTTP request.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey, sessionID)
}
