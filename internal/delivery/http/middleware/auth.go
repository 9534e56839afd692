package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "eventsportal/internal/delivery/http/helpers"
	"eventsportal/internal/domain"
)

var (
	errNoAuthHeader = errors.New("missing authorization header")
	errNotBearer    = errors.New("invalid authorization format")
	errEmptyToken   = errors.New("missing token")
)

type sessionUserKey struct{}

func withSessionUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, sessionUserKey{}, userID)
}

// SessionUserID returns the ID of the user whose token authorized the request.
func SessionUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionUserKey{}).(string)
	return id, ok && id != ""
}

// bearerToken extracts the credential from an Authorization header value.
// The scheme name is matched case-insensitively.
func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errNoAuthHeader
	}
	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "Bearer") {
		return "", errNotBearer
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errEmptyToken
	}
	return token, nil
}

// RequireAuth rejects requests without a valid session token with 401 and
// stores the token's user ID in the request context for the events handlers.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r.Header.Get("Authorization"))
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, err.Error())
				return
			}
			userID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "session token rejected", "method", r.Method, "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(withSessionUser(r.Context(), userID)))
		})
	}
}
