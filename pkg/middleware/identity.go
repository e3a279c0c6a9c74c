package middleware

import (
	"net/http"
	"strings"

	"cinema-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderAdminKey = "X-Admin-Key"
)

// Identity reads the optional holder id. Requests without the header are
// anonymous; a malformed id is rejected.
func Identity(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(HeaderUserID))
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			holderID, err := uuid.Parse(raw)
			if err != nil || holderID == uuid.Nil {
				logger.Warn("Invalid holder id header",
					zap.String("value", raw),
					zap.String("path", r.URL.Path))
				utils.ResponseBadRequest(w, "Invalid X-User-ID header", nil)
				return
			}

			ctx := utils.SetHolderContext(r.Context(), holderID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireHolder rejects anonymous callers.
func RequireHolder(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetHolderIDFromContext(r.Context()); !ok {
			utils.ResponseUnauthorized(w, "X-User-ID header required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Admin checks X-Admin-Key against the configured bcrypt hash and marks the
// request as staff.
func Admin(keyHash string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(HeaderAdminKey)
			if key == "" {
				utils.ResponseUnauthorized(w, "Missing admin key")
				return
			}

			if keyHash == "" || bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)) != nil {
				logger.Warn("Admin check: invalid key",
					zap.String("path", r.URL.Path),
					zap.String("ip", r.RemoteAddr))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetStaffContext(r.Context())))
		})
	}
}
