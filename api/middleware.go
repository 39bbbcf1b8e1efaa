package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/stylelab/fitting-lab/utils"
)

type contextKey string

const userIDContextKey contextKey = "userID"

// AuthMiddleware attaches the authenticated user id to the request context
// when a valid bearer token is present. The lab itself works anonymously, so
// a missing or invalid token does not block the request; it only leaves the
// context without a user id.
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if userID, err := utils.ValidateToken(tokenString); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), userIDContextKey, userID))
			}
		}
		next(w, r)
	}
}

// GetUserIDFromContext extracts the user ID placed there by AuthMiddleware.
func GetUserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("no user id in context")
	}
	return userID, nil
}
