package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

const (
	// AdminTokenHeader заголовок с токеном администратора
	AdminTokenHeader = "X-Admin-Token"

	bearerPrefix    = "Bearer "
	msgUnauthorized = "Unauthorized"
)

type adminContextKey struct{}

// TokenVerifier проверяет токен и возвращает имя администратора
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth пропускает только запросы с действительным токеном администратора.
// Токен берётся из X-Admin-Token или из Authorization: Bearer.
func AdminAuth(verifier TokenVerifier, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				logger.Warn("%s %s - Missing admin token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			admin, err := verifier.VerifyToken(token)
			if err != nil {
				logger.Warn("%s %s - Invalid admin token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), adminContextKey{}, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext возвращает имя администратора, прошедшего AdminAuth
func AdminFromContext(ctx context.Context) (string, bool) {
	admin, ok := ctx.Value(adminContextKey{}).(string)
	return admin, ok
}

func extractToken(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(AdminTokenHeader)); token != "" {
		return token
	}

	authHeader := r.Header.Get("Authorization")
	if len(authHeader) > len(bearerPrefix) && strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(authHeader[len(bearerPrefix):])
	}

	return ""
}
