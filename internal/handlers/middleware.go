package handlers

import (
	"context"
	"net/http"
	"strings"

	"gitlab.com/golf-2025.net/internal/core/ports/primary"
	"gitlab.com/golf-2025.net/internal/domain"
)

type authPayloadKey struct{}

type MiddlewareProvider struct {
	jwtService primary.JWTService
	logger     primary.Logger
}

func New(jwtService primary.JWTService, logger primary.Logger) *MiddlewareProvider {
	return &MiddlewareProvider{
		jwtService: jwtService,
		logger:     logger,
	}
}

// JWTMiddleware rejects requests without a valid bearer token
func (m *MiddlewareProvider) JWTMiddleware(next http.Handler) http.Handler {
	return m.authenticate(next, true)
}

// OptionalJWTMiddleware lets anonymous requests through; a token that is present must still be valid
func (m *MiddlewareProvider) OptionalJWTMiddleware(next http.Handler) http.Handler {
	return m.authenticate(next, false)
}

func (m *MiddlewareProvider) authenticate(next http.Handler, required bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			if required {
				ResponseError(w, "Authorization header missing", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		// Extract token from "Bearer <token>"
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			ResponseError(w, "Invalid authorization header", http.StatusUnauthorized)
			return
		}

		payload, err := m.jwtService.DecodeTokenPayload(r.Context(), tokenString)
		if err != nil {
			m.logger.Debug("Rejected token", "error", err)
			ResponseError(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), authPayloadKey{}, payload)))
	})
}

// AuthPayloadFromContext returns the caller set by the JWT middleware
func AuthPayloadFromContext(ctx context.Context) (domain.AuthPayload, bool) {
	payload, ok := ctx.Value(authPayloadKey{}).(domain.AuthPayload)
	return payload, ok
}
