package handler

import (
	"context"
	"net/http"
	"strings"

	"cinemadb-api/internal/token"

	"go.uber.org/zap"
)

type ctxKey string

const CtxClaims ctxKey = "claims"

// RequireToken exige `Authorization: Bearer <token>` y mete los claims
// decodificados en el contexto. Header ausente, segmento faltante y token
// inválido responden el mismo 403, sin distinguirse.
func RequireToken(tokens *token.Service, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) < 2 || parts[1] == "" {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn("token rechazado", zap.Error(err))
				w.WriteHeader(http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), CtxClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminOnly solo deja pasar a role == "admin".
func AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil || claims.Role != "admin" {
				writeJSON(w, http.StatusForbidden, map[string]any{
					"message": "Forbidden: Admins only",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromContext helper para sacar los claims del contexto.
func ClaimsFromContext(ctx context.Context) *token.Claims {
	if v := ctx.Value(CtxClaims); v != nil {
		if c, ok := v.(*token.Claims); ok {
			return c
		}
	}
	return nil
}
