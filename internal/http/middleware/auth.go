package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/conectavoluntarios/api/internal/service"
)

type contextKey string

const (
	ContextKeyIdentity contextKey = "identity"
)

// Authenticator valida um bearer token e devolve a identidade da requisição.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*service.Identity, error)
}

// Auth valida o JWT de acesso, carrega o usuário e injeta a identidade no contexto.
func Auth(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				writeError(w, http.StatusUnauthorized, "AUTH", "token ausente")
				return
			}

			identity, err := authenticator.Authenticate(r.Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				if errors.Is(err, service.ErrUnauthorized) {
					writeError(w, http.StatusUnauthorized, "AUTH", service.PublicMessage(err, "token inválido"))
					return
				}
				log.Ctx(r.Context()).Error().Err(err).Msg("auth: falha ao carregar usuário")
				writeError(w, http.StatusInternalServerError, "INTERNAL", "erro interno")
				return
			}

			ctx := WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithIdentity injeta a identidade autenticada no contexto.
func WithIdentity(ctx context.Context, identity *service.Identity) context.Context {
	return context.WithValue(ctx, ContextKeyIdentity, identity)
}

// GetIdentity recupera a identidade do contexto (nil quando ausente).
func GetIdentity(ctx context.Context) *service.Identity {
	val, _ := ctx.Value(ContextKeyIdentity).(*service.Identity)
	return val
}

// RequireRole garante que o token carregue o papel informado.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := service.RequireRole(GetIdentity(r.Context()), role)
			switch {
			case err == nil:
				next.ServeHTTP(w, r)
			case errors.Is(err, service.ErrUnauthorized):
				writeError(w, http.StatusUnauthorized, "AUTH", service.PublicMessage(err, "token ausente"))
			default:
				writeError(w, http.StatusForbidden, "FORBIDDEN", service.PublicMessage(err, "permissão negada"))
			}
		})
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": nil,
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
