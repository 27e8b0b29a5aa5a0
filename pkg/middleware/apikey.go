package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/vfg2006/seller-ops-api/pkg/apiErrors"
)

// APIKey protege as rotas de disparo manual quando uma chave está configurada.
// Chave vazia desabilita a checagem (painel local de operador único).
func APIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get("X-API-Key")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidAPIKey, "Chave de API inválida ou ausente", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
