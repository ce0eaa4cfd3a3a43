package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/CastelGestao/api-honorarios/internal/utils"
)

type ctxKey string

// CtxUsuarioID é a chave de contexto com o id do usuário autenticado
const CtxUsuarioID ctxKey = "usuarioID"

// MiddlewareAutenticacao exige um header "Authorization: Bearer <token>".
// Qualquer falha responde 401 com a mesma mensagem genérica, sem expor
// o motivo (ausente, malformado, assinatura errada ou expirado).
func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		h := r.Header.Get("Authorization")
		if h == "" {
			utils.RespondErro(w, http.StatusUnauthorized, "Token inválido ou expirado")
			return
		}

		partes := strings.SplitN(h, " ", 2)
		if len(partes) != 2 || !strings.EqualFold(partes[0], "Bearer") || partes[1] == "" {
			utils.RespondErro(w, http.StatusUnauthorized, "Token inválido ou expirado")
			return
		}

		claims, err := ValidarToken(partes[1])
		if err != nil {
			utils.RespondErro(w, http.StatusUnauthorized, "Token inválido ou expirado")
			return
		}

		ctx := context.WithValue(r.Context(), CtxUsuarioID, claims.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
