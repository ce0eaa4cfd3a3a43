package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func middlewareDeTeste(capturado *uint) http.Handler {
	return MiddlewareAutenticacao(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := r.Context().Value(CtxUsuarioID).(uint); ok {
			*capturado = id
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestMiddlewareSemHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	var id uint
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/lancamentos", nil)

	middlewareDeTeste(&id).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token inválido ou expirado")
}

func TestMiddlewareHeaderMalformado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	casos := []string{
		"Token abc",
		"Bearer",
		"Bearer ",
		"abc",
	}

	for _, header := range casos {
		var id uint
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/lancamentos", nil)
		r.Header.Set("Authorization", header)

		middlewareDeTeste(&id).ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestMiddlewareTokenInvalido(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	var id uint
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/lancamentos", nil)
	r.Header.Set("Authorization", "Bearer token-qualquer")

	middlewareDeTeste(&id).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareTokenValido(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(13, "ana", 1)
	require.NoError(t, err)

	var id uint
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/lancamentos", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	middlewareDeTeste(&id).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(13), id)
}

func TestMiddlewareDeixaPassarPreflight(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	var id uint
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodOptions, "/lancamentos", nil)

	middlewareDeTeste(&id).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}
