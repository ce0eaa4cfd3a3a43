package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CastelGestao/api-honorarios/internal/usuario"
	"github.com/CastelGestao/api-honorarios/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type usuariosFalsos struct {
	buscarPorNome func(nome string) (*usuario.Usuario, error)
}

func (m *usuariosFalsos) BuscarPorNome(db *gorm.DB, nome string) (*usuario.Usuario, error) {
	return m.buscarPorNome(nome)
}
func (m *usuariosFalsos) BuscarPorID(db *gorm.DB, id uint) (*usuario.Usuario, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *usuariosFalsos) ListarTodos(db *gorm.DB) ([]usuario.Usuario, error) { return nil, nil }
func (m *usuariosFalsos) Salvar(db *gorm.DB, u *usuario.Usuario) error       { return nil }
func (m *usuariosFalsos) Deletar(db *gorm.DB, id uint) error                 { return nil }

func fazerLogin(t *testing.T, h *Handler, corpo interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(corpo)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(b))
	h.Login(w, r)
	return w
}

func TestLoginComCredenciaisValidas(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	hash, err := utils.HashSenha("abc123")
	require.NoError(t, err)

	h := &Handler{Usuarios: &usuariosFalsos{
		buscarPorNome: func(nome string) (*usuario.Usuario, error) {
			assert.Equal(t, "joao", nome)
			return &usuario.Usuario{ID: 5, Nome: "joao", SenhaHash: hash, Role: 2, Ativo: true}, nil
		},
	}}

	w := fazerLogin(t, h, LoginRequest{Nome: "joao", Senha: "abc123"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Mensagem string `json:"mensagem"`
		Token    string `json:"token"`
		Usuario  struct {
			ID   uint   `json:"id"`
			Nome string `json:"nome"`
			Role int    `json:"role"`
		} `json:"usuario"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Login realizado com sucesso!", resp.Mensagem)
	assert.Equal(t, uint(5), resp.Usuario.ID)
	assert.Equal(t, 2, resp.Usuario.Role)

	// o id das claims do token precisa bater com o usuário autenticado
	claims, err := ValidarToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(5), claims.ID)
}

func TestLoginNaoDiferenciaUsuarioDeSenha(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	hash, err := utils.HashSenha("abc123")
	require.NoError(t, err)

	usuarioInexistente := &Handler{Usuarios: &usuariosFalsos{
		buscarPorNome: func(nome string) (*usuario.Usuario, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}}
	senhaErrada := &Handler{Usuarios: &usuariosFalsos{
		buscarPorNome: func(nome string) (*usuario.Usuario, error) {
			return &usuario.Usuario{ID: 5, Nome: "joao", SenhaHash: hash}, nil
		},
	}}

	w1 := fazerLogin(t, usuarioInexistente, LoginRequest{Nome: "fantasma", Senha: "abc123"})
	w2 := fazerLogin(t, senhaErrada, LoginRequest{Nome: "joao", Senha: "senha-errada"})

	assert.Equal(t, http.StatusUnauthorized, w1.Code)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
	// mesma resposta nos dois casos, sem denunciar qual parte falhou
	assert.Equal(t, w1.Body.String(), w2.Body.String())
}

func TestLoginSemNomeOuSenha(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	h := &Handler{Usuarios: &usuariosFalsos{}}

	w := fazerLogin(t, h, LoginRequest{Nome: "joao"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Nome e senha são obrigatórios!")

	w = fazerLogin(t, h, LoginRequest{Senha: "abc123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
