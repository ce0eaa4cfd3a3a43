package usuario

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CastelGestao/api-honorarios/internal/utils"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repositorioFalso struct {
	buscarPorNome func(nome string) (*Usuario, error)
	buscarPorID   func(id uint) (*Usuario, error)
	listarTodos   func() ([]Usuario, error)
	salvar        func(u *Usuario) error
	deletar       func(id uint) error
}

func (m *repositorioFalso) BuscarPorNome(db *gorm.DB, nome string) (*Usuario, error) {
	return m.buscarPorNome(nome)
}
func (m *repositorioFalso) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	return m.buscarPorID(id)
}
func (m *repositorioFalso) ListarTodos(db *gorm.DB) ([]Usuario, error) { return m.listarTodos() }
func (m *repositorioFalso) Salvar(db *gorm.DB, u *Usuario) error       { return m.salvar(u) }
func (m *repositorioFalso) Deletar(db *gorm.DB, id uint) error         { return m.deletar(id) }

func TestCriarUsuarioComSenhaCriptografada(t *testing.T) {
	var salvo *Usuario
	h := &Handler{Repository: &repositorioFalso{
		buscarPorNome: func(nome string) (*Usuario, error) { return nil, gorm.ErrRecordNotFound },
		salvar: func(u *Usuario) error {
			u.ID = 1
			salvo = u
			return nil
		},
	}}

	corpo, _ := json.Marshal(map[string]interface{}{
		"nome":       "joao",
		"senha_hash": "abc123",
		"role":       2,
		"ativo":      true,
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(corpo))
	h.Criar(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, salvo)
	assert.Equal(t, "joao", salvo.Nome)
	assert.Equal(t, 2, salvo.Role)
	assert.True(t, salvo.Ativo)
	assert.False(t, salvo.DataCadastro.IsZero())

	// nunca guarda a senha em texto puro
	assert.NotEqual(t, "abc123", salvo.SenhaHash)
	assert.True(t, utils.VerificarSenha(salvo.SenhaHash, "abc123"))
}

func TestCriarUsuarioComNomeRepetido(t *testing.T) {
	h := &Handler{Repository: &repositorioFalso{
		buscarPorNome: func(nome string) (*Usuario, error) {
			return &Usuario{ID: 9, Nome: nome}, nil
		},
	}}

	corpo, _ := json.Marshal(map[string]interface{}{
		"nome":       "joao",
		"senha_hash": "abc123",
		"role":       2,
		"ativo":      true,
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(corpo))
	h.Criar(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Usuário com esse nome já existe")
}

func TestCriarUsuarioSemCamposObrigatorios(t *testing.T) {
	h := &Handler{Repository: &repositorioFalso{}}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte(`{}`)))
	h.Criar(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "O nome é obrigatório")
	assert.Contains(t, w.Body.String(), "A senha é obrigatória")
}

func TestAtualizarUsuarioInexistente(t *testing.T) {
	h := &Handler{Repository: &repositorioFalso{
		buscarPorID: func(id uint) (*Usuario, error) { return nil, gorm.ErrRecordNotFound },
	}}

	router := mux.NewRouter()
	router.HandleFunc("/users/{id}", h.Atualizar).Methods("PUT")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/users/99", bytes.NewReader([]byte(`{"nome":"novo"}`)))
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Usuário não encontrado")
}

func TestAtualizarUsuarioRecriptografaSenha(t *testing.T) {
	hashAntigo, _ := utils.HashSenha("antiga1")

	var salvo *Usuario
	h := &Handler{Repository: &repositorioFalso{
		buscarPorID: func(id uint) (*Usuario, error) {
			return &Usuario{ID: id, Nome: "joao", SenhaHash: hashAntigo, Role: 2, Ativo: true}, nil
		},
		salvar: func(u *Usuario) error {
			salvo = u
			return nil
		},
	}}

	router := mux.NewRouter()
	router.HandleFunc("/users/{id}", h.Atualizar).Methods("PUT")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/users/5", bytes.NewReader([]byte(`{"senha":"nova-senha"}`)))
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, salvo)
	assert.True(t, utils.VerificarSenha(salvo.SenhaHash, "nova-senha"))
	assert.False(t, utils.VerificarSenha(salvo.SenhaHash, "antiga1"))
}

func TestDeletarUsuarioInexistente(t *testing.T) {
	h := &Handler{Repository: &repositorioFalso{
		buscarPorID: func(id uint) (*Usuario, error) { return nil, gorm.ErrRecordNotFound },
	}}

	router := mux.NewRouter()
	router.HandleFunc("/users/{id}", h.Deletar).Methods("DELETE")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/users/99", nil)
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
