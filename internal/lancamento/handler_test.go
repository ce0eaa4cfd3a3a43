package lancamento

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CastelGestao/api-honorarios/internal/paginacao"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repositorioFalso struct {
	listar      func(f Filtro, page, limit int) (*paginacao.Resultado[LancamentoHonorario], error)
	buscarPorID func(id uint) (*LancamentoHonorario, error)
	salvar      func(l *LancamentoHonorario) error
	deletar     func(id uint) error
}

func (m *repositorioFalso) Listar(db *gorm.DB, f Filtro, page, limit int) (*paginacao.Resultado[LancamentoHonorario], error) {
	return m.listar(f, page, limit)
}
func (m *repositorioFalso) BuscarPorID(db *gorm.DB, id uint) (*LancamentoHonorario, error) {
	return m.buscarPorID(id)
}
func (m *repositorioFalso) Salvar(db *gorm.DB, l *LancamentoHonorario) error { return m.salvar(l) }
func (m *repositorioFalso) Deletar(db *gorm.DB, id uint) error               { return m.deletar(id) }

func TestCriarLancamentoCarimbaDefaults(t *testing.T) {
	var salvo *LancamentoHonorario
	h := &Handler{Repository: &repositorioFalso{
		salvar: func(l *LancamentoHonorario) error {
			l.ID = 1
			salvo = l
			return nil
		},
	}}

	corpo, _ := json.Marshal(map[string]interface{}{
		"cpf_cnpj":             "12345678900",
		"nome_cliente":         "Maria",
		"empresa":              "PSG01",
		"qtde_parcelas_pagas":  0,
		"numero_vendas":        "V-001",
		"valor_honorarios":     100.00,
		"valor_parcela":        50.00,
		"vencimento_honorario": "2025-01-01",
		"id_user_lancamento":   7,
		"tipo_inclusao":        "INDIVIDUAL",
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/lancamentos", bytes.NewReader(corpo))
	h.Criar(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, salvo)

	assert.False(t, salvo.Auditado)
	assert.Nil(t, salvo.IDUserAuditou)
	assert.Nil(t, salvo.IDFechamentoAuditoria)
	assert.Equal(t, StatusPendente, salvo.StatusLancamento)
	assert.Equal(t, uint(7), salvo.IDUserLancamento)
	assert.WithinDuration(t, time.Now(), salvo.DataLancamento, 5*time.Second)
	assert.WithinDuration(t, time.Now(), salvo.DataUltEdicao, 5*time.Second)
	assert.Equal(t, 2025, salvo.VencimentoHonorario.Year())
	assert.True(t, salvo.ValorHonorarios.Equal(salvo.ValorParcela.Add(salvo.ValorParcela)))

	assert.Contains(t, w.Body.String(), "Lançamento criado com sucesso")
}

func TestCriarLancamentoSemCampoObrigatorio(t *testing.T) {
	h := &Handler{Repository: &repositorioFalso{}}

	corpo, _ := json.Marshal(map[string]interface{}{
		"nome_cliente": "Maria",
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/lancamentos", bytes.NewReader(corpo))
	h.Criar(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cpf_cnpj")
	assert.NotContains(t, w.Body.String(), "nome_cliente é obrigatório")
}

func TestBuscarLancamentoInexistente(t *testing.T) {
	h := &Handler{Repository: &repositorioFalso{
		buscarPorID: func(id uint) (*LancamentoHonorario, error) { return nil, gorm.ErrRecordNotFound },
	}}

	router := mux.NewRouter()
	router.HandleFunc("/lancamentos/{id}", h.BuscarPorID).Methods("GET")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/lancamentos/123", nil)
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Lançamento não encontrado")
}

func TestAtualizarLancamentoRecarimbaUltimaEdicao(t *testing.T) {
	antes := time.Now().Add(-48 * time.Hour)

	var salvo *LancamentoHonorario
	h := &Handler{Repository: &repositorioFalso{
		buscarPorID: func(id uint) (*LancamentoHonorario, error) {
			return &LancamentoHonorario{
				ID:            id,
				NomeCliente:   "Maria",
				Empresa:       "PSG01",
				DataUltEdicao: antes,
			}, nil
		},
		salvar: func(l *LancamentoHonorario) error {
			salvo = l
			return nil
		},
	}}

	router := mux.NewRouter()
	router.HandleFunc("/lancamentos/{id}", h.Atualizar).Methods("PUT")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/lancamentos/4", bytes.NewReader([]byte(`{"nome_cliente":"Maria Silva"}`)))
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, salvo)
	assert.Equal(t, "Maria Silva", salvo.NomeCliente)
	assert.Equal(t, "PSG01", salvo.Empresa)
	assert.WithinDuration(t, time.Now(), salvo.DataUltEdicao, 5*time.Second)
}

func TestDeletarLancamentoInexistente(t *testing.T) {
	h := &Handler{Repository: &repositorioFalso{
		buscarPorID: func(id uint) (*LancamentoHonorario, error) { return nil, gorm.ErrRecordNotFound },
	}}

	router := mux.NewRouter()
	router.HandleFunc("/lancamentos/{id}", h.Deletar).Methods("DELETE")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/lancamentos/123", nil)
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListarRepassaFiltrosEPaginacao(t *testing.T) {
	var recebido Filtro
	var page, limit int

	h := &Handler{Repository: &repositorioFalso{
		listar: func(f Filtro, p, l int) (*paginacao.Resultado[LancamentoHonorario], error) {
			recebido, page, limit = f, p, l
			return &paginacao.Resultado[LancamentoHonorario]{
				Data:     []LancamentoHonorario{},
				Total:    0,
				Page:     p,
				LastPage: 0,
			}, nil
		},
	}}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet,
		"/lancamentos?page=3&limit=25&empresa=PSG&cpf_cnpj=123&nome_cliente=Maria&data_inicio=2025-01-01&data_fim=2025-01-31", nil)
	h.Listar(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, limit)
	assert.Equal(t, "PSG", recebido.Empresa)
	assert.Equal(t, "123", recebido.CpfCnpj)
	assert.Equal(t, "Maria", recebido.NomeCliente)
	require.NotNil(t, recebido.DataInicio)
	require.NotNil(t, recebido.DataFim)
	assert.Equal(t, time.January, recebido.DataInicio.Month())
}

func TestListarComDefaults(t *testing.T) {
	h := &Handler{Repository: &repositorioFalso{
		listar: func(f Filtro, p, l int) (*paginacao.Resultado[LancamentoHonorario], error) {
			assert.Equal(t, 1, p)
			assert.Equal(t, 10, l)
			assert.Nil(t, f.DataInicio)
			return &paginacao.Resultado[LancamentoHonorario]{Page: p, LastPage: 1}, nil
		},
	}}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/lancamentos", nil)
	h.Listar(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListarPaginaForaDoIntervalo(t *testing.T) {
	h := &Handler{Repository: &repositorioFalso{
		listar: func(f Filtro, p, l int) (*paginacao.Resultado[LancamentoHonorario], error) {
			return nil, paginacao.ErrPaginaInvalida
		},
	}}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/lancamentos?page=99", nil)
	h.Listar(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Página inválida")
}
