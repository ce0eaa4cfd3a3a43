package lancamento

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/CastelGestao/api-honorarios/internal/paginacao"
	"github.com/CastelGestao/api-honorarios/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Listar retorna a página pedida dos lançamentos, com os filtros opcionais
// empresa, cpf_cnpj, nome_cliente e intervalo de data_lancamento.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}

	filtro := Filtro{
		Empresa:     q.Get("empresa"),
		CpfCnpj:     q.Get("cpf_cnpj"),
		NomeCliente: q.Get("nome_cliente"),
	}
	// o intervalo só entra no filtro com as duas pontas informadas
	if inicio := q.Get("data_inicio"); inicio != "" {
		if fim := q.Get("data_fim"); fim != "" {
			dataInicio, errInicio := utils.ParseData(inicio)
			dataFim, errFim := utils.ParseData(fim)
			if errInicio != nil || errFim != nil {
				utils.RespondErro(w, http.StatusBadRequest, "Intervalo de datas inválido")
				return
			}
			filtro.DataInicio = &dataInicio
			filtro.DataFim = &dataFim
		}
	}

	resultado, err := h.Repository.Listar(h.DB, filtro, page, limit)
	if err != nil {
		if errors.Is(err, paginacao.ErrPaginaInvalida) {
			utils.RespondErro(w, http.StatusBadRequest, "Página inválida")
			return
		}
		log.Println("erro ao listar lançamentos:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao listar lançamentos")
		return
	}

	utils.RespondJSON(w, http.StatusOK, resultado)
}

// BuscarPorID retorna um lançamento pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	l, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Lançamento não encontrado")
			return
		}
		log.Println("erro ao buscar lançamento:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar lançamento")
		return
	}
	utils.RespondJSON(w, http.StatusOK, l)
}

// Criar registra um novo lançamento pendente de auditoria
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarLancamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if erros := ValidarCriacao(req); len(erros) > 0 {
		utils.RespondErros(w, http.StatusBadRequest, erros)
		return
	}

	vencimento, _ := utils.ParseData(req.VencimentoHonorario)
	agora := time.Now()

	l := LancamentoHonorario{
		CodigoPessoaUAU:     req.CodigoPessoaUAU,
		CpfCnpj:             req.CpfCnpj,
		NomeCliente:         req.NomeCliente,
		Empresa:             req.Empresa,
		QtdeParcelasPagas:   *req.QtdeParcelasPagas,
		NumeroVendas:        req.NumeroVendas,
		ValorHonorarios:     *req.ValorHonorarios,
		ValorParcela:        *req.ValorParcela,
		VencimentoHonorario: vencimento,
		IDUserLancamento:    *req.IDUserLancamento,
		IDUserAuditou:       nil,
		Auditado:            false,
		TipoInclusao:        req.TipoInclusao,
		IDLote:              req.IDLote,
		// o fechamento só é vinculado quando a auditoria varre o lançamento
		IDFechamentoAuditoria: nil,
		DataLancamento:        agora,
		DataUltEdicao:         agora,
		Observacoes:           req.Observacoes,
		StatusLancamento:      StatusPendente,
	}

	if err := h.Repository.Salvar(h.DB, &l); err != nil {
		log.Println("erro ao criar lançamento:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar lançamento")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"mensagem":   "Lançamento criado com sucesso",
		"lancamento": l,
	})
}

// Atualizar aplica alterações parciais e recarimba data_ult_edicao
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req AtualizarLancamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if erros := ValidarAtualizacao(req); len(erros) > 0 {
		utils.RespondErros(w, http.StatusBadRequest, erros)
		return
	}

	l, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Lançamento não encontrado")
			return
		}
		log.Println("erro ao buscar lançamento:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar lançamento")
		return
	}

	if req.CodigoPessoaUAU != "" {
		l.CodigoPessoaUAU = req.CodigoPessoaUAU
	}
	if req.CpfCnpj != "" {
		l.CpfCnpj = req.CpfCnpj
	}
	if req.NomeCliente != "" {
		l.NomeCliente = req.NomeCliente
	}
	if req.Empresa != "" {
		l.Empresa = req.Empresa
	}
	if req.QtdeParcelasPagas != nil {
		l.QtdeParcelasPagas = *req.QtdeParcelasPagas
	}
	if req.NumeroVendas != "" {
		l.NumeroVendas = req.NumeroVendas
	}
	if req.ValorHonorarios != nil {
		l.ValorHonorarios = *req.ValorHonorarios
	}
	if req.ValorParcela != nil {
		l.ValorParcela = *req.ValorParcela
	}
	if req.VencimentoHonorario != "" {
		vencimento, _ := utils.ParseData(req.VencimentoHonorario)
		l.VencimentoHonorario = vencimento
	}
	if req.Observacoes != nil {
		l.Observacoes = req.Observacoes
	}
	if req.StatusLancamento != "" {
		l.StatusLancamento = req.StatusLancamento
	}
	l.DataUltEdicao = time.Now()

	if err := h.Repository.Salvar(h.DB, l); err != nil {
		log.Println("erro ao atualizar lançamento:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar lançamento")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"mensagem":   "Lançamento atualizado",
		"lancamento": l,
	})
}

// Deletar remove um lançamento (exclusão física)
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Lançamento não encontrado")
			return
		}
		log.Println("erro ao buscar lançamento:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao remover lançamento")
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		log.Println("erro ao remover lançamento:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao remover lançamento")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"mensagem": "Lançamento removido com sucesso"})
}
