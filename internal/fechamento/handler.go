package fechamento

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/CastelGestao/api-honorarios/internal/utils"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Listar retorna os fechamentos do mais recente para o mais antigo
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	fechamentos, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		log.Println("erro ao listar fechamentos:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao listar fechamentos")
		return
	}
	utils.RespondJSON(w, http.StatusOK, fechamentos)
}

// BuscarPorID retorna um fechamento pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	f, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Fechamento não encontrado")
			return
		}
		log.Println("erro ao buscar fechamento:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar fechamento")
		return
	}
	utils.RespondJSON(w, http.StatusOK, f)
}

// Criar registra um fechamento de auditoria com data_auditoria = agora
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarFechamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if erros := ValidarCriacao(req); len(erros) > 0 {
		utils.RespondErros(w, http.StatusBadRequest, erros)
		return
	}

	inicio, _ := utils.ParseData(req.PeriodoInicio)
	fim, _ := utils.ParseData(req.PeriodoFim)

	// TODO: calcular os agregados (base de cálculo, comissões, impostos e
	// gratificação) a partir dos lançamentos do período; a fórmula ainda
	// não foi definida pelo negócio e os valores entram como enviados.
	f := Fechamento{
		PeriodoInicio:              inicio,
		PeriodoFim:                 fim,
		Empresa:                    req.Empresa,
		UsuarioCobrancaID:          *req.UsuarioCobrancaID,
		UsuarioAuditoriaID:         req.UsuarioAuditoriaID,
		TotalCustasRecebidas:       valorOuZero(req.TotalCustasRecebidas),
		TotalExcecoes:              valorOuZero(req.TotalExcecoes),
		TotalDescontos:             valorOuZero(req.TotalDescontos),
		BaseCalculo:                valorOuZero(req.BaseCalculo),
		PercentualComissao:         valorOuZero(req.PercentualComissao),
		ValorUsuario:               valorOuZero(req.ValorUsuario),
		PercentualComissaoGerencia: valorOuZero(req.PercentualComissaoGerencia),
		ValorGerencia:              valorOuZero(req.ValorGerencia),
		PercentualAliquotaImposto:  valorOuZero(req.PercentualAliquotaImposto),
		ValorImposto:               valorOuZero(req.ValorImposto),
		ValorGratificacao:          valorOuZero(req.ValorGratificacao),
		ValorLiquidoTotal:          valorOuZero(req.ValorLiquidoTotal),
		DataAuditoria:              time.Now(),
	}
	if req.QtdeRegistrosAuditados != nil {
		f.QtdeRegistrosAuditados = *req.QtdeRegistrosAuditados
	}

	if err := h.Repository.Salvar(h.DB, &f); err != nil {
		log.Println("erro ao criar fechamento:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar fechamento")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"mensagem":   "Fechamento criado",
		"fechamento": f,
	})
}

// Atualizar aplica um merge parcial sobre um fechamento existente
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req AtualizarFechamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	f, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Fechamento não encontrado")
			return
		}
		log.Println("erro ao buscar fechamento:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar fechamento")
		return
	}

	if req.PeriodoInicio != "" {
		if inicio, err := utils.ParseData(req.PeriodoInicio); err == nil {
			f.PeriodoInicio = inicio
		} else {
			utils.RespondErro(w, http.StatusBadRequest, "O período inicial deve ser uma data válida")
			return
		}
	}
	if req.PeriodoFim != "" {
		if fim, err := utils.ParseData(req.PeriodoFim); err == nil {
			f.PeriodoFim = fim
		} else {
			utils.RespondErro(w, http.StatusBadRequest, "O período final deve ser uma data válida")
			return
		}
	}
	if req.Empresa != "" {
		f.Empresa = req.Empresa
	}
	if req.UsuarioAuditoriaID != nil {
		f.UsuarioAuditoriaID = req.UsuarioAuditoriaID
	}
	if req.QtdeRegistrosAuditados != nil {
		f.QtdeRegistrosAuditados = *req.QtdeRegistrosAuditados
	}
	mesclarValor(&f.TotalCustasRecebidas, req.TotalCustasRecebidas)
	mesclarValor(&f.TotalExcecoes, req.TotalExcecoes)
	mesclarValor(&f.TotalDescontos, req.TotalDescontos)
	mesclarValor(&f.BaseCalculo, req.BaseCalculo)
	mesclarValor(&f.PercentualComissao, req.PercentualComissao)
	mesclarValor(&f.ValorUsuario, req.ValorUsuario)
	mesclarValor(&f.PercentualComissaoGerencia, req.PercentualComissaoGerencia)
	mesclarValor(&f.ValorGerencia, req.ValorGerencia)
	mesclarValor(&f.PercentualAliquotaImposto, req.PercentualAliquotaImposto)
	mesclarValor(&f.ValorImposto, req.ValorImposto)
	mesclarValor(&f.ValorGratificacao, req.ValorGratificacao)
	mesclarValor(&f.ValorLiquidoTotal, req.ValorLiquidoTotal)

	if err := h.Repository.Salvar(h.DB, f); err != nil {
		log.Println("erro ao atualizar fechamento:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar fechamento")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"mensagem":   "Fechamento atualizado",
		"fechamento": f,
	})
}

// Deletar remove um fechamento (os lançamentos vinculados ficam com
// id_fechamento_auditoria nulo)
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Fechamento não encontrado")
			return
		}
		log.Println("erro ao buscar fechamento:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao remover fechamento")
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		log.Println("erro ao remover fechamento:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao remover fechamento")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"mensagem": "Fechamento removido com sucesso"})
}

func valorOuZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

func mesclarValor(destino *decimal.Decimal, origem *decimal.Decimal) {
	if origem != nil {
		*destino = *origem
	}
}
