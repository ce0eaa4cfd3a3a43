package meta

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

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

// Listar retorna as metas ordenadas pelo valor
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	metas, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		log.Println("erro ao listar metas:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao listar metas")
		return
	}
	utils.RespondJSON(w, http.StatusOK, metas)
}

// BuscarPorID retorna uma meta pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	m, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Meta não encontrada")
			return
		}
		log.Println("erro ao buscar meta:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar meta")
		return
	}
	utils.RespondJSON(w, http.StatusOK, m)
}

// Criar cadastra uma nova meta
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarMetaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if erros := ValidarCriacao(req); len(erros) > 0 {
		utils.RespondErros(w, http.StatusBadRequest, erros)
		return
	}

	m := Meta{
		DescricaoMeta:     req.DescricaoMeta,
		ValorMeta:         *req.ValorMeta,
		Folga:             *req.Folga,
		GratificacaoValor: *req.GratificacaoValor,
		TipoGratificacao:  req.TipoGratificacao,
		Ativa:             *req.Ativa,
	}

	if err := h.Repository.Salvar(h.DB, &m); err != nil {
		log.Println("erro ao criar meta:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar meta")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"mensagem": "Meta criada com sucesso",
		"meta":     m,
	})
}

// Atualizar aplica um merge parcial sobre a meta, sem revalidar o schema
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req AtualizarMetaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	m, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Meta não encontrada")
			return
		}
		log.Println("erro ao buscar meta:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar meta")
		return
	}

	if req.DescricaoMeta != "" {
		m.DescricaoMeta = req.DescricaoMeta
	}
	if req.ValorMeta != nil {
		m.ValorMeta = *req.ValorMeta
	}
	if req.Folga != nil {
		m.Folga = *req.Folga
	}
	if req.GratificacaoValor != nil {
		m.GratificacaoValor = *req.GratificacaoValor
	}
	if req.TipoGratificacao != "" {
		m.TipoGratificacao = req.TipoGratificacao
	}
	if req.Ativa != nil {
		m.Ativa = *req.Ativa
	}

	if err := h.Repository.Salvar(h.DB, m); err != nil {
		log.Println("erro ao atualizar meta:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar meta")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"mensagem": "Meta atualizada",
		"meta":     m,
	})
}

// Deletar remove uma meta
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Meta não encontrada")
			return
		}
		log.Println("erro ao buscar meta:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao remover meta")
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		log.Println("erro ao remover meta:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao remover meta")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"mensagem": "Meta removida com sucesso"})
}
