package lote

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/CastelGestao/api-honorarios/internal/usuario"
	"github.com/CastelGestao/api-honorarios/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarLoteRequest struct {
	UsuarioID               *uint `json:"usuario_id"`
	TotalRegistrosIncluidos *int  `json:"total_registros_incluidos"`
}

// ValidarCriacao coleta as violações do payload de criação de lote.
func ValidarCriacao(req criarLoteRequest) []string {
	var erros []string
	if req.UsuarioID == nil {
		erros = append(erros, "ID do usuário é obrigatório")
	}
	if req.TotalRegistrosIncluidos == nil {
		erros = append(erros, "Total de registros é obrigatório")
	}
	return erros
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Usuarios   usuario.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Usuarios:   usuario.NewRepository(),
	}
}

// Listar retorna todos os lotes com o usuário dono
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	lotes, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		log.Println("erro ao listar lotes:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao listar lotes")
		return
	}
	utils.RespondJSON(w, http.StatusOK, lotes)
}

// BuscarPorID retorna um lote pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	l, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Lote não encontrado")
			return
		}
		log.Println("erro ao buscar lote:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar lote")
		return
	}
	utils.RespondJSON(w, http.StatusOK, l)
}

// Criar registra um novo lote para um usuário existente. A criação dos
// lançamentos do lote é uma operação separada, sem transação conjunta.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarLoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if erros := ValidarCriacao(req); len(erros) > 0 {
		utils.RespondErros(w, http.StatusBadRequest, erros)
		return
	}

	u, err := h.Usuarios.BuscarPorID(h.DB, *req.UsuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Usuário não encontrado")
			return
		}
		log.Println("erro ao buscar usuário do lote:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar lote")
		return
	}

	l := LoteLancamento{
		UsuarioID:               u.ID,
		TotalRegistrosIncluidos: *req.TotalRegistrosIncluidos,
		DataLancamento:          time.Now(),
	}

	if err := h.Repository.Salvar(h.DB, &l); err != nil {
		log.Println("erro ao criar lote:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar lote")
		return
	}
	l.Usuario = u

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"mensagem": "Lote criado com sucesso",
		"lote":     l,
	})
}

// Deletar remove um lote (os lançamentos vinculados ficam com id_lote nulo)
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Lote não encontrado")
			return
		}
		log.Println("erro ao buscar lote:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao remover lote")
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		log.Println("erro ao remover lote:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao remover lote")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"mensagem": "Lote removido com sucesso"})
}
