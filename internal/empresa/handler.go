package empresa

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/CastelGestao/api-honorarios/internal/utils"
	"gorm.io/gorm"
)

type criarEmpresaRequest struct {
	Codigo string `json:"codigo"`
	Nome   string `json:"nome"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Listar retorna todas as empresas ordenadas pelo nome
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	empresas, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		log.Println("erro ao listar empresas:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao listar empresas")
		return
	}
	utils.RespondJSON(w, http.StatusOK, empresas)
}

// Criar cadastra uma nova empresa
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarEmpresaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if req.Nome == "" {
		utils.RespondErro(w, http.StatusBadRequest, "Nome da empresa é obrigatório")
		return
	}

	e := Empresa{Codigo: req.Codigo, Nome: req.Nome}
	if err := h.Repository.Salvar(h.DB, &e); err != nil {
		log.Println("erro ao criar empresa:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar empresa")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"mensagem": "Empresa criada com sucesso",
		"empresa":  e,
	})
}
