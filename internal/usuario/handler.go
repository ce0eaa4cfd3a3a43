package usuario

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/CastelGestao/api-honorarios/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Criar cadastra um novo usuário com a senha já criptografada
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if erros := ValidarCriacao(req); len(erros) > 0 {
		utils.RespondErros(w, http.StatusBadRequest, erros)
		return
	}

	// não permite dois usuários com o mesmo nome
	if _, err := h.Repository.BuscarPorNome(h.DB, req.Nome); err == nil {
		utils.RespondErro(w, http.StatusBadRequest, "Usuário com esse nome já existe")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("erro ao verificar nome de usuário:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar usuário")
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		log.Println("erro ao gerar hash de senha:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar usuário")
		return
	}

	u := Usuario{
		Nome:         req.Nome,
		SenhaHash:    hash,
		Role:         *req.Role,
		Ativo:        *req.Ativo,
		DataCadastro: time.Now(),
	}

	if err := h.Repository.Salvar(h.DB, &u); err != nil {
		log.Println("erro ao salvar usuário:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao criar usuário")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"mensagem": "Usuário criado com sucesso",
		"user":     u,
	})
}

// Listar retorna todos os usuários, do mais recente para o mais antigo
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		log.Println("erro ao listar usuários:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao listar usuários")
		return
	}
	utils.RespondJSON(w, http.StatusOK, usuarios)
}

// BuscarPorID retorna um usuário pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Usuário não encontrado")
			return
		}
		log.Println("erro ao buscar usuário:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao buscar usuário")
		return
	}
	utils.RespondJSON(w, http.StatusOK, u)
}

// Atualizar aplica alterações parciais de nome, role, ativo e senha
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req AtualizarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if erros := ValidarAtualizacao(req); len(erros) > 0 {
		utils.RespondErros(w, http.StatusBadRequest, erros)
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Usuário não encontrado")
			return
		}
		log.Println("erro ao buscar usuário:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar usuário")
		return
	}

	if req.Nome != "" {
		u.Nome = req.Nome
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.Ativo != nil {
		u.Ativo = *req.Ativo
	}
	if req.Senha != "" {
		hash, err := utils.HashSenha(req.Senha)
		if err != nil {
			log.Println("erro ao gerar hash de senha:", err)
			utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar usuário")
			return
		}
		u.SenhaHash = hash
	}

	if err := h.Repository.Salvar(h.DB, u); err != nil {
		log.Println("erro ao atualizar usuário:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao atualizar usuário")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"mensagem": "Usuário atualizado com sucesso",
		"user":     u,
	})
}

// Deletar remove um usuário (exclusão física)
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Usuário não encontrado")
			return
		}
		log.Println("erro ao buscar usuário:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao remover usuário")
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		log.Println("erro ao remover usuário:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao remover usuário")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"mensagem": "Usuário removido com sucesso"})
}
