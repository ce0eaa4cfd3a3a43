package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/CastelGestao/api-honorarios/internal/usuario"
	"github.com/CastelGestao/api-honorarios/internal/utils"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Nome  string `json:"nome"`
	Senha string `json:"senha"`
}

// Handler encapsula DB e o repository de usuários
type Handler struct {
	DB       *gorm.DB
	Usuarios usuario.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:       db,
		Usuarios: usuario.NewRepository(),
	}
}

// Login valida nome+senha e emite um token de acesso. Usuário inexistente e
// senha errada respondem com a mesma mensagem, para não permitir enumeração.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "payload inválido")
		return
	}

	if req.Nome == "" || req.Senha == "" {
		// o front espera a chave "message" nas falhas de login
		utils.RespondJSON(w, http.StatusBadRequest, map[string]string{
			"message": "Nome e senha são obrigatórios!",
		})
		return
	}

	user, err := h.Usuarios.BuscarPorNome(h.DB, req.Nome)
	if err != nil {
		utils.RespondJSON(w, http.StatusUnauthorized, map[string]string{
			"message": "Usuario ou senha invalidos",
		})
		return
	}

	if !utils.VerificarSenha(user.SenhaHash, req.Senha) {
		utils.RespondJSON(w, http.StatusUnauthorized, map[string]string{
			"message": "Usuario ou senha invalidos",
		})
		return
	}

	token, err := GerarToken(user.ID, user.Nome, user.Role)
	if err != nil {
		log.Println("erro ao gerar token:", err)
		utils.RespondErro(w, http.StatusInternalServerError, "Erro ao realizar o login")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"mensagem": "Login realizado com sucesso!",
		"token":    token,
		"usuario": map[string]interface{}{
			"id":   user.ID,
			"nome": user.Nome,
			"role": user.Role,
		},
	})
}

// ValidateToken confirma que o token do header é válido (rota protegida)
func (h *Handler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(CtxUsuarioID).(uint)
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Token válido!",
		"userId":  userID,
	})
}
