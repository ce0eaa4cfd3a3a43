package usuario

// request DTOs

// CriarUsuarioRequest recebe a senha em texto no campo senha_hash: é o
// contrato que o front já usa, o hash é gerado aqui antes de persistir.
type CriarUsuarioRequest struct {
	Nome  string `json:"nome"`
	Senha string `json:"senha_hash"`
	Role  *int   `json:"role"`
	Ativo *bool  `json:"ativo"`
}

type AtualizarUsuarioRequest struct {
	Nome  string `json:"nome"`
	Senha string `json:"senha"`
	Role  *int   `json:"role"`
	Ativo *bool  `json:"ativo"`
}

// ValidarCriacao coleta todas as violações do payload de criação.
func ValidarCriacao(req CriarUsuarioRequest) []string {
	var erros []string
	if req.Nome == "" {
		erros = append(erros, "O nome é obrigatório")
	} else if len(req.Nome) < 3 {
		erros = append(erros, "O nome deve ter no mínimo 3 caracteres")
	}
	if req.Senha == "" {
		erros = append(erros, "A senha é obrigatória")
	} else if len(req.Senha) < 6 {
		erros = append(erros, "A senha deve ter no mínimo 6 caracteres")
	}
	if req.Role == nil {
		erros = append(erros, "O role é obrigatório")
	}
	if req.Ativo == nil {
		erros = append(erros, "O campo ativo é obrigatório")
	}
	return erros
}

// ValidarAtualizacao aplica os mínimos apenas aos campos presentes.
func ValidarAtualizacao(req AtualizarUsuarioRequest) []string {
	var erros []string
	if req.Nome != "" && len(req.Nome) < 3 {
		erros = append(erros, "O nome deve ter no mínimo 3 caracteres")
	}
	if req.Senha != "" && len(req.Senha) < 6 {
		erros = append(erros, "A senha deve ter no mínimo 6 caracteres")
	}
	return erros
}
