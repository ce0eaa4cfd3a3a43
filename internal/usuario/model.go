package usuario

import "time"

// Usuario representa um operador do sistema: role 1 = administrador,
// qualquer outro valor = faturista.
type Usuario struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nome         string    `gorm:"size:255;not null;uniqueIndex" json:"nome"`
	SenhaHash    string    `gorm:"column:senha_hash;not null" json:"-"`
	Role         int       `gorm:"not null" json:"role"`
	Ativo        bool      `gorm:"not null;default:true" json:"ativo"`
	DataCadastro time.Time `json:"data_cadastro"`
}

func (Usuario) TableName() string {
	return "users"
}
