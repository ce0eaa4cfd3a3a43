package lote

import (
	"time"

	"github.com/CastelGestao/api-honorarios/internal/usuario"
)

// LoteLancamento agrupa lançamentos incluídos em uma mesma operação de
// digitação em massa. total_registros_incluidos é o total declarado pelo
// usuário, não é conferido contra os lançamentos efetivamente criados.
type LoteLancamento struct {
	ID                      uint             `gorm:"primaryKey" json:"id"`
	UsuarioID               uint             `gorm:"column:usuario_id;not null" json:"usuario_id"`
	Usuario                 *usuario.Usuario `gorm:"foreignKey:UsuarioID;constraint:OnDelete:RESTRICT" json:"usuario,omitempty"`
	TotalRegistrosIncluidos int              `gorm:"not null" json:"total_registros_incluidos"`
	DataLancamento          time.Time        `json:"data_lancamento"`
}

func (LoteLancamento) TableName() string {
	return "lotes_lancamento"
}
