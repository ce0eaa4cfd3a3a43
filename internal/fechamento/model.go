package fechamento

import (
	"time"

	"github.com/CastelGestao/api-honorarios/internal/usuario"
	"github.com/shopspring/decimal"
)

// Fechamento é o registro de auditoria periódica de uma empresa. Os campos
// agregados são persistidos como enviados; a fórmula que os deriva dos
// lançamentos do período ainda não foi definida pelo negócio.
type Fechamento struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PeriodoInicio time.Time `gorm:"not null" json:"periodo_inicio"`
	PeriodoFim    time.Time `gorm:"not null" json:"periodo_fim"`
	Empresa       string    `gorm:"not null" json:"empresa"`

	UsuarioCobrancaID  uint             `gorm:"column:usuario_cobranca_id;not null" json:"usuario_cobranca_id"`
	UsuarioCobranca    *usuario.Usuario `gorm:"foreignKey:UsuarioCobrancaID;constraint:OnDelete:RESTRICT" json:"usuarioCobranca,omitempty"`
	UsuarioAuditoriaID *uint            `gorm:"column:usuario_auditoria_id" json:"usuario_auditoria_id"`
	UsuarioAuditoria   *usuario.Usuario `gorm:"foreignKey:UsuarioAuditoriaID;constraint:OnDelete:SET NULL" json:"usuarioAuditoria,omitempty"`

	TotalCustasRecebidas       decimal.Decimal `gorm:"type:decimal(15,2)" json:"total_custas_recebidas"`
	TotalExcecoes              decimal.Decimal `gorm:"type:decimal(15,2)" json:"total_excecoes"`
	TotalDescontos             decimal.Decimal `gorm:"type:decimal(15,2)" json:"total_descontos"`
	BaseCalculo                decimal.Decimal `gorm:"type:decimal(15,2)" json:"base_calculo"`
	PercentualComissao         decimal.Decimal `gorm:"type:decimal(5,2)" json:"percentual_comissao"`
	ValorUsuario               decimal.Decimal `gorm:"type:decimal(15,2)" json:"valor_usuario"`
	PercentualComissaoGerencia decimal.Decimal `gorm:"type:decimal(5,2)" json:"percentual_comissao_gerencia"`
	ValorGerencia              decimal.Decimal `gorm:"type:decimal(15,2)" json:"valor_gerencia"`
	PercentualAliquotaImposto  decimal.Decimal `gorm:"type:decimal(5,2)" json:"percentual_aliquota_imposto"`
	ValorImposto               decimal.Decimal `gorm:"type:decimal(15,2)" json:"valor_imposto"`
	ValorGratificacao          decimal.Decimal `gorm:"type:decimal(15,2)" json:"valor_gratificacao"`
	ValorLiquidoTotal          decimal.Decimal `gorm:"type:decimal(15,2)" json:"valor_liquido_total"`

	QtdeRegistrosAuditados int       `json:"qtde_registros_auditados"`
	DataAuditoria          time.Time `json:"data_auditoria"`
}

func (Fechamento) TableName() string {
	return "fechamento"
}
