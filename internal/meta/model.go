package meta

import "github.com/shopspring/decimal"

// Meta é uma regra de meta/gratificação configurada isoladamente; ainda não
// há vínculo com usuários ou fechamentos.
type Meta struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	DescricaoMeta     string          `gorm:"not null" json:"descricao_meta"`
	ValorMeta         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"valor_meta"`
	Folga             int             `gorm:"not null" json:"folga"`
	GratificacaoValor decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"gratificacao_valor"`
	TipoGratificacao  string          `gorm:"not null" json:"tipo_gratificacao"` // dinheiro | voucher
	Ativa             bool            `gorm:"not null;default:true" json:"ativa"`
}

func (Meta) TableName() string {
	return "metas"
}
