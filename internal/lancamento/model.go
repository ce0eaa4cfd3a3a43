package lancamento

import (
	"time"

	"github.com/CastelGestao/api-honorarios/internal/fechamento"
	"github.com/CastelGestao/api-honorarios/internal/lote"
	"github.com/CastelGestao/api-honorarios/internal/usuario"
	"github.com/shopspring/decimal"
)

// Tipos de inclusão aceitos
const (
	TipoInclusaoIndividual = "INDIVIDUAL"
	TipoInclusaoLote       = "LOTE"
)

// Status inicial de todo lançamento
const StatusPendente = "PENDENTE"

// LancamentoHonorario é um honorário cobrável de um cliente. A empresa é
// gravada pelo código em texto (sem FK para empresas); quando o tipo de
// inclusão é LOTE o id_lote deve vir preenchido, mas o banco não exige.
type LancamentoHonorario struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	CodigoPessoaUAU   string          `gorm:"column:codigo_pessoaUAU" json:"codigo_pessoaUAU"`
	CpfCnpj           string          `gorm:"column:cpf_cnpj;not null" json:"cpf_cnpj"`
	NomeCliente       string          `gorm:"not null" json:"nome_cliente"`
	Empresa           string          `gorm:"not null" json:"empresa"`
	QtdeParcelasPagas int             `gorm:"not null" json:"qtde_parcelas_pagas"`
	NumeroVendas      string          `gorm:"not null" json:"numero_vendas"`
	ValorHonorarios   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"valor_honorarios"`
	ValorParcela      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"valor_parcela"`

	VencimentoHonorario time.Time `gorm:"type:date;not null" json:"vencimento_honorario"`

	IDUserLancamento  uint             `gorm:"column:id_user_lancamento;not null" json:"id_user_lancamento"`
	UsuarioLancamento *usuario.Usuario `gorm:"foreignKey:IDUserLancamento;constraint:OnDelete:RESTRICT" json:"usuarioLancamento,omitempty"`

	IDUserAuditou    *uint            `gorm:"column:id_user_auditou" json:"id_user_auditou"`
	UsuarioAuditoria *usuario.Usuario `gorm:"foreignKey:IDUserAuditou;constraint:OnDelete:SET NULL" json:"usuarioAuditoria,omitempty"`

	Auditado     bool   `gorm:"not null;default:false" json:"auditado"`
	TipoInclusao string `gorm:"not null" json:"tipo_inclusao"` // INDIVIDUAL | LOTE

	IDLote *uint                `gorm:"column:id_lote" json:"id_lote"`
	Lote   *lote.LoteLancamento `gorm:"foreignKey:IDLote;constraint:OnDelete:SET NULL" json:"lote,omitempty"`

	IDFechamentoAuditoria *uint                  `gorm:"column:id_fechamento_auditoria" json:"id_fechamento_auditoria"`
	Fechamento            *fechamento.Fechamento `gorm:"foreignKey:IDFechamentoAuditoria;constraint:OnDelete:SET NULL" json:"fechamento,omitempty"`

	DataLancamento   time.Time  `json:"data_lancamento"`
	DataUltEdicao    time.Time  `json:"data_ult_edicao"`
	DataAuditoria    *time.Time `json:"data_auditoria"`
	Observacoes      *string    `json:"observacoes"`
	StatusLancamento string     `gorm:"not null;default:'PENDENTE'" json:"status_lancamento"`
}

func (LancamentoHonorario) TableName() string {
	return "lancamentos_honorarios"
}
