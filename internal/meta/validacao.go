package meta

import "github.com/shopspring/decimal"

type CriarMetaRequest struct {
	DescricaoMeta     string           `json:"descricao_meta"`
	ValorMeta         *decimal.Decimal `json:"valor_meta"`
	Folga             *int             `json:"folga"`
	GratificacaoValor *decimal.Decimal `json:"gratificacao_valor"`
	TipoGratificacao  string           `json:"tipo_gratificacao"`
	Ativa             *bool            `json:"ativa"`
}

// AtualizarMetaRequest é um merge parcial sem revalidação de schema.
type AtualizarMetaRequest struct {
	DescricaoMeta     string           `json:"descricao_meta"`
	ValorMeta         *decimal.Decimal `json:"valor_meta"`
	Folga             *int             `json:"folga"`
	GratificacaoValor *decimal.Decimal `json:"gratificacao_valor"`
	TipoGratificacao  string           `json:"tipo_gratificacao"`
	Ativa             *bool            `json:"ativa"`
}

// ValidarCriacao coleta as violações do payload de criação de meta.
func ValidarCriacao(req CriarMetaRequest) []string {
	var erros []string
	if req.DescricaoMeta == "" {
		erros = append(erros, "Descrição é obrigatória")
	}
	if req.ValorMeta == nil {
		erros = append(erros, "Valor da meta é obrigatório")
	}
	if req.Folga == nil {
		erros = append(erros, "Folga é obrigatória")
	}
	if req.GratificacaoValor == nil {
		erros = append(erros, "Gratificação é obrigatória")
	}
	if req.TipoGratificacao != "dinheiro" && req.TipoGratificacao != "voucher" {
		erros = append(erros, "O tipo de gratificação deve ser dinheiro ou voucher")
	}
	if req.Ativa == nil {
		erros = append(erros, "O campo ativa é obrigatório")
	}
	return erros
}
