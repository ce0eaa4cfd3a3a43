package fechamento

import (
	"github.com/CastelGestao/api-honorarios/internal/utils"
	"github.com/shopspring/decimal"
)

// request DTOs: datas chegam como string ("2006-01-02" ou RFC3339) e os
// agregados são opcionais; quando ausentes ficam zerados.
type CriarFechamentoRequest struct {
	PeriodoInicio     string `json:"periodo_inicio"`
	PeriodoFim        string `json:"periodo_fim"`
	Empresa           string `json:"empresa"`
	UsuarioCobrancaID *uint  `json:"usuario_cobranca_id"`

	UsuarioAuditoriaID *uint `json:"usuario_auditoria_id"`

	TotalCustasRecebidas       *decimal.Decimal `json:"total_custas_recebidas"`
	TotalExcecoes              *decimal.Decimal `json:"total_excecoes"`
	TotalDescontos             *decimal.Decimal `json:"total_descontos"`
	BaseCalculo                *decimal.Decimal `json:"base_calculo"`
	PercentualComissao         *decimal.Decimal `json:"percentual_comissao"`
	ValorUsuario               *decimal.Decimal `json:"valor_usuario"`
	PercentualComissaoGerencia *decimal.Decimal `json:"percentual_comissao_gerencia"`
	ValorGerencia              *decimal.Decimal `json:"valor_gerencia"`
	PercentualAliquotaImposto  *decimal.Decimal `json:"percentual_aliquota_imposto"`
	ValorImposto               *decimal.Decimal `json:"valor_imposto"`
	ValorGratificacao          *decimal.Decimal `json:"valor_gratificacao"`
	ValorLiquidoTotal          *decimal.Decimal `json:"valor_liquido_total"`

	QtdeRegistrosAuditados *int `json:"qtde_registros_auditados"`
}

type AtualizarFechamentoRequest struct {
	PeriodoInicio      string `json:"periodo_inicio"`
	PeriodoFim         string `json:"periodo_fim"`
	Empresa            string `json:"empresa"`
	UsuarioAuditoriaID *uint  `json:"usuario_auditoria_id"`

	TotalCustasRecebidas       *decimal.Decimal `json:"total_custas_recebidas"`
	TotalExcecoes              *decimal.Decimal `json:"total_excecoes"`
	TotalDescontos             *decimal.Decimal `json:"total_descontos"`
	BaseCalculo                *decimal.Decimal `json:"base_calculo"`
	PercentualComissao         *decimal.Decimal `json:"percentual_comissao"`
	ValorUsuario               *decimal.Decimal `json:"valor_usuario"`
	PercentualComissaoGerencia *decimal.Decimal `json:"percentual_comissao_gerencia"`
	ValorGerencia              *decimal.Decimal `json:"valor_gerencia"`
	PercentualAliquotaImposto  *decimal.Decimal `json:"percentual_aliquota_imposto"`
	ValorImposto               *decimal.Decimal `json:"valor_imposto"`
	ValorGratificacao          *decimal.Decimal `json:"valor_gratificacao"`
	ValorLiquidoTotal          *decimal.Decimal `json:"valor_liquido_total"`

	QtdeRegistrosAuditados *int `json:"qtde_registros_auditados"`
}

// ValidarCriacao coleta as violações do payload de criação de fechamento.
func ValidarCriacao(req CriarFechamentoRequest) []string {
	var erros []string
	if req.PeriodoInicio == "" {
		erros = append(erros, "O período inicial é obrigatório")
	} else if _, err := utils.ParseData(req.PeriodoInicio); err != nil {
		erros = append(erros, "O período inicial deve ser uma data válida")
	}
	if req.PeriodoFim == "" {
		erros = append(erros, "O período final é obrigatório")
	} else if _, err := utils.ParseData(req.PeriodoFim); err != nil {
		erros = append(erros, "O período final deve ser uma data válida")
	}
	if req.Empresa == "" {
		erros = append(erros, "A empresa é obrigatória")
	}
	if req.UsuarioCobrancaID == nil {
		erros = append(erros, "O usuário de cobrança é obrigatório")
	}
	return erros
}
