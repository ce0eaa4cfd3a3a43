package lancamento

import (
	"github.com/CastelGestao/api-honorarios/internal/utils"
	"github.com/shopspring/decimal"
)

// request DTOs: o vencimento chega como string de data e é convertido no
// handler depois de validado.
type CriarLancamentoRequest struct {
	CodigoPessoaUAU     string           `json:"codigo_pessoaUAU"`
	CpfCnpj             string           `json:"cpf_cnpj"`
	NomeCliente         string           `json:"nome_cliente"`
	Empresa             string           `json:"empresa"`
	QtdeParcelasPagas   *int             `json:"qtde_parcelas_pagas"`
	NumeroVendas        string           `json:"numero_vendas"`
	ValorHonorarios     *decimal.Decimal `json:"valor_honorarios"`
	ValorParcela        *decimal.Decimal `json:"valor_parcela"`
	VencimentoHonorario string           `json:"vencimento_honorario"`
	IDUserLancamento    *uint            `json:"id_user_lancamento"`
	TipoInclusao        string           `json:"tipo_inclusao"`
	IDLote              *uint            `json:"id_lote"`
	Observacoes         *string          `json:"observacoes"`
}

type AtualizarLancamentoRequest struct {
	CodigoPessoaUAU     string           `json:"codigo_pessoaUAU"`
	CpfCnpj             string           `json:"cpf_cnpj"`
	NomeCliente         string           `json:"nome_cliente"`
	Empresa             string           `json:"empresa"`
	QtdeParcelasPagas   *int             `json:"qtde_parcelas_pagas"`
	NumeroVendas        string           `json:"numero_vendas"`
	ValorHonorarios     *decimal.Decimal `json:"valor_honorarios"`
	ValorParcela        *decimal.Decimal `json:"valor_parcela"`
	VencimentoHonorario string           `json:"vencimento_honorario"`
	Observacoes         *string          `json:"observacoes"`
	StatusLancamento    string           `json:"status_lancamento"`
}

// ValidarCriacao coleta todas as violações do payload de criação, sem parar
// na primeira.
func ValidarCriacao(req CriarLancamentoRequest) []string {
	var erros []string
	if req.CpfCnpj == "" {
		erros = append(erros, "O campo cpf_cnpj é obrigatório")
	}
	if req.NomeCliente == "" {
		erros = append(erros, "O campo nome_cliente é obrigatório")
	}
	if req.Empresa == "" {
		erros = append(erros, "O campo empresa é obrigatório")
	}
	if req.QtdeParcelasPagas == nil {
		erros = append(erros, "O campo qtde_parcelas_pagas é obrigatório")
	} else if *req.QtdeParcelasPagas < 0 {
		erros = append(erros, "O campo qtde_parcelas_pagas deve ser maior ou igual a zero")
	}
	if req.NumeroVendas == "" {
		erros = append(erros, "O campo numero_vendas é obrigatório")
	}
	if req.ValorHonorarios == nil {
		erros = append(erros, "O campo valor_honorarios é obrigatório")
	} else if req.ValorHonorarios.IsNegative() {
		erros = append(erros, "O campo valor_honorarios deve ser maior ou igual a zero")
	}
	if req.ValorParcela == nil {
		erros = append(erros, "O campo valor_parcela é obrigatório")
	} else if req.ValorParcela.IsNegative() {
		erros = append(erros, "O campo valor_parcela deve ser maior ou igual a zero")
	}
	if req.VencimentoHonorario == "" {
		erros = append(erros, "O campo vencimento_honorario é obrigatório")
	} else if _, err := utils.ParseData(req.VencimentoHonorario); err != nil {
		erros = append(erros, "O campo vencimento_honorario deve ser uma data válida")
	}
	if req.IDUserLancamento == nil {
		erros = append(erros, "O campo id_user_lancamento é obrigatório")
	}
	if req.TipoInclusao == "" {
		erros = append(erros, "O campo tipo_inclusao é obrigatório")
	} else if req.TipoInclusao != TipoInclusaoIndividual && req.TipoInclusao != TipoInclusaoLote {
		erros = append(erros, "O campo tipo_inclusao deve ser INDIVIDUAL ou LOTE")
	}
	return erros
}

// ValidarAtualizacao valida apenas os campos presentes.
func ValidarAtualizacao(req AtualizarLancamentoRequest) []string {
	var erros []string
	if req.QtdeParcelasPagas != nil && *req.QtdeParcelasPagas < 0 {
		erros = append(erros, "O campo qtde_parcelas_pagas deve ser maior ou igual a zero")
	}
	if req.ValorHonorarios != nil && req.ValorHonorarios.IsNegative() {
		erros = append(erros, "O campo valor_honorarios deve ser maior ou igual a zero")
	}
	if req.ValorParcela != nil && req.ValorParcela.IsNegative() {
		erros = append(erros, "O campo valor_parcela deve ser maior ou igual a zero")
	}
	if req.VencimentoHonorario != "" {
		if _, err := utils.ParseData(req.VencimentoHonorario); err != nil {
			erros = append(erros, "O campo vencimento_honorario deve ser uma data válida")
		}
	}
	return erros
}
