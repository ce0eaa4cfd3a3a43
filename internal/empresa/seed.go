package empresa

import (
	"log"

	"gorm.io/gorm"
)

// catálogo inicial de empreendimentos
var empresasIniciais = []Empresa{
	{Codigo: "PSG01", Nome: "RES. PORTO SEGURO"},
	{Codigo: "PSG02", Nome: "PORTO SEGURO 2"},
	{Codigo: "CSUL", Nome: "RES. CRUZEIRO DO SUL"},
	{Codigo: "TG1", Nome: "RES. TEREZINHA GLORIA"},
	{Codigo: "GRAVE", Nome: "GARAVELO SUL"},
	{Codigo: "BE", Nome: "RES. BOA ESPERANÇA"},
	{Codigo: "ADDOM", Nome: "ADMINISTRAÇÃO DOMINGOS/CUSTOS OBRAS"},
	{Codigo: "ADMBE", Nome: "RESIDENCIAL BOA ESPERANÇA/CUSTO OBRAS"},
	{Codigo: "CWALT", Nome: "COMENDADOR WALMOR"},
	{Codigo: "FBC", Nome: "FABRICAÇÃO DE BLOCOS DE CIMENTOS"},
	{Codigo: "FBM", Nome: "FABRICA DE MANILHAS"},
	{Codigo: "INFIN", Nome: "GESTÃO DE VENDAS"},
	{Codigo: "JFC", Nome: "JARDIM FLORENÇA (C)"},
	{Codigo: "NATIV", Nome: "NATIV"},
	{Codigo: "SD135", Nome: "STANDA DE VENDAS 135"},
	{Codigo: "SEDE", Nome: "CONSTRUÇÃO NOVA SEDE CASTEL"},
	{Codigo: "LVB", Nome: "LOTEAMENTO VEREDAS DOS BURITIS"},
	{Codigo: "GREL", Nome: "RES. BOA ESPERANÇA"},
	{Codigo: "JFMOA", Nome: "LOTEAMENTO JARDIM FLORENÇA"},
	{Codigo: "EBEM", Nome: "LOTEAMENTO CONDOMINIO BELA VISTA"},
	{Codigo: "RESBS", Nome: "LOTEAMENTO RESIDENCIAL BOM SUCESSO"},
	{Codigo: "JPAM", Nome: "SPE RESIDENCIAL JARDINS PAMPLONA LTDA"},
	{Codigo: "MONIQ", Nome: "LOTEAMENTO JARDIM CRISTAL"},
	{Codigo: "TGLII", Nome: "RES.TEREZINHA GLORIA II"},
	{Codigo: "DPSIL", Nome: "BOM SUCESSO II (DOMINGOS)"},
	{Codigo: "PCSIL", Nome: "BOM SUCESSO I (PIERRE)"},
	{Codigo: "FJLAG", Nome: "JARDIM DO LAGO"},
	{Codigo: "LOTSB", Nome: "LOT. SETOR BUENO"},
	{Codigo: "RRFAG", Nome: "RES. RIOS E FAGUNDES"},
	{Codigo: "ADMAL", Nome: "ADMINISTRAÇÃO DE ALGUEIS"},
	{Codigo: "ADM", Nome: "CASTEL GESTÃO ADM"},
	{Codigo: "GCSUL", Nome: "CRUZEIRO DO SUL"},
	{Codigo: "GEBE", Nome: "BOA ESPERANÇA"},
	{Codigo: "GFLCA", Nome: "JARDIM FLORENÇA CASTEL"},
	{Codigo: "GJFLO", Nome: "JARDINS FLORENÇA"},
	{Codigo: "GLAGO", Nome: "JARDIM DO LAGO"},
	{Codigo: "GPSG", Nome: "PORTO SEGURO"},
	{Codigo: "GTG1", Nome: "TEREZINHA GLORIA I"},
	{Codigo: "GVEBU", Nome: "VEREDA DOS BURITIS"},
	{Codigo: "GWALT", Nome: "COMENDADOR WALMOR"},
	{Codigo: "GALD", Nome: "CASAS SENADOR CANEDO"},
	{Codigo: "FIVDC", Nome: "VILLA DELFIORI"},
	{Codigo: "ADMTF", Nome: "ADMINISTRAÇÃO FAGUNDES JACOB IMOBILIARIA"},
	{Codigo: "TBOE", Nome: "BOA ESPERANÇA"},
	{Codigo: "TCSUL", Nome: "CRUZEIRO DO SUL"},
	{Codigo: "TFJFC", Nome: "JARDIM FLORENÇA"},
	{Codigo: "TGRO", Nome: "G RODRIGUES"},
	{Codigo: "TJLAG", Nome: "JARDIM DO LAGO"},
	{Codigo: "TPSG", Nome: "PORTO SEGURO"},
	{Codigo: "TTG", Nome: "TEZINHA GLORIA"},
	{Codigo: "TTG2", Nome: "TEREZINHA GLORIA 2"},
	{Codigo: "RICER", Nome: "RIVIERA DA COMENDA"},
	{Codigo: "ADMRG", Nome: "ADMINISTRAÇÃO RG PARTICIPAÇÕES IMOBILIARIAS"},
	{Codigo: "RGBOE", Nome: "BOA ESPERANÇA"},
	{Codigo: "RGCSU", Nome: "CRUZEIRO DO SUL"},
	{Codigo: "RGGRO", Nome: "G RODRIGUES"},
	{Codigo: "RGJFC", Nome: "JARDIM FLORENÇA"},
	{Codigo: "RGJLA", Nome: "JARDIM DO LAGO"},
	{Codigo: "RGPSG", Nome: "PORTO SEGURO"},
	{Codigo: "RGTG", Nome: "TEREZINHA GLORIA"},
	{Codigo: "RGTG2", Nome: "TEREZINHA GLORIA 2"},
	{Codigo: "AP001", Nome: "APROVAÇÃO"},
	{Codigo: "CO001", Nome: "COMERCIAL"},
	{Codigo: "DE001", Nome: "DESENVOLVIMENTO"},
	{Codigo: "FI001", Nome: "FINANCEIRO"},
	{Codigo: "TX001", Nome: "TAXA DE INCORPORAÇÃO"},
	{Codigo: "VRNAT", Nome: "VERTICAL NATIV 01"},
}

// Seed cadastra o catálogo de empresas quando a tabela está vazia.
func Seed(db *gorm.DB) error {
	repo := NewRepository()

	total, err := repo.Contar(db)
	if err != nil {
		return err
	}
	if total > 0 {
		log.Println("Empresas já cadastradas. Pulando seed.")
		return nil
	}

	if err := db.Create(&empresasIniciais).Error; err != nil {
		return err
	}

	log.Println("Empresas cadastradas com sucesso!")
	return nil
}
