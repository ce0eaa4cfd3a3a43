package empresa

// Empresa é o cadastro de empreendimentos; os lançamentos referenciam a
// empresa pelo código em texto livre, não por chave estrangeira.
type Empresa struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Codigo string `gorm:"size:10;not null" json:"codigo"`
	Nome   string `gorm:"size:255;not null" json:"nome"`
}

func (Empresa) TableName() string {
	return "empresas"
}
