package lancamento

import (
	"time"

	"github.com/CastelGestao/api-honorarios/internal/paginacao"
	"gorm.io/gorm"
)

// Filtro reúne os critérios opcionais da listagem; campos vazios são
// ignorados e os presentes combinam por AND.
type Filtro struct {
	Empresa     string
	CpfCnpj     string
	NomeCliente string
	DataInicio  *time.Time
	DataFim     *time.Time
}

type Repository interface {
	Listar(db *gorm.DB, f Filtro, page, limit int) (*paginacao.Resultado[LancamentoHonorario], error)
	BuscarPorID(db *gorm.DB, id uint) (*LancamentoHonorario, error)
	Salvar(db *gorm.DB, l *LancamentoHonorario) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Listar aplica o filtro e pagina do id mais alto para o mais baixo.
func (r *repositoryImpl) Listar(db *gorm.DB, f Filtro, page, limit int) (*paginacao.Resultado[LancamentoHonorario], error) {
	tx := db.Model(&LancamentoHonorario{})
	if f.Empresa != "" {
		tx = tx.Where("empresa LIKE ?", "%"+f.Empresa+"%")
	}
	if f.CpfCnpj != "" {
		tx = tx.Where("cpf_cnpj LIKE ?", "%"+f.CpfCnpj+"%")
	}
	if f.NomeCliente != "" {
		tx = tx.Where("nome_cliente LIKE ?", "%"+f.NomeCliente+"%")
	}
	if f.DataInicio != nil && f.DataFim != nil {
		tx = tx.Where("data_lancamento BETWEEN ? AND ?", *f.DataInicio, *f.DataFim)
	}
	return paginacao.Paginar[LancamentoHonorario](tx, page, limit, "id DESC")
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*LancamentoHonorario, error) {
	var l LancamentoHonorario
	if err := db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, l *LancamentoHonorario) error {
	return db.Save(l).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&LancamentoHonorario{}, id).Error
}
