package fechamento

import (
	"gorm.io/gorm"
)

type Repository interface {
	ListarTodos(db *gorm.DB) ([]Fechamento, error)
	BuscarPorID(db *gorm.DB, id uint) (*Fechamento, error)
	Salvar(db *gorm.DB, f *Fechamento) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ListarTodos retorna os fechamentos do mais recente para o mais antigo.
func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Fechamento, error) {
	var fechamentos []Fechamento
	err := db.Order("data_auditoria DESC").Find(&fechamentos).Error
	return fechamentos, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Fechamento, error) {
	var f Fechamento
	if err := db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, f *Fechamento) error {
	return db.Save(f).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Fechamento{}, id).Error
}
