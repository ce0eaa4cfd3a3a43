package empresa

import (
	"gorm.io/gorm"
)

type Repository interface {
	ListarTodas(db *gorm.DB) ([]Empresa, error)
	Salvar(db *gorm.DB, e *Empresa) error
	Contar(db *gorm.DB) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ListarTodas retorna as empresas em ordem alfabética.
func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Empresa, error) {
	var empresas []Empresa
	err := db.Order("nome ASC").Find(&empresas).Error
	return empresas, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, e *Empresa) error {
	return db.Save(e).Error
}

func (r *repositoryImpl) Contar(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&Empresa{}).Count(&total).Error
	return total, err
}
