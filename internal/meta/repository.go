package meta

import (
	"gorm.io/gorm"
)

type Repository interface {
	ListarTodas(db *gorm.DB) ([]Meta, error)
	BuscarPorID(db *gorm.DB, id uint) (*Meta, error)
	Salvar(db *gorm.DB, m *Meta) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ListarTodas retorna as metas da menor para a maior.
func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Meta, error) {
	var metas []Meta
	err := db.Order("valor_meta ASC").Find(&metas).Error
	return metas, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Meta, error) {
	var m Meta
	if err := db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, m *Meta) error {
	return db.Save(m).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Meta{}, id).Error
}
