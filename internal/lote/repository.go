package lote

import (
	"gorm.io/gorm"
)

type Repository interface {
	ListarTodos(db *gorm.DB) ([]LoteLancamento, error)
	BuscarPorID(db *gorm.DB, id uint) (*LoteLancamento, error)
	Salvar(db *gorm.DB, l *LoteLancamento) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// ListarTodos retorna os lotes com o usuário dono, do mais recente para o
// mais antigo.
func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]LoteLancamento, error) {
	var lotes []LoteLancamento
	err := db.Preload("Usuario").Order("data_lancamento DESC").Find(&lotes).Error
	return lotes, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*LoteLancamento, error) {
	var l LoteLancamento
	if err := db.Preload("Usuario").First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, l *LoteLancamento) error {
	return db.Save(l).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&LoteLancamento{}, id).Error
}
