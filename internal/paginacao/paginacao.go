package paginacao

import (
	"errors"

	"gorm.io/gorm"
)

// ErrPaginaInvalida indica uma página fora do intervalo [1, last_page].
var ErrPaginaInvalida = errors.New("página inválida")

// Resultado é o envelope padrão das listagens paginadas.
type Resultado[T any] struct {
	Data     []T   `json:"data"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	LastPage int   `json:"last_page"`
}

// UltimaPagina calcula ceil(total/limit).
func UltimaPagina(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Paginar conta e busca sobre a consulta já montada pelo chamador (filtros
// incluídos), aplicando ordenação, offset e preloads. Página fora do
// intervalo conhecido retorna ErrPaginaInvalida.
func Paginar[T any](db *gorm.DB, page, limit int, order string, preloads ...string) (*Resultado[T], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := db.Session(&gorm.Session{}).Model(new(T)).Count(&total).Error; err != nil {
		return nil, err
	}

	lastPage := UltimaPagina(total, limit)
	if lastPage > 0 && page > lastPage {
		return nil, ErrPaginaInvalida
	}

	tx := db.Session(&gorm.Session{})
	for _, p := range preloads {
		tx = tx.Preload(p)
	}

	var data []T
	err := tx.Order(order).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&data).Error
	if err != nil {
		return nil, err
	}

	return &Resultado[T]{
		Data:     data,
		Total:    total,
		Page:     page,
		LastPage: lastPage,
	}, nil
}
