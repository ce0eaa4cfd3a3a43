package utils

import (
	"errors"
	"time"
)

// ParseData aceita datas no formato "2006-01-02" ou RFC3339, os dois usados
// pelo front nos campos de data.
func ParseData(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.New("data inválida: " + s)
}
