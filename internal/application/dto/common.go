package dto

import (
	"fmt"
	"time"

	"github.com/tu-usuario/suscripciones-api/internal/domain"
)

// timeLayout formato de fecha usado en todas las respuestas JSON.
const timeLayout = "2006-01-02 15:04:05"

// FormatTime serializa un timestamp con el formato de la API.
func FormatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// FormatTimePtr como FormatTime pero tolera nil (updated_at de Plan).
func FormatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timeLayout)
	return &s
}

// ErrorResponse cuerpo JSON de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Pagination metadatos de paginación de las respuestas de listado.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	LastPage    int `json:"last_page"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// NewPagination calcula los metadatos para una página dada.
// last_page mínimo es 1 aunque no haya resultados.
func NewPagination(page, limit, total int) Pagination {
	lastPage := (total + limit - 1) / limit
	if lastPage < 1 {
		lastPage = 1
	}
	from := (page-1)*limit + 1
	to := page * limit
	if to > total {
		to = total
	}
	if total == 0 {
		from = 0
		to = 0
	}
	return Pagination{
		CurrentPage: page,
		PerPage:     limit,
		Total:       total,
		LastPage:    lastPage,
		From:        from,
		To:          to,
	}
}

// ValidatePageLimit valida los parámetros de paginación de los listados.
// page arranca en 1 y limit acepta de 1 a 100.
func ValidatePageLimit(page, limit int) error {
	if page < 1 {
		return fmt.Errorf("%w: page debe ser mayor o igual a 1", domain.ErrInvalidInput)
	}
	if limit < 1 || limit > 100 {
		return fmt.Errorf("%w: limit debe estar entre 1 y 100", domain.ErrInvalidInput)
	}
	return nil
}
