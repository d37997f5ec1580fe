package valueobject

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/tu-usuario/suscripciones-api/internal/domain"
)

// Email dirección de correo validada y normalizada a minúsculas.
type Email struct {
	value string
}

// NewEmail valida el formato RFC 5322 y normaliza a minúsculas.
func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Email{}, fmt.Errorf("%w: el email no puede estar vacío", domain.ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return Email{}, fmt.Errorf("%w: formato de email inválido", domain.ErrInvalidInput)
	}
	return Email{value: strings.ToLower(value)}, nil
}

// Value devuelve la dirección normalizada.
func (e Email) Value() string { return e.value }

// Domain devuelve la parte posterior a la arroba.
func (e Email) Domain() string {
	at := strings.LastIndex(e.value, "@")
	return e.value[at+1:]
}

// Equals compara dos emails por valor.
func (e Email) Equals(other Email) bool { return e.value == other.value }

func (e Email) String() string { return e.value }
