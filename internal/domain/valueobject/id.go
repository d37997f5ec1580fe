package valueobject

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/suscripciones-api/internal/domain"
)

// ID identificador UUID v4 compartido por todos los agregados.
type ID struct {
	value string
}

// NewID valida el formato UUID y construye el value object.
func NewID(value string) (ID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return ID{}, fmt.Errorf("%w: id %q no es un UUID válido", domain.ErrInvalidInput, value)
	}
	return ID{value: parsed.String()}, nil
}

// GenerateID genera un nuevo ID aleatorio (UUID v4).
func GenerateID() ID {
	return ID{value: uuid.NewString()}
}

// Value devuelve la representación en string del UUID.
func (id ID) Value() string { return id.value }

// Equals compara dos IDs por valor.
func (id ID) Equals(other ID) bool { return id.value == other.value }

// IsZero informa si el ID no fue inicializado.
func (id ID) IsZero() bool { return id.value == "" }

func (id ID) String() string { return id.value }
