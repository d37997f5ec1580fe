package valueobject

import (
	"fmt"
	"strconv"

	"github.com/tu-usuario/suscripciones-api/internal/domain"
)

// UserLimit límite de usuarios de un plan. Siempre >= 1.
type UserLimit struct {
	value int
}

// NewUserLimit valida que el límite sea al menos 1.
func NewUserLimit(value int) (UserLimit, error) {
	if value < 1 {
		return UserLimit{}, fmt.Errorf("%w: el límite de usuarios debe ser al menos 1", domain.ErrInvalidInput)
	}
	return UserLimit{value: value}, nil
}

// Value devuelve el límite.
func (l UserLimit) Value() int { return l.value }

// IsExceeded informa si la cantidad actual de usuarios supera el límite.
func (l UserLimit) IsExceeded(currentUsers int) bool {
	return currentUsers > l.value
}

// CanAddUsers informa si se pueden agregar usersToAdd usuarios sin superar el límite.
func (l UserLimit) CanAddUsers(currentUsers, usersToAdd int) bool {
	return currentUsers+usersToAdd <= l.value
}

// Equals compara dos límites por valor.
func (l UserLimit) Equals(other UserLimit) bool { return l.value == other.value }

func (l UserLimit) String() string { return strconv.Itoa(l.value) }
