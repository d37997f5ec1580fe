package valueobject

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/suscripciones-api/internal/domain"
)

const planNameMaxLen = 100

// PlanName nombre de un plan de suscripción (1-100 caracteres).
type PlanName struct {
	value string
}

// NewPlanName valida que el nombre no esté vacío ni exceda 100 caracteres.
func NewPlanName(value string) (PlanName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return PlanName{}, fmt.Errorf("%w: el nombre del plan no puede estar vacío", domain.ErrInvalidInput)
	}
	if len(value) > planNameMaxLen {
		return PlanName{}, fmt.Errorf("%w: el nombre del plan no puede exceder %d caracteres", domain.ErrInvalidInput, planNameMaxLen)
	}
	return PlanName{value: value}, nil
}

// Value devuelve el nombre.
func (n PlanName) Value() string { return n.value }

// Equals compara dos nombres por valor.
func (n PlanName) Equals(other PlanName) bool { return n.value == other.value }

func (n PlanName) String() string { return n.value }
