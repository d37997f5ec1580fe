package valueobject

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/suscripciones-api/internal/domain"
)

// Money cantidad monetaria inmutable en centavos, para evitar
// problemas de precisión decimal. La cantidad nunca es negativa.
type Money struct {
	amount   int64
	currency string
}

// NewMoney valida cantidad (centavos, >= 0) y moneda (no vacía, se normaliza a mayúsculas).
func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return Money{}, fmt.Errorf("%w: la moneda no puede estar vacía", domain.ErrInvalidInput)
	}
	return Money{amount: amount, currency: currency}, nil
}

// Amount devuelve la cantidad en centavos.
func (m Money) Amount() int64 { return m.amount }

// Currency devuelve el código de moneda.
func (m Money) Currency() string { return m.currency }

// Decimal devuelve la cantidad en unidades monetarias (centavos / 100),
// para columnas NUMERIC(10,2).
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.amount, -2)
}

// Equals compara cantidad y moneda.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String devuelve el formato "cantidad moneda" (ej: "1999 USD").
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
