package domain

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// MoneyMaxDigits is the total number of digits a monetary column can hold.
	MoneyMaxDigits = 10
	// MoneyDecimalPlaces is the number of fractional digits stored.
	MoneyDecimalPlaces = 2
)

// ErrInvalidMoney is returned when a payload value cannot be read as a decimal.
var ErrInvalidMoney = errors.New("invalid decimal value")

var moneyLimit = decimal.New(1, MoneyMaxDigits-MoneyDecimalPlaces)

// Money is a NUMERIC(10,2) amount. It is transported as a string with
// exactly two fractional digits ("1200.00").
type Money struct {
	decimal.Decimal
}

// NewMoney parses a decimal string.
func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidMoney, s)
	}
	return Money{Decimal: d}, nil
}

// MustMoney is NewMoney for literals; it panics on malformed input.
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyPtr returns a pointer to a parsed literal.
func MoneyPtr(s string) *Money {
	m := MustMoney(s)
	return &m
}

// HasValidScale reports whether the value needs no more than two fractional digits.
func (m Money) HasValidScale() bool {
	return m.Equal(m.Truncate(MoneyDecimalPlaces))
}

// HasValidPrecision reports whether the integer part fits in the remaining digits.
func (m Money) HasValidPrecision() bool {
	return m.Abs().LessThan(moneyLimit)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(MoneyDecimalPlaces) + `"`), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	if err := m.Decimal.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMoney, string(b))
	}
	return nil
}

// Scan normalizes stored values to two decimal places; SQLite hands back
// integers or floats for NUMERIC columns.
func (m *Money) Scan(value any) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}
	m.Decimal = d.Round(MoneyDecimalPlaces)
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.StringFixed(MoneyDecimalPlaces), nil
}
