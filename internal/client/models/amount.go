package models

import (
	"github.com/shopspring/decimal"
)

// Amount is a money value. It travels on the wire as a bare JSON number with
// two decimals and tolerates numeric strings on the way in.
type Amount struct {
	decimal.Decimal
}

// NewAmount parses s ("100", "12.50").
func NewAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Decimal: d}, nil
}

// MustAmount is NewAmount for constants and tests.
func MustAmount(s string) Amount {
	a, err := NewAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.StringFixed(2)), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	return a.Decimal.UnmarshalJSON(b)
}

// Equal compares by numeric value, so 100 equals 100.00.
func (a Amount) Equal(b Amount) bool {
	return a.Decimal.Equal(b.Decimal)
}
