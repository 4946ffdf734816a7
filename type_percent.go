package election

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrUndefinedPercentage is returned when reading the value of a percentage
// whose denominator is zero.
var ErrUndefinedPercentage = errors.New("undefined percentage")

// Percent is a share expressed in percent, kept at full precision.
// The zero value is the undefined percentage.
type Percent struct {
	value   decimal.Decimal
	defined bool
}

var hundred = decimal.NewFromInt(100)

// NewPercent returns part/whole*100. It is undefined when whole is zero.
func NewPercent(part, whole int) Percent {
	if whole == 0 {
		return Percent{}
	}
	v := decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(whole)))
	return Percent{value: v, defined: true}
}

// Defined reports whether p has a value.
func (p Percent) Defined() bool { return p.defined }

// Value returns the unrounded value, or ErrUndefinedPercentage.
func (p Percent) Value() (decimal.Decimal, error) {
	if !p.defined {
		return decimal.Zero, ErrUndefinedPercentage
	}
	return p.value, nil
}

// Float64 returns the value as a float, NaN when undefined.
func (p Percent) Float64() float64 {
	if !p.defined {
		return math.NaN()
	}
	return p.value.InexactFloat64()
}

// Round returns the value rounded to two decimals, half up, or
// ErrUndefinedPercentage. It is the only rounding applied to reports.
func (p Percent) Round() (decimal.Decimal, error) {
	if !p.defined {
		return decimal.Zero, ErrUndefinedPercentage
	}
	return p.value.Round(2), nil
}

// Equal reports whether p and q are both undefined or have the same value.
func (p Percent) Equal(q Percent) bool {
	if p.defined != q.defined {
		return false
	}
	return p.value.Equal(q.value)
}

// String formats p rounded, as in "92.59%", or "n/a" when undefined.
func (p Percent) String() string {
	r, err := p.Round()
	if err != nil {
		return "n/a"
	}
	return r.StringFixed(2) + "%"
}

// MarshalJSON writes the full precision value as a decimal string, or null.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.defined {
		return []byte("null"), nil
	}
	return p.value.MarshalJSON()
}

// UnmarshalJSON reads a decimal number or string, null being undefined.
func (p *Percent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Percent{}
		return nil
	}
	if err := p.value.UnmarshalJSON(data); err != nil {
		return err
	}
	p.defined = true
	return nil
}
