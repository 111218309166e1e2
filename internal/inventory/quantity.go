package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/eatclub/pantry-cli/internal/fault"
)

// Unit is a standardized unit of measurement for inventory quantities.
type Unit string

const (
	// Weight.
	UnitGram     Unit = "G"
	UnitKilogram Unit = "KG"

	// Volume.
	UnitMilliliter Unit = "ML"
	UnitLiter      Unit = "L"

	// Count.
	UnitPiece Unit = "PCS"

	// Imprecise units pass through normalization unchanged.
	UnitBunch  Unit = "BUNCH"
	UnitPinch  Unit = "PINCH"
	UnitPacket Unit = "PACKET"
)

// Valid reports whether u is a member of the closed unit set.
func (u Unit) Valid() bool {
	switch u {
	case UnitGram, UnitKilogram, UnitMilliliter, UnitLiter,
		UnitPiece, UnitBunch, UnitPinch, UnitPacket:
		return true
	}
	return false
}

var thousand = decimal.NewFromInt(1000)

// Quantity is a physical quantity with a unit. Values use exact decimal
// arithmetic so that corrections round-trip with zero drift.
type Quantity struct {
	Value  decimal.Decimal `json:"value"`
	Unit   Unit            `json:"unit"`
	Approx bool            `json:"approx,omitempty"`
}

// NewQuantity builds a validated Quantity. Negative values and unknown
// units are rejected at construction.
func NewQuantity(value decimal.Decimal, unit Unit) (Quantity, error) {
	if value.IsNegative() {
		return Quantity{}, fault.Contract("quantity value must be non-negative, got %s", value)
	}
	if !unit.Valid() {
		return Quantity{}, fault.Contract("unknown unit %q", unit)
	}
	return Quantity{Value: value, Unit: unit}, nil
}

// MustQuantity is NewQuantity for statically known-good values. It panics
// on invalid input and is intended for tests and built-in tables.
func MustQuantity(value string, unit Unit) Quantity {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(fmt.Sprintf("inventory: parse decimal %q: %v", value, err))
	}
	q, err := NewQuantity(d, unit)
	if err != nil {
		panic(err)
	}
	return q
}

// ParseQuantity parses a decimal string and unit name into a Quantity.
func ParseQuantity(value string, unit string) (Quantity, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Quantity{}, fault.Contract("quantity value %q is not a decimal", value)
	}
	return NewQuantity(d, Unit(unit))
}

// Normalize converts KG to G and L to ML. Counts and imprecise units pass
// through unchanged.
func (q Quantity) Normalize() Quantity {
	switch q.Unit {
	case UnitKilogram:
		return Quantity{Value: q.Value.Mul(thousand), Unit: UnitGram, Approx: q.Approx}
	case UnitLiter:
		return Quantity{Value: q.Value.Mul(thousand), Unit: UnitMilliliter, Approx: q.Approx}
	}
	return q
}

// IsNegative reports whether the value is below zero. Only values produced
// by projection arithmetic can be negative; constructed quantities never are.
func (q Quantity) IsNegative() bool { return q.Value.IsNegative() }

// IsZero reports whether the value is exactly zero.
func (q Quantity) IsZero() bool { return q.Value.IsZero() }

// Add returns q + other after normalizing both sides. Units that remain
// incompatible after normalization are an error, never a silent coercion.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	a, b := q.Normalize(), other.Normalize()
	if a.Unit != b.Unit {
		return Quantity{}, fault.Contract("cannot add different units: %s and %s", q.Unit, other.Unit)
	}
	return Quantity{Value: a.Value.Add(b.Value), Unit: a.Unit, Approx: a.Approx || b.Approx}, nil
}

// Sub returns q - other after normalizing both sides. The result may be
// negative; the projector relies on this to surface ledger anomalies.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	a, b := q.Normalize(), other.Normalize()
	if a.Unit != b.Unit {
		return Quantity{}, fault.Contract("cannot subtract different units: %s and %s", q.Unit, other.Unit)
	}
	return Quantity{Value: a.Value.Sub(b.Value), Unit: a.Unit, Approx: a.Approx || b.Approx}, nil
}

// Neg returns the arithmetic negation of q. Used by the projector when a
// removal targets an item with no recorded stock.
func (q Quantity) Neg() Quantity {
	return Quantity{Value: q.Value.Neg(), Unit: q.Unit, Approx: q.Approx}
}

// Less reports whether q < other after normalization.
func (q Quantity) Less(other Quantity) (bool, error) {
	a, b := q.Normalize(), other.Normalize()
	if a.Unit != b.Unit {
		return false, fault.Contract("cannot compare different units: %s and %s", q.Unit, other.Unit)
	}
	return a.Value.LessThan(b.Value), nil
}

// Equal reports whether two quantities are equal after normalization.
// Quantities with incompatible units are never equal.
func (q Quantity) Equal(other Quantity) bool {
	a, b := q.Normalize(), other.Normalize()
	return a.Unit == b.Unit && a.Value.Equal(b.Value)
}

// Mul scales the quantity by an exact decimal factor.
func (q Quantity) Mul(factor decimal.Decimal) Quantity {
	return Quantity{Value: q.Value.Mul(factor), Unit: q.Unit, Approx: q.Approx}
}

func (q Quantity) String() string {
	return fmt.Sprintf("%s%s", q.Value, q.Unit)
}
