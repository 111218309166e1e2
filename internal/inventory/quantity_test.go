package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatclub/pantry-cli/internal/fault"
)

func TestNewQuantityRejectsNegative(t *testing.T) {
	t.Parallel()

	_, err := NewQuantity(decimal.NewFromInt(-1), UnitGram)
	require.Error(t, err)
	assert.Equal(t, fault.CodeContractViolation, fault.CodeOf(err))
}

func TestNewQuantityRejectsUnknownUnit(t *testing.T) {
	t.Parallel()

	_, err := NewQuantity(decimal.NewFromInt(1), Unit("FURLONG"))
	require.Error(t, err)
	assert.Equal(t, fault.CodeContractViolation, fault.CodeOf(err))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Quantity
		want Quantity
	}{
		{"kg to g", MustQuantity("1.5", UnitKilogram), MustQuantity("1500", UnitGram)},
		{"l to ml", MustQuantity("0.25", UnitLiter), MustQuantity("250", UnitMilliliter)},
		{"g unchanged", MustQuantity("100", UnitGram), MustQuantity("100", UnitGram)},
		{"pcs unchanged", MustQuantity("3", UnitPiece), MustQuantity("3", UnitPiece)},
		{"bunch unchanged", MustQuantity("1", UnitBunch), MustQuantity("1", UnitBunch)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.in.Normalize()
			assert.Equal(t, tt.want.Unit, got.Unit)
			assert.True(t, tt.want.Value.Equal(got.Value), "want %s got %s", tt.want.Value, got.Value)
		})
	}
}

func TestAddAcrossCompatibleUnits(t *testing.T) {
	t.Parallel()

	sum, err := MustQuantity("1", UnitKilogram).Add(MustQuantity("250", UnitGram))
	require.NoError(t, err)
	assert.Equal(t, UnitGram, sum.Unit)
	assert.True(t, sum.Value.Equal(decimal.NewFromInt(1250)))
}

func TestAddIncompatibleUnitsFails(t *testing.T) {
	t.Parallel()

	_, err := MustQuantity("100", UnitGram).Add(MustQuantity("100", UnitMilliliter))
	require.Error(t, err)
	assert.Equal(t, fault.CodeContractViolation, fault.CodeOf(err))
}

func TestSubMayGoNegative(t *testing.T) {
	t.Parallel()

	diff, err := MustQuantity("100", UnitGram).Sub(MustQuantity("150", UnitGram))
	require.NoError(t, err)
	assert.True(t, diff.IsNegative())
	assert.True(t, diff.Value.Equal(decimal.NewFromInt(-50)))
}

func TestSubExactDecimal(t *testing.T) {
	t.Parallel()

	// 0.1 + 0.2 == 0.3 exactly under decimal arithmetic.
	sum, err := MustQuantity("0.1", UnitLiter).Add(MustQuantity("0.2", UnitLiter))
	require.NoError(t, err)
	assert.True(t, sum.Equal(MustQuantity("0.3", UnitLiter)))
}

func TestLess(t *testing.T) {
	t.Parallel()

	less, err := MustQuantity("999", UnitGram).Less(MustQuantity("1", UnitKilogram))
	require.NoError(t, err)
	assert.True(t, less)

	_, err = MustQuantity("1", UnitGram).Less(MustQuantity("1", UnitPiece))
	require.Error(t, err)
}

func TestEqualNormalizes(t *testing.T) {
	t.Parallel()

	assert.True(t, MustQuantity("1", UnitKilogram).Equal(MustQuantity("1000", UnitGram)))
	assert.False(t, MustQuantity("1", UnitKilogram).Equal(MustQuantity("1000", UnitMilliliter)))
}

func TestApproxPropagates(t *testing.T) {
	t.Parallel()

	a := MustQuantity("100", UnitGram)
	b := MustQuantity("50", UnitGram)
	b.Approx = true

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Approx)
}

func TestParseQuantity(t *testing.T) {
	t.Parallel()

	q, err := ParseQuantity("2.5", "KG")
	require.NoError(t, err)
	assert.Equal(t, UnitKilogram, q.Unit)

	_, err = ParseQuantity("abc", "G")
	require.Error(t, err)

	_, err = ParseQuantity("-3", "G")
	require.Error(t, err)
}
