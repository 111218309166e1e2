package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eatclub/pantry-cli/internal/inventory"
)

func TestProjectStateAddsAndSubtracts(t *testing.T) {
	t.Parallel()

	events := []Event{
		purchaseEvent(t, "Rice", "1", inventory.UnitKilogram),
		consumeEvent(t, "Rice", "300", inventory.UnitGram),
		wasteEvent(t, "Rice", "100", inventory.UnitGram),
		purchaseEvent(t, "Milk", "1", inventory.UnitLiter),
	}

	state := ProjectState(events)
	require.Len(t, state, 2)

	rice := state["Rice"]
	assert.Equal(t, inventory.UnitGram, rice.Unit)
	assert.True(t, rice.Value.Equal(decimal.NewFromInt(600)), "got %s", rice.Value)

	milk := state["Milk"]
	assert.Equal(t, inventory.UnitMilliliter, milk.Unit)
	assert.True(t, milk.Value.Equal(decimal.NewFromInt(1000)))
}

func TestProjectStateCorrectionEvents(t *testing.T) {
	t.Parallel()

	events := []Event{
		purchaseEvent(t, "Eggs", "12", inventory.UnitPiece),
		correctionRemoveEvent(t, "Eggs", "2", inventory.UnitPiece),
		correctionAddEvent(t, "Eggs", "1", inventory.UnitPiece),
	}

	state := ProjectState(events)
	assert.True(t, state["Eggs"].Value.Equal(decimal.NewFromInt(11)))
}

func TestProjectStateRemovalWithoutStockGoesNegative(t *testing.T) {
	t.Parallel()

	// A removal against unrecorded stock surfaces as a negative entry,
	// not an error and not a clamp to zero.
	events := []Event{
		consumeEvent(t, "Butter", "50", inventory.UnitGram),
	}

	state := ProjectState(events)
	butter, ok := state["Butter"]
	require.True(t, ok)
	assert.True(t, butter.Value.Equal(decimal.NewFromInt(-50)))
}

func TestProjectStateDeterministic(t *testing.T) {
	t.Parallel()

	events := []Event{
		purchaseEvent(t, "Rice", "2.5", inventory.UnitKilogram),
		consumeEvent(t, "Rice", "0.7", inventory.UnitKilogram),
		purchaseEvent(t, "Milk", "0.33", inventory.UnitLiter),
		wasteEvent(t, "Milk", "110", inventory.UnitMilliliter),
		consumeEvent(t, "Flour", "125", inventory.UnitGram),
	}

	first := ProjectState(events)
	second := ProjectState(events)

	require.Equal(t, len(first), len(second))
	for name, qty := range first {
		other, ok := second[name]
		require.True(t, ok, "missing %s on replay", name)
		assert.Equal(t, qty.Unit, other.Unit)
		assert.True(t, qty.Value.Equal(other.Value))
	}
}

func TestProjectStateConsumeThenCorrectionNetsToZero(t *testing.T) {
	t.Parallel()

	events := []Event{
		purchaseEvent(t, "Tomato", "500", inventory.UnitGram),
		consumeEvent(t, "Tomato", "123.45", inventory.UnitGram),
		correctionAddEvent(t, "Tomato", "123.45", inventory.UnitGram),
	}

	state := ProjectState(events)
	assert.True(t, state["Tomato"].Value.Equal(decimal.NewFromInt(500)), "got %s", state["Tomato"].Value)
}

func TestProjectStateEmpty(t *testing.T) {
	t.Parallel()

	state := ProjectState(nil)
	assert.Empty(t, state)
}
