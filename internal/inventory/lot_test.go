package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLotInStock(t *testing.T) {
	t.Parallel()

	today := day(2026, time.August, 29)
	tomorrow := day(2026, time.August, 30)
	yesterday := day(2026, time.August, 28)

	tests := []struct {
		name string
		lot  Lot
		want bool
	}{
		{
			"positive, no expiry",
			Lot{Item: ItemIdentity{Name: "Rice"}, Quantity: MustQuantity("500", UnitGram)},
			true,
		},
		{
			"zero quantity",
			Lot{Item: ItemIdentity{Name: "Rice"}, Quantity: MustQuantity("0", UnitGram)},
			false,
		},
		{
			"expires tomorrow",
			Lot{Item: ItemIdentity{Name: "Milk"}, Quantity: MustQuantity("1", UnitLiter), Expiry: &tomorrow},
			true,
		},
		{
			"expires today",
			Lot{Item: ItemIdentity{Name: "Milk"}, Quantity: MustQuantity("1", UnitLiter), Expiry: &today},
			true,
		},
		{
			"expired yesterday",
			Lot{Item: ItemIdentity{Name: "Milk"}, Quantity: MustQuantity("1", UnitLiter), Expiry: &yesterday},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.lot.InStock(today))
		})
	}
}

func TestSnapshotStockLots(t *testing.T) {
	t.Parallel()

	today := day(2026, time.August, 29)
	expired := day(2026, time.August, 1)

	snap := Snapshot{Lots: []Lot{
		{Item: ItemIdentity{Name: "Rice"}, Quantity: MustQuantity("500", UnitGram)},
		{Item: ItemIdentity{Name: "Milk"}, Quantity: MustQuantity("1", UnitLiter), Expiry: &expired},
		{Item: ItemIdentity{Name: "Eggs"}, Quantity: MustQuantity("0", UnitPiece)},
	}}

	stock := snap.StockLots(today)
	assert.Len(t, stock, 1)
	assert.Equal(t, "Rice", stock[0].Item.Name)
}
