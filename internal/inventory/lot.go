package inventory

import "time"

// StockStatus describes the stock state of a lot.
type StockStatus string

const (
	StatusInStock    StockStatus = "in_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusOutOfStock StockStatus = "out_of_stock"
	StatusExpired    StockStatus = "expired"
	StatusUnknown    StockStatus = "unknown"
)

// Lot is a single holding of an item: one quantity with an optional
// expiry date. The same item may be held in multiple lots.
type Lot struct {
	Item     ItemIdentity `json:"item"`
	Quantity Quantity     `json:"quantity"`
	Expiry   *time.Time   `json:"expiry,omitempty"`
	Status   StockStatus  `json:"status,omitempty"`
}

// InStock reports whether the lot counts as available stock on the given
// day: quantity strictly positive and, when an expiry is known, not yet
// expired.
func (l Lot) InStock(today time.Time) bool {
	if !l.Quantity.Value.IsPositive() {
		return false
	}
	if l.Expiry != nil && l.Expiry.Before(truncateDay(today)) {
		return false
	}
	return true
}

// Snapshot is a point-in-time view of all inventory lots, supplied by an
// upstream query service. It is read-only input to feasibility and scoring.
type Snapshot struct {
	Lots []Lot `json:"lots"`
}

// StockLots returns the lots that count as in stock today.
func (s Snapshot) StockLots(today time.Time) []Lot {
	var out []Lot
	for _, l := range s.Lots {
		if l.InStock(today) {
			out = append(out, l)
		}
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
