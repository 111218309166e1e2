package inventory

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eatclub/pantry-cli/internal/fault"
)

var titleCaser = cases.Title(language.English)

// CanonicalName trims surrounding whitespace and title-cases an item name
// so that "tomato", " TOMATO " and "Tomato" resolve to the same identity.
func CanonicalName(name string) string {
	return titleCaser.String(strings.TrimSpace(name))
}

// ItemIdentity distinguishes specific forms of an ingredient, e.g.
// Tomato (Canned) vs Tomato (Fresh). Identity is structural over
// (name, variant, brand); Confidence is carried but deliberately excluded
// from equality and keying, so two records of the same item with different
// confidence aggregate together.
type ItemIdentity struct {
	Name       string  `json:"name"`
	Variant    string  `json:"variant,omitempty"`
	Brand      string  `json:"brand,omitempty"`
	Confidence float64 `json:"confidence"`
}

// NewItemIdentity builds a validated ItemIdentity.
func NewItemIdentity(name, variant, brand string, confidence float64) (ItemIdentity, error) {
	if strings.TrimSpace(name) == "" {
		return ItemIdentity{}, fault.Contract("item name must not be empty")
	}
	if confidence < 0 || confidence > 1 {
		return ItemIdentity{}, fault.Contract("confidence must be in [0,1], got %g", confidence)
	}
	return ItemIdentity{Name: name, Variant: variant, Brand: brand, Confidence: confidence}, nil
}

// Key is the aggregation key for an item: name, variant and brand only.
// It is comparable and safe to use as a map key.
type Key struct {
	Name    string
	Variant string
	Brand   string
}

// Key returns the identity's aggregation key. Confidence is excluded.
func (i ItemIdentity) Key() Key {
	return Key{Name: i.Name, Variant: i.Variant, Brand: i.Brand}
}

// Same reports structural equality over (name, variant, brand).
func (i ItemIdentity) Same(other ItemIdentity) bool {
	return i.Key() == other.Key()
}

// FullName renders the identity for display: Name (Variant) [Brand].
func (i ItemIdentity) FullName() string {
	parts := []string{i.Name}
	if i.Variant != "" {
		parts = append(parts, fmt.Sprintf("(%s)", i.Variant))
	}
	if i.Brand != "" {
		parts = append(parts, fmt.Sprintf("[%s]", i.Brand))
	}
	return strings.Join(parts, " ")
}
