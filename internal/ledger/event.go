// Package ledger implements the append-only inventory event log: the
// event model, the stores that own the log, the projector that folds it
// into current stock, and the undo service that drafts compensating
// corrections.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/eatclub/pantry-cli/internal/fault"
	"github.com/eatclub/pantry-cli/internal/inventory"
)

// MutationType identifies the kind of inventory mutation an event records.
// The set is closed: payload construction goes through the typed
// constructors below and dispatch switches over every member.
type MutationType string

const (
	MutationPurchase         MutationType = "PURCHASE"
	MutationConsume          MutationType = "CONSUME"
	MutationWaste            MutationType = "WASTE"
	MutationCorrectionAdd    MutationType = "CORRECTION_ADD"
	MutationCorrectionRemove MutationType = "CORRECTION_REMOVE"
)

// Source records who or what authorized a mutation.
type Source string

const (
	SourceUserManual       Source = "USER_MANUAL"
	SourceUserConfirmedOCR Source = "USER_CONFIRMED_OCR"
	SourceSystemLogic      Source = "SYSTEM_LOGIC"
)

// WasteReason standardizes waste causes for later analytics.
type WasteReason string

const (
	WasteExpired  WasteReason = "EXPIRED"
	WasteSpilled  WasteReason = "SPILLED"
	WasteBadTaste WasteReason = "BAD_TASTE"
	WasteOther    WasteReason = "OTHER"
)

// Explanation is the structured rationale attached to every event.
type Explanation struct {
	Reason     string  `json:"reason"`
	SourceFact string  `json:"source_fact"`
	Confidence float64 `json:"confidence"`
}

// NewExplanation builds a validated Explanation.
func NewExplanation(reason, sourceFact string, confidence float64) (Explanation, error) {
	if reason == "" {
		return Explanation{}, fault.Contract("explanation reason must not be empty")
	}
	if confidence < 0 || confidence > 1 {
		return Explanation{}, fault.Contract("explanation confidence must be in [0,1], got %g", confidence)
	}
	return Explanation{Reason: reason, SourceFact: sourceFact, Confidence: confidence}, nil
}

// Payload is the closed tagged variant carried by an event. Exactly one
// mutation kind is set in Type; the remaining fields are populated per
// kind by the constructors. Additive kinds (purchase, correction add) use
// Quantity/QuantityDelta as written; the projector decides sign.
type Payload struct {
	Type MutationType `json:"type"`

	Item        inventory.ItemIdentity `json:"item"`
	Quantity    inventory.Quantity     `json:"quantity"`
	Expiry      *time.Time             `json:"expiry,omitempty"`       // purchase only
	WasteReason WasteReason            `json:"waste_reason,omitempty"` // waste only
	Source      Source                 `json:"source"`
	Explanation Explanation            `json:"explanation"`
}

func validateCommon(item inventory.ItemIdentity, qty inventory.Quantity, src Source, exp Explanation) error {
	if item.Name == "" {
		return fault.Contract("payload item must have a name")
	}
	if item.Confidence < 0 || item.Confidence > 1 {
		return fault.Contract("item confidence must be in [0,1], got %g", item.Confidence)
	}
	if qty.Value.IsNegative() {
		return fault.Contract("payload quantity must be non-negative, got %s", qty.Value)
	}
	if !qty.Unit.Valid() {
		return fault.Contract("payload quantity has unknown unit %q", qty.Unit)
	}
	if src == "" {
		return fault.Contract("payload source must be set")
	}
	if exp.Reason == "" {
		return fault.Contract("payload explanation must have a reason")
	}
	return nil
}

// NewPurchasePayload records stock entering the household.
func NewPurchasePayload(item inventory.ItemIdentity, qty inventory.Quantity, expiry *time.Time, src Source, exp Explanation) (Payload, error) {
	if err := validateCommon(item, qty, src, exp); err != nil {
		return Payload{}, err
	}
	return Payload{Type: MutationPurchase, Item: item, Quantity: qty, Expiry: expiry, Source: src, Explanation: exp}, nil
}

// NewConsumePayload records stock being used up.
func NewConsumePayload(item inventory.ItemIdentity, qty inventory.Quantity, src Source, exp Explanation) (Payload, error) {
	if err := validateCommon(item, qty, src, exp); err != nil {
		return Payload{}, err
	}
	return Payload{Type: MutationConsume, Item: item, Quantity: qty, Source: src, Explanation: exp}, nil
}

// NewWastePayload records stock being discarded for a standardized reason.
func NewWastePayload(item inventory.ItemIdentity, qty inventory.Quantity, reason WasteReason, src Source, exp Explanation) (Payload, error) {
	if err := validateCommon(item, qty, src, exp); err != nil {
		return Payload{}, err
	}
	if reason == "" {
		return Payload{}, fault.Contract("waste payload must carry a reason")
	}
	return Payload{Type: MutationWaste, Item: item, Quantity: qty, WasteReason: reason, Source: src, Explanation: exp}, nil
}

// NewCorrectionAddPayload records a post-hoc addition to stock. The
// quantity is the delta being restored.
func NewCorrectionAddPayload(item inventory.ItemIdentity, delta inventory.Quantity, src Source, exp Explanation) (Payload, error) {
	if err := validateCommon(item, delta, src, exp); err != nil {
		return Payload{}, err
	}
	return Payload{Type: MutationCorrectionAdd, Item: item, Quantity: delta, Source: src, Explanation: exp}, nil
}

// NewCorrectionRemovePayload records a post-hoc removal from stock.
func NewCorrectionRemovePayload(item inventory.ItemIdentity, delta inventory.Quantity, src Source, exp Explanation) (Payload, error) {
	if err := validateCommon(item, delta, src, exp); err != nil {
		return Payload{}, err
	}
	return Payload{Type: MutationCorrectionRemove, Item: item, Quantity: delta, Source: src, Explanation: exp}, nil
}

// Additive reports whether the payload adds to stock when projected.
// The default branch exists only to make dispatch exhaustive; constructors
// never produce an unknown type.
func (p Payload) Additive() (bool, error) {
	switch p.Type {
	case MutationPurchase, MutationCorrectionAdd:
		return true, nil
	case MutationConsume, MutationWaste, MutationCorrectionRemove:
		return false, nil
	default:
		return false, fault.Contract("unknown mutation type %q", p.Type)
	}
}

// Event is an immutable record in the inventory ledger. Once appended its
// fields and position never change.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`

	// ExpectedVersion, when set, is the store version this event was
	// drafted against. Append rejects the event if the versions diverge.
	ExpectedVersion *uint64 `json:"expected_version,omitempty"`

	Payload Payload `json:"payload"`
}

// NewEvent assigns a fresh ID and timestamp to a validated payload.
func NewEvent(actor string, payload Payload) (Event, error) {
	if actor == "" {
		return Event{}, fault.Contract("event actor must not be empty")
	}
	if payload.Type == "" {
		return Event{}, fault.Contract("event payload must be constructed via a payload constructor")
	}
	return Event{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		Actor:     actor,
		Payload:   payload,
	}, nil
}

// WithExpectedVersion returns a copy of the event carrying an optimistic
// version precondition.
func (e Event) WithExpectedVersion(v uint64) Event {
	e.ExpectedVersion = &v
	return e
}

// Type returns the mutation type of the event's payload.
func (e Event) Type() MutationType { return e.Payload.Type }
