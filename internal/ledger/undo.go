package ledger

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eatclub/pantry-cli/internal/fault"
)

// UndoService drafts compensating correction events. It never appends:
// the caller decides whether and where the correction lands.
type UndoService struct {
	log *zap.Logger
}

// NewUndoService returns an UndoService logging through the given logger.
func NewUndoService(log *zap.Logger) *UndoService {
	if log == nil {
		log = zap.NewNop()
	}
	return &UndoService{log: log}
}

// UndoConsumption locates the consume event with the given ID and returns
// a CorrectionAdd event restoring exactly the consumed quantity.
//
// The staleness guard is pessimistic, not a merge: if any event strictly
// after the target touches the same item, the undo is blocked with an
// InvalidState failure and the caller must reconcile manually.
func (s *UndoService) UndoConsumption(events []Event, eventID uuid.UUID, actor string) (Event, error) {
	targetIndex := -1
	for i, e := range events {
		if e.ID == eventID {
			targetIndex = i
			break
		}
	}
	if targetIndex < 0 {
		return Event{}, fault.Missing("event %s not found in ledger", eventID)
	}

	target := events[targetIndex]
	if target.Type() != MutationConsume {
		return Event{}, fault.Invalid("event %s is a %s, not a consumption", eventID, target.Type())
	}

	targetKey := target.Payload.Item.Key()
	for _, e := range events[targetIndex+1:] {
		if e.Payload.Item.Key() == targetKey {
			return Event{}, fault.Invalid("item %s modified since consumption, undo blocked", target.Payload.Item.FullName())
		}
	}

	explanation, err := NewExplanation("Undo Consumption", "Undo:"+eventID.String(), 1.0)
	if err != nil {
		return Event{}, err
	}

	// QuantityDelta carries back the original consumed quantity verbatim;
	// decimal arithmetic round-trips with zero drift.
	payload, err := NewCorrectionAddPayload(target.Payload.Item, target.Payload.Quantity, SourceUserManual, explanation)
	if err != nil {
		return Event{}, err
	}

	correction, err := NewEvent(actor, payload)
	if err != nil {
		return Event{}, err
	}

	s.log.Info("drafted undo correction",
		zap.String("target_event", eventID.String()),
		zap.String("item", target.Payload.Item.FullName()),
		zap.String("quantity", target.Payload.Quantity.String()),
	)

	return correction, nil
}
