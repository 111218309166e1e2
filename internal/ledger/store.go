package ledger

import "iter"

// Store is the append-only event log with optimistic concurrency. The
// store is the sole owner of the log after append: readers only ever get
// copies, never a mutable reference into internal storage.
type Store interface {
	// Append commits the event or has no effect at all. If the event
	// carries an ExpectedVersion that differs from the current version,
	// Append fails with a fault.CodeConcurrency error and the log is
	// untouched. The version check and the write are one atomic step
	// under concurrent callers.
	Append(event Event) error

	// Stream yields events in append order. The sequence is finite,
	// restartable by calling Stream again, and safe against mutation of
	// the underlying log.
	Stream() iter.Seq[Event]

	// Snapshot returns a defensive copy of all events in append order.
	Snapshot() []Event

	// Version is the count of successfully applied events.
	Version() uint64
}
