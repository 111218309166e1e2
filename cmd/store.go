package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rotisserie/eris"

	"github.com/eatclub/pantry-cli/internal/config"
	"github.com/eatclub/pantry-cli/internal/fault"
	"github.com/eatclub/pantry-cli/internal/ledger"
	"github.com/eatclub/pantry-cli/internal/resilience"
)

// openStore builds the ledger store selected by config. The returned
// closer is a no-op for the memory driver.
func openStore(cfg *config.Config) (ledger.Store, io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	switch cfg.Store.Driver {
	case "memory":
		return ledger.NewMemoryStore(), nopCloser{}, nil
	case "sqlite":
		s, err := ledger.NewSQLite(cfg.Store.Path)
		if err != nil {
			return nil, nil, eris.Wrap(err, "open ledger store")
		}
		return s, s, nil
	default:
		return nil, nil, fault.Contract("unknown store driver %q", cfg.Store.Driver)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// appendEvent appends with retries on transient database lock errors and
// translates a concurrency rejection into a retry hint for the user.
// Version conflicts are never retried: the caller must re-read first.
func appendEvent(store ledger.Store, event ledger.Event) error {
	cfg := resilience.DefaultRetryConfig()
	cfg.OnRetry = resilience.RetryLogger("ledger append")

	err := resilience.Do(context.Background(), cfg, func(ctx context.Context) error {
		return store.Append(event)
	})
	if err != nil {
		if fault.IsCode(err, fault.CodeConcurrency) {
			return fmt.Errorf("%w\nthe ledger changed underneath you; re-read with 'pantry log' and retry", err)
		}
		return err
	}
	return nil
}
