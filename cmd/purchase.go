package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eatclub/pantry-cli/internal/expiry"
	"github.com/eatclub/pantry-cli/internal/ledger"
)

var purchaseCmd = &cobra.Command{
	Use:   "purchase",
	Short: "Record a purchase in the inventory ledger",
	Long: `Append a purchase event for an item.

The expiry date is predicted from the shelf-life table unless --expiry is
given explicitly.

Examples:
  pantry purchase --item Tomato --qty 500 --unit G
  pantry purchase --item Milk --qty 1 --unit L --expiry 2026-09-05
  pantry purchase --item Rice --qty 2 --unit KG --expected-version 7`,
	RunE: runPurchase,
}

func init() {
	itemFlags(purchaseCmd)
	purchaseCmd.Flags().String("expiry", "", "expiry date (YYYY-MM-DD, default predicted)")
	rootCmd.AddCommand(purchaseCmd)
}

func runPurchase(cmd *cobra.Command, _ []string) error {
	log := zap.L().With(zap.String("command", "purchase"))

	item, qty, err := itemFromFlags(cmd)
	if err != nil {
		return err
	}

	var expiresAt time.Time
	if raw, _ := cmd.Flags().GetString("expiry"); raw != "" {
		expiresAt, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return fmt.Errorf("parse expiry %q: %w", raw, err)
		}
	} else {
		calc := expiry.NewCalculator(cfg.Expiry.ShelfLifeDays)
		expiresAt = calc.PredictExpiry(item, time.Now())
	}

	explanation, err := explanationFromFlags(cmd, "Manual purchase entry", "cli:purchase")
	if err != nil {
		return err
	}

	payload, err := ledger.NewPurchasePayload(item, qty, &expiresAt, ledger.SourceUserManual, explanation)
	if err != nil {
		return err
	}
	actor, _ := cmd.Flags().GetString("actor")
	event, err := ledger.NewEvent(actor, payload)
	if err != nil {
		return err
	}

	store, closer, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := finishEvent(cmd, store, event); err != nil {
		return err
	}

	log.Info("purchase recorded",
		zap.String("item", item.FullName()),
		zap.String("quantity", qty.String()),
		zap.String("expiry", expiresAt.Format("2006-01-02")),
	)
	fmt.Printf("recorded purchase %s %s (event %s, version %d)\n",
		qty, item.FullName(), event.ID, store.Version())
	return nil
}
