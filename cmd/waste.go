package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eatclub/pantry-cli/internal/fault"
	"github.com/eatclub/pantry-cli/internal/ledger"
)

var wasteCmd = &cobra.Command{
	Use:   "waste",
	Short: "Record wasted stock in the inventory ledger",
	Long: `Append a waste event for an item with a standardized cause.

Examples:
  pantry waste --item Lettuce --qty 1 --unit PCS --cause EXPIRED
  pantry waste --item Milk --qty 200 --unit ML --cause SPILLED`,
	RunE: runWaste,
}

func init() {
	itemFlags(wasteCmd)
	wasteCmd.Flags().String("cause", "OTHER", "waste cause: EXPIRED, SPILLED, BAD_TASTE, OTHER")
	rootCmd.AddCommand(wasteCmd)
}

func wasteReason(raw string) (ledger.WasteReason, error) {
	switch r := ledger.WasteReason(raw); r {
	case ledger.WasteExpired, ledger.WasteSpilled, ledger.WasteBadTaste, ledger.WasteOther:
		return r, nil
	default:
		return "", fault.Contract("unknown waste cause %q", raw)
	}
}

func runWaste(cmd *cobra.Command, _ []string) error {
	log := zap.L().With(zap.String("command", "waste"))

	item, qty, err := itemFromFlags(cmd)
	if err != nil {
		return err
	}

	rawCause, _ := cmd.Flags().GetString("cause")
	cause, err := wasteReason(rawCause)
	if err != nil {
		return err
	}

	explanation, err := explanationFromFlags(cmd, "Manual waste entry", "cli:waste")
	if err != nil {
		return err
	}

	payload, err := ledger.NewWastePayload(item, qty, cause, ledger.SourceUserManual, explanation)
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

	log.Info("waste recorded",
		zap.String("item", item.FullName()),
		zap.String("quantity", qty.String()),
		zap.String("cause", string(cause)),
	)
	fmt.Printf("recorded waste %s %s (%s, event %s)\n", qty, item.FullName(), cause, event.ID)
	return nil
}
