package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eatclub/pantry-cli/internal/ledger"
)

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Record consumption in the inventory ledger",
	Long: `Append a consume event for an item.

Examples:
  pantry consume --item Tomato --qty 200 --unit G
  pantry consume --item Milk --qty 250 --unit ML --reason "morning coffee"`,
	RunE: runConsume,
}

func init() {
	itemFlags(consumeCmd)
	rootCmd.AddCommand(consumeCmd)
}

func runConsume(cmd *cobra.Command, _ []string) error {
	log := zap.L().With(zap.String("command", "consume"))

	item, qty, err := itemFromFlags(cmd)
	if err != nil {
		return err
	}

	explanation, err := explanationFromFlags(cmd, "Manual consumption entry", "cli:consume")
	if err != nil {
		return err
	}

	payload, err := ledger.NewConsumePayload(item, qty, ledger.SourceUserManual, explanation)
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

	log.Info("consumption recorded",
		zap.String("item", item.FullName()),
		zap.String("quantity", qty.String()),
	)
	fmt.Printf("recorded consumption %s %s (event %s, version %d)\n",
		qty, item.FullName(), event.ID, store.Version())
	return nil
}
