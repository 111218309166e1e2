package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eatclub/pantry-cli/internal/ledger"
)

var undoCmd = &cobra.Command{
	Use:   "undo <event-id>",
	Short: "Undo a consumption by appending a compensating correction",
	Long: `Draft and append a correction that restores exactly the quantity of a
previous consume event.

The undo is blocked if the same item was touched by any later event; the
original consumption is never rewritten.

Example:
  pantry undo 7f8c9a1e-4b2d-4f6a-9c3e-d1a2b3c4d5e6`,
	Args: cobra.ExactArgs(1),
	RunE: runUndo,
}

func init() {
	undoCmd.Flags().String("actor", "cli", "actor recorded on the correction")
	rootCmd.AddCommand(undoCmd)
}

func runUndo(cmd *cobra.Command, args []string) error {
	log := zap.L().With(zap.String("command", "undo"))

	eventID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse event id %q: %w", args[0], err)
	}

	store, closer, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	actor, _ := cmd.Flags().GetString("actor")
	service := ledger.NewUndoService(log)

	correction, err := service.UndoConsumption(store.Snapshot(), eventID, actor)
	if err != nil {
		return err
	}

	if err := appendEvent(store, correction); err != nil {
		return err
	}

	fmt.Printf("undo applied: restored %s %s (correction %s)\n",
		correction.Payload.Quantity,
		correction.Payload.Item.FullName(),
		correction.ID,
	)
	return nil
}
