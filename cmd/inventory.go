package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eatclub/pantry-cli/internal/ledger"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Project current stock from the event ledger",
	Long: `Fold the full event ledger into per-item quantities.

Negative balances are printed as-is: they mark removals recorded against
stock the ledger never saw arrive.`,
	RunE: runInventory,
}

func init() {
	rootCmd.AddCommand(inventoryCmd)
}

func runInventory(cmd *cobra.Command, _ []string) error {
	store, closer, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	state := ledger.ProjectState(store.Snapshot())

	names := make([]string, 0, len(state))
	for name := range state {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tQUANTITY")
	for _, name := range names {
		qty := state[name]
		marker := ""
		if qty.IsNegative() {
			marker = "  (!)"
		}
		fmt.Fprintf(w, "%s\t%s%s\n", name, qty, marker)
	}
	return w.Flush()
}
