package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Print the event ledger in append order",
	RunE:  runLog,
}

func init() {
	logCmd.Flags().Int("limit", 0, "print only the last N events (0 = all)")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, _ []string) error {
	store, closer, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	events := store.Snapshot()
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEQ\tID\tTIME\tACTOR\tTYPE\tITEM\tQUANTITY\tREASON")
	for i, e := range events {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1,
			e.ID,
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.Actor,
			e.Type(),
			e.Payload.Item.FullName(),
			e.Payload.Quantity,
			e.Payload.Explanation.Reason,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("%d events, version %d\n", len(events), store.Version())
	return nil
}
