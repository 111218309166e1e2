package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eatclub/pantry-cli/internal/inventory"
	"github.com/eatclub/pantry-cli/internal/recipe"
)

var substitutionsCmd = &cobra.Command{
	Use:   "substitutions <item>",
	Short: "List substitutes for an item, cheapest first",
	Long: `Resolve all transitive substitutes for an item from the rules file,
with the minimum cumulative penalty for each.

Example:
  pantry substitutions Butter`,
	Args: cobra.ExactArgs(1),
	RunE: runSubstitutions,
}

func init() {
	substitutionsCmd.Flags().String("variant", "", "item variant")
	substitutionsCmd.Flags().String("brand", "", "item brand")
	rootCmd.AddCommand(substitutionsCmd)
}

func runSubstitutions(cmd *cobra.Command, args []string) error {
	graph, err := recipe.LoadRules(cfg.Recipes.SubstitutionsPath)
	if err != nil {
		return err
	}

	variant, _ := cmd.Flags().GetString("variant")
	brand, _ := cmd.Flags().GetString("brand")
	item, err := inventory.NewItemIdentity(inventory.CanonicalName(args[0]), variant, brand, 1.0)
	if err != nil {
		return err
	}

	subs := graph.Substitutes(item)
	if len(subs) == 0 {
		fmt.Printf("no substitutes for %s\n", item.FullName())
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SUBSTITUTE\tPENALTY")
	for _, s := range subs {
		fmt.Fprintf(w, "%s\t%.2f\n", s.Item.FullName(), s.Penalty)
	}
	return w.Flush()
}
