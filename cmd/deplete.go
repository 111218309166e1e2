package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eatclub/pantry-cli/internal/depletion"
	"github.com/eatclub/pantry-cli/internal/recipe"
)

var depleteCmd = &cobra.Command{
	Use:   "deplete <recipe-id>",
	Short: "Record cooking a recipe by consuming its ingredients",
	Long: `Draft one consume event per recipe ingredient and append them to the
ledger. Use --factor for partial cooking (0.5 = half recipe).

Examples:
  pantry deplete tomato-soup
  pantry deplete tomato-soup --factor 0.5`,
	Args: cobra.ExactArgs(1),
	RunE: runDeplete,
}

func init() {
	depleteCmd.Flags().String("factor", "1", "recipe scaling factor")
	depleteCmd.Flags().String("actor", "cli", "actor recorded on the events")
	rootCmd.AddCommand(depleteCmd)
}

func runDeplete(cmd *cobra.Command, args []string) error {
	log := zap.L().With(zap.String("command", "deplete"))

	catalog, err := recipe.LoadCatalog(cfg.Recipes.CatalogPath)
	if err != nil {
		return err
	}
	r, err := catalog.Get(args[0])
	if err != nil {
		return err
	}

	factor, _ := cmd.Flags().GetString("factor")
	actor, _ := cmd.Flags().GetString("actor")

	service := depletion.NewService(log)
	events, err := service.DepleteRecipe(r, actor, factor)
	if err != nil {
		return err
	}

	store, closer, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	for _, event := range events {
		if err := appendEvent(store, event); err != nil {
			return err
		}
		fmt.Printf("consumed %s %s (event %s)\n",
			event.Payload.Quantity, event.Payload.Item.FullName(), event.ID)
	}
	fmt.Printf("depleted %s x%s: %d events appended\n", r.Name, factor, len(events))
	return nil
}
