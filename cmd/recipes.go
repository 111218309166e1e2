package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eatclub/pantry-cli/internal/recipe"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "List and validate the recipe catalog",
	RunE:  runRecipes,
}

func init() {
	rootCmd.AddCommand(recipesCmd)
}

func runRecipes(cmd *cobra.Command, _ []string) error {
	catalog, err := recipe.LoadCatalog(cfg.Recipes.CatalogPath)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tINGREDIENTS\tDIFFICULTY")
	for _, r := range catalog.Recipes {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.ID, r.Name, len(r.Ingredients), r.Difficulty)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("%d recipes OK\n", len(catalog.Recipes))
	return nil
}
