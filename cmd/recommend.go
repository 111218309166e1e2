package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eatclub/pantry-cli/internal/decision"
	"github.com/eatclub/pantry-cli/internal/recipe"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a recipe from current stock",
	Long: `Score every catalog recipe against current stock and either suggest
the best one, ask for confirmation when confidence is low, or report that
nothing is cookable.

Example:
  pantry recommend
  pantry recommend --today 2026-08-29`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().String("today", "", "reference date (YYYY-MM-DD, default now)")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	log := zap.L().With(zap.String("command", "recommend"))

	today := time.Now()
	if raw, _ := cmd.Flags().GetString("today"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fmt.Errorf("parse today %q: %w", raw, err)
		}
		today = parsed
	}

	catalog, err := recipe.LoadCatalog(cfg.Recipes.CatalogPath)
	if err != nil {
		return err
	}
	graph, err := recipe.LoadRules(cfg.Recipes.SubstitutionsPath)
	if err != nil {
		return err
	}

	store, closer, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	snapshot := snapshotFromLedger(store.Snapshot())

	checker := recipe.NewFeasibilityChecker(graph)
	scorer := decision.NewScorer(checker)
	explainer := decision.NewExplanationGenerator(scorer)
	recommender := decision.NewRecommender(scorer, explainer, cfg.Scoring.Threshold, log)

	action := recommender.Recommend(cmd.Context(), catalog.Recipes, snapshot, today)

	switch action.Kind {
	case decision.ActionSuggest:
		fmt.Printf("suggest: %s (score %.2f)\n%s\n", action.Recipe.Name, action.Score, action.Explanation.Reason)
	case decision.ActionAskUser:
		fmt.Printf("%s\n%s\n", action.Question, action.Explanation.Reason)
	default:
		fmt.Println(action.Explanation.Reason)
	}
	return nil
}
