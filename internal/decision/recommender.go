package decision

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eatclub/pantry-cli/internal/inventory"
	"github.com/eatclub/pantry-cli/internal/ledger"
	"github.com/eatclub/pantry-cli/internal/recipe"
)

// DefaultThreshold is the score below which the recommender asks the user
// instead of suggesting outright.
const DefaultThreshold = 0.6

// maxScoringConcurrency bounds parallel recipe scoring.
const maxScoringConcurrency = 4

// ActionKind discriminates recommendation outcomes.
type ActionKind string

const (
	ActionNone    ActionKind = "none"
	ActionAskUser ActionKind = "ask_user"
	ActionSuggest ActionKind = "suggest"
)

// Action is the closed recommendation result. Kind selects which of the
// optional fields are meaningful.
type Action struct {
	Kind        ActionKind         `json:"kind"`
	Explanation ledger.Explanation `json:"explanation"`

	// Suggest fields.
	Recipe *recipe.Recipe `json:"recipe,omitempty"`
	Score  float64        `json:"score,omitempty"`

	// AskUser fields.
	Question string         `json:"question,omitempty"`
	Target   *recipe.Recipe `json:"target,omitempty"`
}

// Recommender scores every recipe and turns the result into an action.
type Recommender struct {
	scorer    *Scorer
	explainer *ExplanationGenerator
	threshold float64
	log       *zap.Logger
}

// NewRecommender wires a recommender. A zero threshold falls back to
// DefaultThreshold; a nil logger is replaced with a no-op one.
func NewRecommender(scorer *Scorer, explainer *ExplanationGenerator, threshold float64, log *zap.Logger) *Recommender {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Recommender{scorer: scorer, explainer: explainer, threshold: threshold, log: log}
}

type scoredRecipe struct {
	recipe recipe.Recipe
	score  float64
}

// Recommend scores all recipes against the snapshot, discards non-positive
// scores, and picks the top by a stable descending sort: ties keep
// first-seen catalog order. Scoring runs concurrently but each result
// lands in its input slot, so the outcome is identical to a serial pass.
func (r *Recommender) Recommend(ctx context.Context, recipes []recipe.Recipe, snapshot inventory.Snapshot, today time.Time) Action {
	scores := make([]float64, len(recipes))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxScoringConcurrency)
	for i := range recipes {
		g.Go(func() error {
			scores[i] = r.scorer.Score(recipes[i], snapshot, today)
			return nil
		})
	}
	// Scoring is pure and never fails.
	_ = g.Wait()

	var scored []scoredRecipe
	for i, rec := range recipes {
		if scores[i] > 0 {
			scored = append(scored, scoredRecipe{recipe: rec, score: scores[i]})
		}
	}

	if len(scored) == 0 {
		r.log.Info("no feasible recipes", zap.Int("candidates", len(recipes)))
		return Action{Kind: ActionNone, Explanation: r.explainer.NoFeasible()}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	top := scored[0]
	r.log.Info("top recipe",
		zap.String("recipe", top.recipe.ID),
		zap.Float64("score", top.score),
		zap.Int("feasible", len(scored)),
	)

	if top.score < r.threshold {
		target := top.recipe
		return Action{
			Kind:        ActionAskUser,
			Explanation: r.explainer.AskUser(top.score),
			Question:    fmt.Sprintf("Do you have the ingredients for %s?", target.Name),
			Target:      &target,
		}
	}

	suggested := top.recipe
	return Action{
		Kind:        ActionSuggest,
		Explanation: r.explainer.Suggestion(suggested, snapshot, top.score, today),
		Recipe:      &suggested,
		Score:       top.score,
	}
}
