package strategy

import (
	"sort"

	"go-palette-triage/internal/evaluator"
)

// RankingStrategy defines the interface for different batch ranking policies
type RankingStrategy interface {
	Rank(results []evaluator.EvaluatedImage) []evaluator.EvaluatedImage
	GetStrategyName() string
}

// MonochromeScoreRanking ranks ascending by monochrome score, surfacing the
// least-monochrome images first
type MonochromeScoreRanking struct{}

// NewMonochromeScoreRanking creates the default ranking strategy
func NewMonochromeScoreRanking() RankingStrategy {
	return &MonochromeScoreRanking{}
}

// Rank orders the batch ascending by monochrome score. Ties keep the
// batch's original relative order.
func (s *MonochromeScoreRanking) Rank(results []evaluator.EvaluatedImage) []evaluator.EvaluatedImage {
	ranked := make([]evaluator.EvaluatedImage, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MonochromeScore < ranked[j].MonochromeScore
	})
	return ranked
}

// GetStrategyName returns the strategy name
func (s *MonochromeScoreRanking) GetStrategyName() string {
	return "monochrome_score"
}

// DistinctColorRanking ranks descending by distinct family count
type DistinctColorRanking struct{}

// NewDistinctColorRanking creates the distinct-color-count ranking strategy
func NewDistinctColorRanking() RankingStrategy {
	return &DistinctColorRanking{}
}

// Rank orders the batch descending by the number of distinct color
// families. Ties keep the batch's original relative order.
func (s *DistinctColorRanking) Rank(results []evaluator.EvaluatedImage) []evaluator.EvaluatedImage {
	ranked := make([]evaluator.EvaluatedImage, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i].DistinctColors) > len(ranked[j].DistinctColors)
	})
	return ranked
}

// GetStrategyName returns the strategy name
func (s *DistinctColorRanking) GetStrategyName() string {
	return "distinct_colors"
}

// RankingContext manages the active ranking strategy
type RankingContext struct {
	strategy RankingStrategy
}

// NewRankingContext creates a new ranking context
func NewRankingContext(strategy RankingStrategy) *RankingContext {
	return &RankingContext{
		strategy: strategy,
	}
}

// SetStrategy changes the ranking strategy
func (c *RankingContext) SetStrategy(strategy RankingStrategy) {
	c.strategy = strategy
}

// ExecuteRanking ranks the batch using the current strategy
func (c *RankingContext) ExecuteRanking(results []evaluator.EvaluatedImage) []evaluator.EvaluatedImage {
	return c.strategy.Rank(results)
}

// GetCurrentStrategy returns the current strategy name
func (c *RankingContext) GetCurrentStrategy() string {
	return c.strategy.GetStrategyName()
}
