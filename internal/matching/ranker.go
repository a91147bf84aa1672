package matching

import (
	"context"
	"sort"

	"github.com/lcc360/tutormatch/pkg/models"
)

// Engine is the top-level matching service: it loads the active weight
// configuration, scores candidate tutors for a student and subject, and
// returns them ranked best-first.
type Engine struct {
	weights *WeightsProvider
}

// NewEngine creates an engine backed by the given weights provider.
func NewEngine(weights *WeightsProvider) *Engine {
	return &Engine{weights: weights}
}

// Weights exposes the provider for the configuration endpoints.
func (e *Engine) Weights() *WeightsProvider {
	return e.weights
}

// RankTutors scores every active tutor in the candidate pool for the given
// student and subject under the active weight configuration, and returns the
// results sorted by total score, highest first. Inactive tutors are skipped.
func (e *Engine) RankTutors(ctx context.Context, student *models.StudentProfile, tutors []*models.TutorProfile, subject string) []models.MatchResult {
	return RankTutorsWith(e.weights.Active(ctx), student, tutors, subject)
}

// RankTutorsWith is RankTutors with an explicit weight configuration, used
// for what-if analysis with override weights. A nil cfg falls back to the
// defaults.
func RankTutorsWith(cfg *models.WeightConfig, student *models.StudentProfile, tutors []*models.TutorProfile, subject string) []models.MatchResult {
	scorer := NewScorer(cfg)
	if cfg == nil {
		cfg = models.DefaultWeightConfig()
	}

	results := make([]models.MatchResult, 0, len(tutors))
	for _, tutor := range tutors {
		if !tutor.IsActive() {
			continue
		}

		breakdown := scorer.Breakdown(student, tutor, subject)
		total := scorer.TotalScore(breakdown)

		results = append(results, models.MatchResult{
			Tutor:          tutor,
			TotalScore:     total,
			Breakdown:      breakdown,
			Factors:        scorer.Explanations(breakdown),
			Projection:     ProjectProfit(student, tutor, cfg.ChargeFraction()),
			Recommendation: Recommendation(total),
			WeightsUsed:    scorer.Weights(),
		})
	}

	// Stable sort: tutors with equal scores keep their input order rather
	// than being reshuffled between requests.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})

	return results
}

// Recommendation maps a total score to the operator-facing verdict.
func Recommendation(score float64) string {
	switch {
	case score >= 80:
		return "Highly Recommended - Excellent match across all factors"
	case score >= 65:
		return "Recommended - Strong match with good compatibility"
	case score >= 50:
		return "Acceptable - Decent match but may have some limitations"
	case score >= 35:
		return "Not Ideal - Consider only if no better options available"
	default:
		return "Not Recommended - Poor match, seek alternatives"
	}
}
