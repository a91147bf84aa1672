package matching

import (
	"fmt"

	"github.com/lcc360/tutormatch/pkg/models"
)

// Scorer computes the five independent factor sub-scores for one
// (student, tutor, subject) triple under a given weight configuration.
type Scorer struct {
	cfg *models.WeightConfig
}

// NewScorer creates a scorer. If cfg is nil, the default configuration is
// used; callers normally pass the active configuration from the
// WeightsProvider, or an override set for what-if analysis.
func NewScorer(cfg *models.WeightConfig) *Scorer {
	if cfg == nil {
		cfg = models.DefaultWeightConfig()
	}
	return &Scorer{cfg: cfg}
}

// Breakdown computes all five sub-scores, each in [0, 100].
func (s *Scorer) Breakdown(student *models.StudentProfile, tutor *models.TutorProfile, subject string) models.FactorBreakdown {
	return models.FactorBreakdown{
		ProfitMargin:       s.profitMarginScore(student, tutor),
		StudentImprovement: improvementScore(tutor),
		Satisfaction:       satisfactionScore(tutor),
		Availability:       AvailabilityScore(student.Availability, tutor.Availability),
		SubjectExpertise:   subjectExpertiseScore(tutor, subject),
	}
}

// TotalScore combines a breakdown into a single weighted score, rounded to
// 2 decimals. Override weights for what-if analysis are expected to sum to
// ~1.0; this is an internal API, so enforcement stays at the public
// validation boundary (WeightsProvider.Update).
func (s *Scorer) TotalScore(b models.FactorBreakdown) float64 {
	w := s.cfg.Weights
	total := b.ProfitMargin*w.ProfitMargin +
		b.StudentImprovement*w.StudentImprovement +
		b.Satisfaction*w.Satisfaction +
		b.Availability*w.Availability +
		b.SubjectExpertise*w.SubjectExpertise
	return round2(total)
}

// Weights returns the factor weights this scorer applies.
func (s *Scorer) Weights() models.FactorWeights {
	return s.cfg.Weights
}

// profitMarginScore maps the margin on a pairing to [0, 100].
//
// The margin is computed against what we would actually bill: the student's
// budget ceiling times the configured charge percentage. The piecewise
// curve rewards healthy margins steeply:
//
//	margin >= 30%  -> 100
//	20% <= m < 30% -> 75 + 2.5x(m-20)
//	10% <= m < 20% -> 50 + 2.5x(m-10)
//	 0% <= m < 10% -> 5xm
//	m < 0%         -> 0
//
// A tutor who costs more than the student's ceiling scores exactly 0.
func (s *Scorer) profitMarginScore(student *models.StudentProfile, tutor *models.TutorProfile) float64 {
	tutorCost := tutor.HourlyRate
	studentBudget := student.MaxHourlyRate

	if tutorCost > studentBudget {
		return 0
	}

	charge := studentBudget * s.cfg.ChargeFraction()
	if charge <= 0 {
		return 0
	}
	margin := (charge - tutorCost) / charge * 100

	var score float64
	switch {
	case margin >= 30:
		score = 100
	case margin >= 20:
		score = 75 + (margin-20)*2.5
	case margin >= 10:
		score = 50 + (margin-10)*2.5
	case margin >= 0:
		score = margin * 5
	}

	return clamp(score, 0, 100)
}

// improvementScore predicts how much the tutor will move the student's
// results, from historical improvement plus experience, reliability and
// track-record bonuses.
func improvementScore(tutor *models.TutorProfile) float64 {
	perf := tutor.Performance
	reliability := perf.ReliabilityScore
	if reliability == 0 {
		reliability = models.DefaultReliabilityScore
	}

	// Historical improvement carries half the weight (0-10 scale to 0-100).
	base := min(100, perf.AverageStudentImprovement*10) * 0.5

	// Up to 20 points for 5+ years of experience.
	experienceBonus := min(20, tutor.ExperienceYears*4)

	// Up to 15 points for perfect reliability.
	reliabilityBonus := reliability / 10 * 15

	// Up to 15 points for 50+ completed sessions.
	trackRecordBonus := min(15, float64(perf.TotalSessionsCompleted)/50*15)

	return clamp(base+experienceBonus+reliabilityBonus+trackRecordBonus, 0, 100)
}

// satisfactionScore combines parent rating (70 points) and reliability
// (30 points) into [0, 100].
func satisfactionScore(tutor *models.TutorProfile) float64 {
	perf := tutor.Performance
	reliability := perf.ReliabilityScore
	if reliability == 0 {
		reliability = models.DefaultReliabilityScore
	}

	ratingPoints := perf.AverageParentRating / 5 * 70
	reliabilityPoints := reliability / 10 * 30

	return clamp(ratingPoints+reliabilityPoints, 0, 100)
}

// subjectExpertiseScore maps the tutor's proficiency in the requested
// subject (1-10) to [0, 100]. Subject names match case-insensitively; a
// tutor with no matching skill scores exactly 0.
func subjectExpertiseScore(tutor *models.TutorProfile, subject string) float64 {
	skill := tutor.SkillFor(subject)
	if skill == nil {
		return 0
	}
	return float64(skill.ProficiencyLevel) / 10 * 100
}

// Explanations produces the qualitative per-factor labels for display.
func (s *Scorer) Explanations(b models.FactorBreakdown) models.FactorExplanations {
	return models.FactorExplanations{
		ProfitMargin:       explainScore(b.ProfitMargin, "profit margin"),
		StudentImprovement: explainScore(b.StudentImprovement, "improvement potential"),
		Satisfaction:       explainScore(b.Satisfaction, "satisfaction rating"),
		Availability:       explainScore(b.Availability, "schedule compatibility"),
		SubjectExpertise:   explainScore(b.SubjectExpertise, "subject expertise"),
	}
}

// explainScore buckets a sub-score into a human-readable label.
func explainScore(score float64, factor string) string {
	switch {
	case score >= 80:
		return fmt.Sprintf("Excellent %s", factor)
	case score >= 60:
		return fmt.Sprintf("Good %s", factor)
	case score >= 40:
		return fmt.Sprintf("Fair %s", factor)
	case score >= 20:
		return fmt.Sprintf("Low %s", factor)
	default:
		return fmt.Sprintf("Poor %s", factor)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
