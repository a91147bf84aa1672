package matching

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lcc360/tutormatch/pkg/models"
)

// ScorerSuite is a test suite for the factor Scorer.
type ScorerSuite struct {
	suite.Suite
	scorer  *Scorer
	student *models.StudentProfile
	tutor   *models.TutorProfile
}

func (s *ScorerSuite) SetupTest() {
	s.scorer = NewScorer(nil)
	s.student = &models.StudentProfile{
		ID:              "student-1",
		Name:            "Jamie",
		MaxHourlyRate:   20,
		SessionsPerWeek: 2,
		Availability: []models.AvailabilitySlot{
			{DayOfWeek: "monday", StartTime: "09:00", EndTime: "17:00"},
		},
		Status: models.StudentActive,
	}
	s.tutor = &models.TutorProfile{
		ID:         "tutor-1",
		Name:       "Alex",
		HourlyRate: 15,
		Subjects: []models.SubjectSkill{
			{Name: "math", ProficiencyLevel: 8},
		},
		ExperienceYears: 5,
		Availability: []models.AvailabilitySlot{
			{DayOfWeek: "monday", StartTime: "10:00", EndTime: "12:00"},
		},
		Performance: models.PerformanceMetrics{
			AverageStudentImprovement: 7,
			AverageParentRating:       4,
			TotalSessionsCompleted:    50,
			ReliabilityScore:          8,
		},
		Status: models.TutorActive,
	}
}

func TestScorerSuite(t *testing.T) {
	suite.Run(t, new(ScorerSuite))
}

// =============================================================================
// GOOD SCENARIOS - Expected normal operations
// =============================================================================

func (s *ScorerSuite) TestBreakdown_GoodScenarios_FullProfile() {
	b := s.scorer.Breakdown(s.student, s.tutor, "math")

	// Margin: charge = 20 × 0.85 = 17, profit = 2, margin = 11.76%,
	// curve: 50 + 2.5 × (11.76 - 10) = 54.41
	s.InDelta(54.41, b.ProfitMargin, 0.01)

	// Improvement: 7×10×0.5 + min(20, 5×4) + 8/10×15 + min(15, 50/50×15)
	// = 35 + 20 + 12 + 15 = 82
	s.InDelta(82, b.StudentImprovement, 0.01)

	// Satisfaction: 4/5×70 + 8/10×30 = 56 + 24 = 80
	s.InDelta(80, b.Satisfaction, 0.01)

	// One student slot fully covered by one tutor slot
	s.InDelta(100, b.Availability, 0.01)

	// Proficiency 8/10
	s.InDelta(80, b.SubjectExpertise, 0.01)
}

func (s *ScorerSuite) TestTotalScore_GoodScenarios_DefaultWeights() {
	b := s.scorer.Breakdown(s.student, s.tutor, "math")
	total := s.scorer.TotalScore(b)

	// 54.41×0.25 + 82×0.30 + 80×0.20 + 100×0.15 + 80×0.10 = 77.20
	s.InDelta(77.20, total, 0.01)
}

func (s *ScorerSuite) TestProfitMarginScore_GoodScenarios_Curve() {
	// Charge 100% of a 100 budget makes margin = 100 - tutorCost.
	cfg := models.DefaultWeightConfig()
	cfg.ChargePercentage = 100
	scorer := NewScorer(cfg)
	student := &models.StudentProfile{MaxHourlyRate: 100}

	cases := []struct {
		tutorRate float64
		expected  float64
	}{
		{70, 100},  // margin 30% hits the ceiling
		{75, 87.5}, // margin 25% -> 75 + 2.5×5
		{80, 75},   // margin 20% -> bottom of the top band
		{85, 62.5}, // margin 15% -> 50 + 2.5×5
		{90, 50},   // margin 10% -> bottom of the middle band
		{95, 25},   // margin 5%  -> 5×5
		{100, 0},   // break-even
	}
	for _, tc := range cases {
		tutor := &models.TutorProfile{HourlyRate: tc.tutorRate}
		score := scorer.profitMarginScore(student, tutor)
		s.InDelta(tc.expected, score, 0.01, "tutor rate %.0f", tc.tutorRate)
	}
}

func (s *ScorerSuite) TestProfitMarginScore_GoodScenarios_Monotonic() {
	// A cheaper tutor never scores worse than a pricier one.
	cfg := models.DefaultWeightConfig()
	scorer := NewScorer(cfg)
	student := &models.StudentProfile{MaxHourlyRate: 50}

	prev := 101.0
	for rate := 10.0; rate <= 50; rate += 5 {
		tutor := &models.TutorProfile{HourlyRate: rate}
		score := scorer.profitMarginScore(student, tutor)
		s.LessOrEqual(score, prev, "score must not rise as tutor rate rises")
		prev = score
	}
}

func (s *ScorerSuite) TestSubjectExpertiseScore_GoodScenarios_CaseInsensitive() {
	s.InDelta(80, subjectExpertiseScore(s.tutor, "MATH"), 0.01)
	s.InDelta(80, subjectExpertiseScore(s.tutor, "Math"), 0.01)
	s.InDelta(80, subjectExpertiseScore(s.tutor, "math"), 0.01)
}

func (s *ScorerSuite) TestExplanations_GoodScenarios_Labels() {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "Excellent subject expertise"},
		{80, "Excellent subject expertise"},
		{79.99, "Good subject expertise"},
		{60, "Good subject expertise"},
		{45, "Fair subject expertise"},
		{25, "Low subject expertise"},
		{19.99, "Poor subject expertise"},
		{0, "Poor subject expertise"},
	}
	for _, tc := range cases {
		s.Equal(tc.want, explainScore(tc.score, "subject expertise"), "score %.2f", tc.score)
	}
}

// =============================================================================
// BAD SCENARIOS - Edge cases and error conditions
// =============================================================================

func (s *ScorerSuite) TestProfitMarginScore_BadScenarios_Infeasible() {
	// Tutor costs more than the student can pay: hard zero, not negative.
	s.tutor.HourlyRate = 25
	b := s.scorer.Breakdown(s.student, s.tutor, "math")
	s.Zero(b.ProfitMargin)
}

func (s *ScorerSuite) TestSubjectExpertiseScore_BadScenarios_UnknownSubject() {
	s.Zero(subjectExpertiseScore(s.tutor, "physics"))
}

func (s *ScorerSuite) TestSubjectExpertiseScore_BadScenarios_NoSkills() {
	s.tutor.Subjects = nil
	s.Zero(subjectExpertiseScore(s.tutor, "math"))
}

// =============================================================================
// EDGE CASES - Boundary conditions
// =============================================================================

func (s *ScorerSuite) TestImprovementScore_EdgeCases_ZeroReliabilityDefaults() {
	// No reliability history is treated as middling (5), not as zero.
	s.tutor.Performance.ReliabilityScore = 0

	// 35 + 20 + 5/10×15 + 15 = 77.5
	s.InDelta(77.5, improvementScore(s.tutor), 0.01)
}

func (s *ScorerSuite) TestSatisfactionScore_EdgeCases_ZeroReliabilityDefaults() {
	s.tutor.Performance.ReliabilityScore = 0

	// 56 + 5/10×30 = 71
	s.InDelta(71, satisfactionScore(s.tutor), 0.01)
}

func (s *ScorerSuite) TestImprovementScore_EdgeCases_CapsHold() {
	// Everything maxed out must still land at exactly 100.
	s.tutor.ExperienceYears = 30
	s.tutor.Performance = models.PerformanceMetrics{
		AverageStudentImprovement: 10,
		AverageParentRating:       5,
		TotalSessionsCompleted:    1000,
		ReliabilityScore:          10,
	}
	s.InDelta(100, improvementScore(s.tutor), 0.01)
	s.InDelta(100, satisfactionScore(s.tutor), 0.01)
}

func (s *ScorerSuite) TestNewScorer_EdgeCases_NilConfigUsesDefaults() {
	scorer := NewScorer(nil)
	s.Equal(models.DefaultFactorWeights(), scorer.Weights())
}
