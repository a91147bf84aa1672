package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lcc360/tutormatch/pkg/models"
)

// RankerSuite is a test suite for the Engine's ranking path.
type RankerSuite struct {
	suite.Suite
	engine  *Engine
	student *models.StudentProfile
	ctx     context.Context
}

func (s *RankerSuite) SetupTest() {
	s.engine = NewEngine(NewWeightsProvider(&stubConfigStore{}))
	s.ctx = context.Background()
	s.student = &models.StudentProfile{
		ID:              "student-1",
		Name:            "Jamie",
		MaxHourlyRate:   40,
		SessionsPerWeek: 2,
		Availability: []models.AvailabilitySlot{
			{DayOfWeek: "monday", StartTime: "09:00", EndTime: "17:00"},
		},
		Status: models.StudentActive,
	}
}

func TestRankerSuite(t *testing.T) {
	suite.Run(t, new(RankerSuite))
}

// makeTutor builds an active tutor with sensible performance history.
func makeTutor(id string, rate float64, proficiency int) *models.TutorProfile {
	return &models.TutorProfile{
		ID:         id,
		Name:       id,
		HourlyRate: rate,
		Subjects: []models.SubjectSkill{
			{Name: "math", ProficiencyLevel: proficiency},
		},
		ExperienceYears: 3,
		Availability: []models.AvailabilitySlot{
			{DayOfWeek: "monday", StartTime: "10:00", EndTime: "12:00"},
		},
		Performance: models.PerformanceMetrics{
			AverageStudentImprovement: 6,
			AverageParentRating:       4,
			TotalSessionsCompleted:    40,
			ReliabilityScore:          8,
		},
		Status: models.TutorActive,
	}
}

// =============================================================================
// GOOD SCENARIOS - Expected normal operations
// =============================================================================

func (s *RankerSuite) TestRankTutors_GoodScenarios_SortedBestFirst() {
	tutors := []*models.TutorProfile{
		makeTutor("weak", 38, 3),
		makeTutor("strong", 20, 9),
		makeTutor("middle", 30, 6),
	}

	results := s.engine.RankTutors(s.ctx, s.student, tutors, "math")

	s.Require().Len(results, 3)
	s.Equal("strong", results[0].Tutor.ID)
	s.GreaterOrEqual(results[0].TotalScore, results[1].TotalScore)
	s.GreaterOrEqual(results[1].TotalScore, results[2].TotalScore)
}

func (s *RankerSuite) TestRankTutors_GoodScenarios_ResultCarriesEverything() {
	results := s.engine.RankTutors(s.ctx, s.student, []*models.TutorProfile{makeTutor("t1", 25, 8)}, "math")

	s.Require().Len(results, 1)
	r := results[0]
	s.NotNil(r.Tutor)
	s.Greater(r.TotalScore, 0.0)
	s.NotEmpty(r.Recommendation)
	s.NotEmpty(r.Factors.SubjectExpertise)
	s.Greater(r.Projection.StudentCharge, 0.0)
	s.Equal(models.DefaultFactorWeights(), r.WeightsUsed)
}

func (s *RankerSuite) TestRankTutorsWith_GoodScenarios_OverrideWeightsShiftRanking() {
	// cheap tutor: best margin, weakest expertise; expert tutor: the reverse.
	cheap := makeTutor("cheap", 15, 4)
	expert := makeTutor("expert", 38, 10)
	tutors := []*models.TutorProfile{cheap, expert}

	marginOnly := models.DefaultWeightConfig()
	marginOnly.Weights = models.FactorWeights{ProfitMargin: 1}
	expertiseOnly := models.DefaultWeightConfig()
	expertiseOnly.Weights = models.FactorWeights{SubjectExpertise: 1}

	byMargin := RankTutorsWith(marginOnly, s.student, tutors, "math")
	byExpertise := RankTutorsWith(expertiseOnly, s.student, tutors, "math")

	s.Equal("cheap", byMargin[0].Tutor.ID)
	s.Equal("expert", byExpertise[0].Tutor.ID)
}

func (s *RankerSuite) TestRecommendation_GoodScenarios_Verdicts() {
	cases := []struct {
		score float64
		want  string
	}{
		{92, "Highly Recommended - Excellent match across all factors"},
		{80, "Highly Recommended - Excellent match across all factors"},
		{72, "Recommended - Strong match with good compatibility"},
		{65, "Recommended - Strong match with good compatibility"},
		{55, "Acceptable - Decent match but may have some limitations"},
		{40, "Not Ideal - Consider only if no better options available"},
		{20, "Not Recommended - Poor match, seek alternatives"},
	}
	for _, tc := range cases {
		s.Equal(tc.want, Recommendation(tc.score), "score %.0f", tc.score)
	}
}

// =============================================================================
// BAD SCENARIOS - Edge cases and error conditions
// =============================================================================

func (s *RankerSuite) TestRankTutors_BadScenarios_SkipsInactiveTutors() {
	inactive := makeTutor("inactive", 20, 9)
	inactive.Status = models.TutorInactive
	onLeave := makeTutor("on-leave", 20, 9)
	onLeave.Status = models.TutorOnLeave
	active := makeTutor("active", 30, 6)

	results := s.engine.RankTutors(s.ctx, s.student, []*models.TutorProfile{inactive, onLeave, active}, "math")

	s.Require().Len(results, 1)
	s.Equal("active", results[0].Tutor.ID)
}

func (s *RankerSuite) TestRankTutors_BadScenarios_InfeasibleTutorRanksLast() {
	affordable := makeTutor("affordable", 30, 6)
	tooExpensive := makeTutor("too-expensive", 60, 10)

	results := s.engine.RankTutors(s.ctx, s.student, []*models.TutorProfile{tooExpensive, affordable}, "math")

	s.Require().Len(results, 2)
	s.Equal("affordable", results[0].Tutor.ID)
	s.Equal(models.ProfitProjection{}, results[1].Projection)
}

func (s *RankerSuite) TestRankTutors_BadScenarios_EmptyPool() {
	results := s.engine.RankTutors(s.ctx, s.student, nil, "math")
	s.Empty(results)
}

// =============================================================================
// EDGE CASES - Boundary conditions
// =============================================================================

func (s *RankerSuite) TestRankTutors_EdgeCases_TiesKeepInputOrder() {
	// Identical tutors score identically; the sort must not reshuffle them.
	first := makeTutor("first", 25, 7)
	second := makeTutor("second", 25, 7)
	third := makeTutor("third", 25, 7)

	results := s.engine.RankTutors(s.ctx, s.student, []*models.TutorProfile{first, second, third}, "math")

	s.Require().Len(results, 3)
	s.Equal("first", results[0].Tutor.ID)
	s.Equal("second", results[1].Tutor.ID)
	s.Equal("third", results[2].Tutor.ID)
}

func (s *RankerSuite) TestRankTutorsWith_EdgeCases_NilConfigUsesDefaults() {
	results := RankTutorsWith(nil, s.student, []*models.TutorProfile{makeTutor("t1", 25, 8)}, "math")

	s.Require().Len(results, 1)
	s.Equal(models.DefaultFactorWeights(), results[0].WeightsUsed)
}
