package matching

import (
	"context"
	"sort"

	"github.com/lcc360/tutormatch/pkg/models"
)

// QualifyingScore is the minimum total score at which a best match counts
// toward the revenue projection. Below it the pairing is considered too weak
// to plan revenue around.
const QualifyingScore = 50.0

// RecommendAll runs the engine across the whole portfolio: for every active
// student and every subject they need, it picks the single best-ranked tutor
// from the candidate pool. Students or subjects with no scorable tutor are
// omitted. The list comes back descending by the best match's score, so the
// strongest pairings lead; equal scores keep input order.
func (e *Engine) RecommendAll(ctx context.Context, students []*models.StudentProfile, tutors []*models.TutorProfile) []models.StudentRecommendation {
	cfg := e.weights.Active(ctx)

	recs := make([]models.StudentRecommendation, 0, len(students))
	for _, student := range students {
		if !student.IsActive() {
			continue
		}
		for _, need := range student.SubjectsNeeded {
			ranked := RankTutorsWith(cfg, student, tutors, need.Name)
			if len(ranked) == 0 {
				continue
			}
			recs = append(recs, models.StudentRecommendation{
				StudentID:   student.ID,
				StudentName: student.Name,
				Subject:     need.Name,
				Priority:    need.Priority,
				BestMatch:   ranked[0],
			})
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].BestMatch.TotalScore > recs[j].BestMatch.TotalScore
	})
	return recs
}

// ProjectPortfolioRevenue aggregates monthly revenue and profit across every
// qualifying best match (total score >= QualifyingScore). Revenue counts what
// students are billed, profit what remains after tutor cost; the average
// margin is profit over revenue, or 0 when nothing qualifies.
func (e *Engine) ProjectPortfolioRevenue(ctx context.Context, students []*models.StudentProfile, tutors []*models.TutorProfile) models.RevenueProjection {
	recs := e.RecommendAll(ctx, students, tutors)

	var revenue, profit float64
	matches := 0
	for _, rec := range recs {
		if rec.BestMatch.TotalScore < QualifyingScore {
			continue
		}
		matches++

		sessionsPerWeek := sessionsPerWeekFor(students, rec.StudentID)
		revenue += rec.BestMatch.Projection.StudentCharge * float64(sessionsPerWeek) * WeeksPerMonth
		profit += rec.BestMatch.Projection.PerMonth
	}

	var margin float64
	if revenue > 0 {
		margin = round2(profit / revenue * 100)
	}

	return models.RevenueProjection{
		MonthlyRevenue:      round2(revenue),
		MonthlyProfit:       round2(profit),
		AverageProfitMargin: margin,
		PotentialMatches:    matches,
		ActiveStudents:      countActiveStudents(students),
		ActiveTutors:        countActiveTutors(tutors),
	}
}

func sessionsPerWeekFor(students []*models.StudentProfile, id string) int {
	for _, s := range students {
		if s.ID == id {
			if s.SessionsPerWeek < 1 {
				return 1
			}
			return s.SessionsPerWeek
		}
	}
	return 1
}

func countActiveStudents(students []*models.StudentProfile) int {
	n := 0
	for _, s := range students {
		if s.IsActive() {
			n++
		}
	}
	return n
}

func countActiveTutors(tutors []*models.TutorProfile) int {
	n := 0
	for _, t := range tutors {
		if t.IsActive() {
			n++
		}
	}
	return n
}
