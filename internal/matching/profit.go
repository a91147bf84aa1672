package matching

import (
	"math"

	"github.com/lcc360/tutormatch/pkg/models"
)

// WeeksPerMonth is the fixed month approximation used for all monthly
// projections. Not calendar-accurate; the business plans in 4-week blocks.
const WeeksPerMonth = 4

// round2 rounds to 2 decimal places for monetary figures and scores.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ProjectProfit estimates per-session, per-week and per-month profit for a
// (student, tutor) pairing under the given charge fraction (e.g. 0.85 bills
// 85% of the student's budget ceiling). An infeasible pairing, where the
// tutor costs more than the student can pay, yields an all-zero projection
// rather than an error so it still shows up (rank-last) in results.
func ProjectProfit(student *models.StudentProfile, tutor *models.TutorProfile, chargeFraction float64) models.ProfitProjection {
	tutorCost := tutor.HourlyRate
	studentBudget := student.MaxHourlyRate

	if tutorCost > studentBudget {
		return models.ProfitProjection{}
	}

	sessionsPerWeek := student.SessionsPerWeek
	if sessionsPerWeek < 1 {
		sessionsPerWeek = 1
	}

	chargePerSession := studentBudget * chargeFraction
	profitPerSession := chargePerSession - tutorCost
	marginPercent := profitPerSession / chargePerSession * 100

	return models.ProfitProjection{
		PerSession:    round2(profitPerSession),
		PerWeek:       round2(profitPerSession * float64(sessionsPerWeek)),
		PerMonth:      round2(profitPerSession * float64(sessionsPerWeek) * WeeksPerMonth),
		ProfitMargin:  round2(marginPercent),
		TutorCost:     tutorCost,
		StudentCharge: round2(chargePerSession),
	}
}
