package models

// FactorBreakdown holds the five independent sub-scores for one
// (student, tutor, subject) pairing, each in [0, 100].
type FactorBreakdown struct {
	ProfitMargin       float64 `json:"profitMargin"`
	StudentImprovement float64 `json:"studentImprovement"`
	Satisfaction       float64 `json:"satisfaction"`
	Availability       float64 `json:"availability"`
	SubjectExpertise   float64 `json:"subjectExpertise"`
}

// FactorExplanations holds the qualitative per-factor labels shown to
// operators. Display only; nothing downstream branches on these strings.
type FactorExplanations struct {
	ProfitMargin       string `json:"profitMargin"`
	StudentImprovement string `json:"studentImprovement"`
	Satisfaction       string `json:"satisfaction"`
	Availability       string `json:"availability"`
	SubjectExpertise   string `json:"subjectExpertise"`
}

// ProfitProjection estimates the money side of a (student, tutor) pairing.
// All monetary figures are rounded to 2 decimals. When the tutor's rate
// exceeds the student's budget ceiling the projection is all zeros.
type ProfitProjection struct {
	PerSession    float64 `json:"perSession"`
	PerWeek       float64 `json:"perWeek"`
	PerMonth      float64 `json:"perMonth"` // perWeek x 4, fixed 4-week month
	ProfitMargin  float64 `json:"profitMargin"`
	TutorCost     float64 `json:"tutorCost"`
	StudentCharge float64 `json:"studentCharge"`
}

// MatchResult is one scored candidate pairing. Results are derived fresh on
// every request and are never persisted.
type MatchResult struct {
	Tutor          *TutorProfile      `json:"tutor"`
	TotalScore     float64            `json:"matchScore"` // 0-100, rounded to 2 decimals
	Breakdown      FactorBreakdown    `json:"scoreBreakdown"`
	Factors        FactorExplanations `json:"compatibilityFactors"`
	Projection     ProfitProjection   `json:"projectedProfit"`
	Recommendation string             `json:"recommendation"`
	WeightsUsed    FactorWeights      `json:"weightsUsed"`
}

// StudentRecommendation is the best-ranked match for one
// (student, subject need) pair in a portfolio-wide run.
type StudentRecommendation struct {
	StudentID   string      `json:"studentId"`
	StudentName string      `json:"studentName"`
	Subject     string      `json:"subject"`
	Priority    int         `json:"priority"`
	BestMatch   MatchResult `json:"bestMatch"`
}

// RevenueProjection aggregates projected monthly revenue and profit across
// every qualifying best match in the portfolio.
type RevenueProjection struct {
	MonthlyRevenue      float64 `json:"monthlyRevenue"`
	MonthlyProfit       float64 `json:"monthlyProfit"`
	AverageProfitMargin float64 `json:"averageProfitMargin"`
	PotentialMatches    int     `json:"potentialMatches"`
	ActiveStudents      int     `json:"activeStudents"`
	ActiveTutors        int     `json:"activeTutors"`
}
