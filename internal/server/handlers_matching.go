package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lcc360/tutormatch/internal/matching"
	"github.com/lcc360/tutormatch/pkg/models"
)

// MaxMatchResults caps how many ranked matches one find-match call returns.
const MaxMatchResults = 10

// findMatchRequest is the body for POST /api/matching/find-match.
// Weights, when present, override the stored configuration for this one
// request (what-if analysis) without persisting anything.
type findMatchRequest struct {
	StudentID string                `json:"studentId"`
	Subject   string                `json:"subject"`
	Weights   *models.FactorWeights `json:"weights,omitempty"`
}

// findMatchResponse wraps the ranked matches for one student and subject.
type findMatchResponse struct {
	StudentID   string               `json:"studentId"`
	StudentName string               `json:"studentName"`
	Subject     string               `json:"subject"`
	Matches     []models.MatchResult `json:"matches"`
}

// handleFindMatch ranks active tutors for one student and subject.
func (s *Service) handleFindMatch(w http.ResponseWriter, r *http.Request) {
	var req findMatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.StudentID == "" {
		writeError(w, &models.ValidationError{Field: "studentId", Message: "studentId is required"})
		return
	}
	if req.Subject == "" {
		writeError(w, &models.ValidationError{Field: "subject", Message: "subject is required"})
		return
	}

	ctx := r.Context()

	student, err := s.store.GetStudent(ctx, req.StudentID)
	if err != nil {
		writeError(w, err)
		return
	}

	tutors, err := s.store.ListActiveTutors(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(tutors) == 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no active tutors available"})
		return
	}

	var results []models.MatchResult
	if req.Weights != nil {
		// One-off override set: validate but never persist.
		if err := req.Weights.Validate(); err != nil {
			writeError(w, err)
			return
		}
		cfg := s.engine.Weights().Active(ctx)
		override := *cfg
		override.Weights = *req.Weights
		results = matching.RankTutorsWith(&override, student, tutors, req.Subject)
	} else {
		results = s.engine.RankTutors(ctx, student, tutors, req.Subject)
	}

	if len(results) > MaxMatchResults {
		results = results[:MaxMatchResults]
	}

	log.Debug().
		Str("student_id", student.ID).
		Str("subject", req.Subject).
		Int("candidates", len(tutors)).
		Int("returned", len(results)).
		Msg("Match request served")

	writeJSON(w, http.StatusOK, findMatchResponse{
		StudentID:   student.ID,
		StudentName: student.Name,
		Subject:     req.Subject,
		Matches:     results,
	})
}

// handleRecommendations returns the best match for every active student's
// subject needs.
func (s *Service) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	students, err := s.store.ListActiveStudents(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(students) == 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no active students available"})
		return
	}
	tutors, err := s.store.ListActiveTutors(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(tutors) == 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no active tutors available"})
		return
	}

	recs := s.engine.RecommendAll(ctx, students, tutors)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"recommendations": recs,
		"count":           len(recs),
	})
}

// handleProjectedRevenue aggregates projected monthly revenue across the
// portfolio.
func (s *Service) handleProjectedRevenue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	students, err := s.store.ListActiveStudents(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	tutors, err := s.store.ListActiveTutors(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	projection := s.engine.ProjectPortfolioRevenue(ctx, students, tutors)
	writeJSON(w, http.StatusOK, projection)
}
