package server

import (
	"net/http"

	"github.com/lcc360/tutormatch/pkg/models"
)

// updateWeightsRequest is the body for PUT /api/config/weights.
// ChargePercentage is optional; omitting it keeps the stored value.
type updateWeightsRequest struct {
	Weights          models.FactorWeights `json:"weights"`
	ChargePercentage *float64             `json:"chargePercentage,omitempty"`
	UpdatedBy        string               `json:"updatedBy,omitempty"`
}

// handleGetWeights returns the active weight configuration.
func (s *Service) handleGetWeights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Weights().Active(r.Context()))
}

// handleUpdateWeights validates and persists a new weight configuration.
func (s *Service) handleUpdateWeights(w http.ResponseWriter, r *http.Request) {
	var req updateWeightsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	cfg, err := s.engine.Weights().Update(r.Context(), req.Weights, req.ChargePercentage, req.UpdatedBy)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

// handleResetWeights restores the documented default configuration.
func (s *Service) handleResetWeights(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.engine.Weights().Reset(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// handleWeightsHistory exists for API compatibility with older clients.
// Configuration history is not tracked; the list is always empty.
func (s *Service) handleWeightsHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"history": []models.WeightConfig{},
		"count":   0,
	})
}
