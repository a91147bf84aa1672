package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lcc360/tutormatch/pkg/models"
)

// handleCreateTutor registers a new tutor.
func (s *Service) handleCreateTutor(w http.ResponseWriter, r *http.Request) {
	var tutor models.TutorProfile
	if !decodeJSON(w, r, &tutor) {
		return
	}
	tutor.ID = ""

	if err := tutor.Validate(); err != nil {
		writeError(w, err)
		return
	}

	if err := s.store.CreateTutor(r.Context(), &tutor); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, tutor)
}

// handleListTutors returns every tutor on the books.
func (s *Service) handleListTutors(w http.ResponseWriter, r *http.Request) {
	tutors, err := s.store.ListTutors(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tutors)
}

// handleListActiveTutors returns only tutors eligible for matching.
func (s *Service) handleListActiveTutors(w http.ResponseWriter, r *http.Request) {
	tutors, err := s.store.ListActiveTutors(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tutors)
}

// handleGetTutor returns one tutor by ID.
func (s *Service) handleGetTutor(w http.ResponseWriter, r *http.Request) {
	tutor, err := s.store.GetTutor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tutor)
}

// handleUpdateTutor overwrites a tutor record.
func (s *Service) handleUpdateTutor(w http.ResponseWriter, r *http.Request) {
	var tutor models.TutorProfile
	if !decodeJSON(w, r, &tutor) {
		return
	}
	tutor.ID = chi.URLParam(r, "id")

	if err := tutor.Validate(); err != nil {
		writeError(w, err)
		return
	}

	if err := s.store.UpdateTutor(r.Context(), &tutor); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tutor)
}

// handleDeleteTutor removes a tutor record.
func (s *Service) handleDeleteTutor(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteTutor(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
