package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lcc360/tutormatch/pkg/models"
)

// handleCreateStudent registers a new student.
func (s *Service) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	var student models.StudentProfile
	if !decodeJSON(w, r, &student) {
		return
	}
	student.ID = ""

	if err := student.Validate(); err != nil {
		writeError(w, err)
		return
	}

	if err := s.store.CreateStudent(r.Context(), &student); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, student)
}

// handleListStudents returns every student on the books.
func (s *Service) handleListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := s.store.ListStudents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

// handleListActiveStudents returns only students eligible for matching.
func (s *Service) handleListActiveStudents(w http.ResponseWriter, r *http.Request) {
	students, err := s.store.ListActiveStudents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, students)
}

// handleGetStudent returns one student by ID.
func (s *Service) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := s.store.GetStudent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

// handleUpdateStudent overwrites a student record.
func (s *Service) handleUpdateStudent(w http.ResponseWriter, r *http.Request) {
	var student models.StudentProfile
	if !decodeJSON(w, r, &student) {
		return
	}
	student.ID = chi.URLParam(r, "id")

	if err := student.Validate(); err != nil {
		writeError(w, err)
		return
	}

	if err := s.store.UpdateStudent(r.Context(), &student); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, student)
}

// handleDeleteStudent removes a student record.
func (s *Service) handleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteStudent(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
