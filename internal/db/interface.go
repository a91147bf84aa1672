// Package db defines the store interfaces consumed by the matching engine
// and the HTTP layer.
package db

import (
	"context"
	"errors"

	"github.com/lcc360/tutormatch/pkg/models"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// StudentStore defines persistence operations for student records.
type StudentStore interface {
	CreateStudent(ctx context.Context, student *models.StudentProfile) error
	GetStudent(ctx context.Context, id string) (*models.StudentProfile, error)
	ListStudents(ctx context.Context) ([]*models.StudentProfile, error)
	ListActiveStudents(ctx context.Context) ([]*models.StudentProfile, error)
	UpdateStudent(ctx context.Context, student *models.StudentProfile) error
	DeleteStudent(ctx context.Context, id string) error
}

// TutorStore defines persistence operations for tutor records.
type TutorStore interface {
	CreateTutor(ctx context.Context, tutor *models.TutorProfile) error
	GetTutor(ctx context.Context, id string) (*models.TutorProfile, error)
	ListTutors(ctx context.Context) ([]*models.TutorProfile, error)
	ListActiveTutors(ctx context.Context) ([]*models.TutorProfile, error)
	UpdateTutor(ctx context.Context, tutor *models.TutorProfile) error
	DeleteTutor(ctx context.Context, id string) error
}

// ConfigStore defines persistence operations for the singleton weight
// configuration. GetActiveWeightConfig returns ErrNotFound when no
// configuration row exists yet; callers create one lazily with defaults.
type ConfigStore interface {
	GetActiveWeightConfig(ctx context.Context) (*models.WeightConfig, error)
	CreateWeightConfig(ctx context.Context, cfg *models.WeightConfig) error
	SaveWeightConfig(ctx context.Context, cfg *models.WeightConfig) error
}

// Store combines every store interface a fully wired service needs.
type Store interface {
	StudentStore
	TutorStore
	ConfigStore

	Ping(ctx context.Context) error
	Close() error
}
