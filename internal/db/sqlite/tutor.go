package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lcc360/tutormatch/internal/db"
	"github.com/lcc360/tutormatch/pkg/models"
)

const tutorColumns = `id, name, email, phone, subjects, hourly_rate, experience_years,
	availability, performance, status, created_at, updated_at`

// CreateTutor inserts a new tutor record, generating an ID when absent.
func (s *Store) CreateTutor(ctx context.Context, tutor *models.TutorProfile) error {
	if tutor.ID == "" {
		tutor.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if tutor.CreatedAt.IsZero() {
		tutor.CreatedAt = now
	}
	tutor.UpdatedAt = now
	if tutor.Status == "" {
		tutor.Status = models.TutorActive
	}

	_, err := s.execContext(ctx, `
		INSERT INTO tutors (`+tutorColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tutor.ID, tutor.Name, tutor.Email, tutor.Phone,
		models.JSONSubjectSkills(tutor.Subjects),
		tutor.HourlyRate, tutor.ExperienceYears,
		models.JSONAvailability(tutor.Availability),
		models.JSONPerformanceMetrics(tutor.Performance),
		string(tutor.Status),
		tutor.CreatedAt.Format(time.RFC3339Nano),
		tutor.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("create tutor: %w", err)
	}
	return nil
}

// GetTutor fetches one tutor by ID.
func (s *Store) GetTutor(ctx context.Context, id string) (*models.TutorProfile, error) {
	row := s.queryRowContext(ctx, `
		SELECT `+tutorColumns+` FROM tutors WHERE id = ?`, id)

	tutor, err := scanTutor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("get tutor %s: %w", id, err)
	}
	return tutor, nil
}

// ListTutors returns all tutors ordered by creation time, newest first.
func (s *Store) ListTutors(ctx context.Context) ([]*models.TutorProfile, error) {
	return s.listTutors(ctx, `
		SELECT `+tutorColumns+` FROM tutors ORDER BY created_at DESC`)
}

// ListActiveTutors returns tutors with active status.
func (s *Store) ListActiveTutors(ctx context.Context) ([]*models.TutorProfile, error) {
	return s.listTutors(ctx, `
		SELECT `+tutorColumns+` FROM tutors WHERE status = 'active' ORDER BY created_at DESC`)
}

func (s *Store) listTutors(ctx context.Context, query string, args ...interface{}) ([]*models.TutorProfile, error) {
	rows, err := s.queryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tutors []*models.TutorProfile
	for rows.Next() {
		tutor, err := scanTutor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tutor: %w", err)
		}
		tutors = append(tutors, tutor)
	}
	return tutors, rows.Err()
}

// UpdateTutor overwrites an existing tutor record.
func (s *Store) UpdateTutor(ctx context.Context, tutor *models.TutorProfile) error {
	tutor.UpdatedAt = time.Now().UTC()

	res, err := s.execContext(ctx, `
		UPDATE tutors SET
			name = ?, email = ?, phone = ?, subjects = ?,
			hourly_rate = ?, experience_years = ?,
			availability = ?, performance = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		tutor.Name, tutor.Email, tutor.Phone,
		models.JSONSubjectSkills(tutor.Subjects),
		tutor.HourlyRate, tutor.ExperienceYears,
		models.JSONAvailability(tutor.Availability),
		models.JSONPerformanceMetrics(tutor.Performance),
		string(tutor.Status),
		tutor.UpdatedAt.Format(time.RFC3339Nano),
		tutor.ID,
	)
	if err != nil {
		return fmt.Errorf("update tutor %s: %w", tutor.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return db.ErrNotFound
	}
	return nil
}

// DeleteTutor removes a tutor by ID.
func (s *Store) DeleteTutor(ctx context.Context, id string) error {
	res, err := s.execContext(ctx, "DELETE FROM tutors WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete tutor %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return db.ErrNotFound
	}
	return nil
}

func scanTutor(row rowScanner) (*models.TutorProfile, error) {
	var (
		tutor                        models.TutorProfile
		email, phone                 sql.NullString
		subjects                     models.JSONSubjectSkills
		availability                 models.JSONAvailability
		performance                  models.JSONPerformanceMetrics
		status, createdAt, updatedAt string
	)

	err := row.Scan(
		&tutor.ID, &tutor.Name, &email, &phone,
		&subjects, &tutor.HourlyRate, &tutor.ExperienceYears,
		&availability, &performance,
		&status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	tutor.Email = email.String
	tutor.Phone = phone.String
	tutor.Subjects = []models.SubjectSkill(subjects)
	tutor.Availability = []models.AvailabilitySlot(availability)
	tutor.Performance = models.PerformanceMetrics(performance)
	tutor.Status = models.TutorStatus(status)
	tutor.CreatedAt = parseTime(createdAt)
	tutor.UpdatedAt = parseTime(updatedAt)

	return &tutor, nil
}
