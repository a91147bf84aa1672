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

const studentColumns = `id, name, email, phone, parent_name, parent_email, parent_phone,
	grade_level, learning_style, subjects_needed, availability,
	max_hourly_rate, sessions_per_week, metrics, status, created_at, updated_at`

// CreateStudent inserts a new student record, generating an ID when absent.
func (s *Store) CreateStudent(ctx context.Context, student *models.StudentProfile) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	student.UpdatedAt = now
	if student.Status == "" {
		student.Status = models.StudentActive
	}

	_, err := s.execContext(ctx, `
		INSERT INTO students (`+studentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		student.ID, student.Name, student.Email, student.Phone,
		student.ParentName, student.ParentEmail, student.ParentPhone,
		student.GradeLevel, string(student.LearningStyle),
		models.JSONSubjectNeeds(student.SubjectsNeeded),
		models.JSONAvailability(student.Availability),
		student.MaxHourlyRate, student.SessionsPerWeek,
		models.JSONStudentMetrics(student.Metrics),
		string(student.Status),
		student.CreatedAt.Format(time.RFC3339Nano),
		student.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// GetStudent fetches one student by ID.
func (s *Store) GetStudent(ctx context.Context, id string) (*models.StudentProfile, error) {
	row := s.queryRowContext(ctx, `
		SELECT `+studentColumns+` FROM students WHERE id = ?`, id)

	student, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("get student %s: %w", id, err)
	}
	return student, nil
}

// ListStudents returns all students ordered by creation time, newest first.
func (s *Store) ListStudents(ctx context.Context) ([]*models.StudentProfile, error) {
	return s.listStudents(ctx, `
		SELECT `+studentColumns+` FROM students ORDER BY created_at DESC`)
}

// ListActiveStudents returns students with active status.
func (s *Store) ListActiveStudents(ctx context.Context) ([]*models.StudentProfile, error) {
	return s.listStudents(ctx, `
		SELECT `+studentColumns+` FROM students WHERE status = 'active' ORDER BY created_at DESC`)
}

func (s *Store) listStudents(ctx context.Context, query string, args ...interface{}) ([]*models.StudentProfile, error) {
	rows, err := s.queryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var students []*models.StudentProfile
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// UpdateStudent overwrites an existing student record.
func (s *Store) UpdateStudent(ctx context.Context, student *models.StudentProfile) error {
	student.UpdatedAt = time.Now().UTC()

	res, err := s.execContext(ctx, `
		UPDATE students SET
			name = ?, email = ?, phone = ?,
			parent_name = ?, parent_email = ?, parent_phone = ?,
			grade_level = ?, learning_style = ?,
			subjects_needed = ?, availability = ?,
			max_hourly_rate = ?, sessions_per_week = ?,
			metrics = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		student.Name, student.Email, student.Phone,
		student.ParentName, student.ParentEmail, student.ParentPhone,
		student.GradeLevel, string(student.LearningStyle),
		models.JSONSubjectNeeds(student.SubjectsNeeded),
		models.JSONAvailability(student.Availability),
		student.MaxHourlyRate, student.SessionsPerWeek,
		models.JSONStudentMetrics(student.Metrics),
		string(student.Status),
		student.UpdatedAt.Format(time.RFC3339Nano),
		student.ID,
	)
	if err != nil {
		return fmt.Errorf("update student %s: %w", student.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return db.ErrNotFound
	}
	return nil
}

// DeleteStudent removes a student by ID.
func (s *Store) DeleteStudent(ctx context.Context, id string) error {
	res, err := s.execContext(ctx, "DELETE FROM students WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete student %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return db.ErrNotFound
	}
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStudent(row rowScanner) (*models.StudentProfile, error) {
	var (
		student                                  models.StudentProfile
		email, phone                             sql.NullString
		parentName, parentEmail, parentPhone     sql.NullString
		gradeLevel, learningStyle                sql.NullString
		needs                                    models.JSONSubjectNeeds
		availability                             models.JSONAvailability
		metrics                                  models.JSONStudentMetrics
		status, createdAt, updatedAt             string
	)

	err := row.Scan(
		&student.ID, &student.Name, &email, &phone,
		&parentName, &parentEmail, &parentPhone,
		&gradeLevel, &learningStyle,
		&needs, &availability,
		&student.MaxHourlyRate, &student.SessionsPerWeek,
		&metrics, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	student.Email = email.String
	student.Phone = phone.String
	student.ParentName = parentName.String
	student.ParentEmail = parentEmail.String
	student.ParentPhone = parentPhone.String
	student.GradeLevel = gradeLevel.String
	student.LearningStyle = models.LearningStyle(learningStyle.String)
	student.SubjectsNeeded = []models.SubjectNeed(needs)
	student.Availability = []models.AvailabilitySlot(availability)
	student.Metrics = models.StudentMetrics(metrics)
	student.Status = models.StudentStatus(status)
	student.CreatedAt = parseTime(createdAt)
	student.UpdatedAt = parseTime(updatedAt)

	return &student, nil
}

// parseTime parses stored RFC3339 timestamps, tolerating legacy rows
// without sub-second precision.
func parseTime(value string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t
	}
	t, _ := time.Parse(time.RFC3339, value)
	return t
}
