package gorm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lcc360/tutormatch/internal/db"
	"github.com/lcc360/tutormatch/pkg/models"
)

// CreateStudent inserts a new student record, generating an ID when absent.
func (s *Store) CreateStudent(ctx context.Context, student *models.StudentProfile) error {
	now := time.Now().UTC()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	student.UpdatedAt = now
	if student.Status == "" {
		student.Status = models.StudentActive
	}

	rec := studentToRecord(student)
	if err := s.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("create student: %w", err)
	}

	// BeforeCreate may have assigned the ID.
	student.ID = rec.ID
	return nil
}

// GetStudent fetches one student by ID.
func (s *Store) GetStudent(ctx context.Context, id string) (*models.StudentProfile, error) {
	var rec StudentRecord
	err := s.DB.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("get student %s: %w", id, err)
	}
	return recordToStudent(&rec), nil
}

// ListStudents returns all students ordered by creation time, newest first.
func (s *Store) ListStudents(ctx context.Context) ([]*models.StudentProfile, error) {
	var recs []StudentRecord
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	students := make([]*models.StudentProfile, 0, len(recs))
	for i := range recs {
		students = append(students, recordToStudent(&recs[i]))
	}
	return students, nil
}

// ListActiveStudents returns students with active status.
func (s *Store) ListActiveStudents(ctx context.Context) ([]*models.StudentProfile, error) {
	var recs []StudentRecord
	err := s.DB.WithContext(ctx).
		Where("status = ?", string(models.StudentActive)).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list active students: %w", err)
	}

	students := make([]*models.StudentProfile, 0, len(recs))
	for i := range recs {
		students = append(students, recordToStudent(&recs[i]))
	}
	return students, nil
}

// UpdateStudent overwrites an existing student record.
func (s *Store) UpdateStudent(ctx context.Context, student *models.StudentProfile) error {
	student.UpdatedAt = time.Now().UTC()

	rec := studentToRecord(student)
	res := s.DB.WithContext(ctx).Model(&StudentRecord{}).
		Where("id = ?", student.ID).
		Select("*").Omit("id", "created_at").
		Updates(rec)
	if res.Error != nil {
		return fmt.Errorf("update student %s: %w", student.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}

// DeleteStudent removes a student by ID.
func (s *Store) DeleteStudent(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&StudentRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete student %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}
