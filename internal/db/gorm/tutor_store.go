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

// CreateTutor inserts a new tutor record, generating an ID when absent.
func (s *Store) CreateTutor(ctx context.Context, tutor *models.TutorProfile) error {
	now := time.Now().UTC()
	if tutor.CreatedAt.IsZero() {
		tutor.CreatedAt = now
	}
	tutor.UpdatedAt = now
	if tutor.Status == "" {
		tutor.Status = models.TutorActive
	}

	rec := tutorToRecord(tutor)
	if err := s.DB.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("create tutor: %w", err)
	}

	tutor.ID = rec.ID
	return nil
}

// GetTutor fetches one tutor by ID.
func (s *Store) GetTutor(ctx context.Context, id string) (*models.TutorProfile, error) {
	var rec TutorRecord
	err := s.DB.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("get tutor %s: %w", id, err)
	}
	return recordToTutor(&rec), nil
}

// ListTutors returns all tutors ordered by creation time, newest first.
func (s *Store) ListTutors(ctx context.Context) ([]*models.TutorProfile, error) {
	var recs []TutorRecord
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}

	tutors := make([]*models.TutorProfile, 0, len(recs))
	for i := range recs {
		tutors = append(tutors, recordToTutor(&recs[i]))
	}
	return tutors, nil
}

// ListActiveTutors returns tutors with active status.
func (s *Store) ListActiveTutors(ctx context.Context) ([]*models.TutorProfile, error) {
	var recs []TutorRecord
	err := s.DB.WithContext(ctx).
		Where("status = ?", string(models.TutorActive)).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list active tutors: %w", err)
	}

	tutors := make([]*models.TutorProfile, 0, len(recs))
	for i := range recs {
		tutors = append(tutors, recordToTutor(&recs[i]))
	}
	return tutors, nil
}

// UpdateTutor overwrites an existing tutor record.
func (s *Store) UpdateTutor(ctx context.Context, tutor *models.TutorProfile) error {
	tutor.UpdatedAt = time.Now().UTC()

	rec := tutorToRecord(tutor)
	res := s.DB.WithContext(ctx).Model(&TutorRecord{}).
		Where("id = ?", tutor.ID).
		Select("*").Omit("id", "created_at").
		Updates(rec)
	if res.Error != nil {
		return fmt.Errorf("update tutor %s: %w", tutor.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}

// DeleteTutor removes a tutor by ID.
func (s *Store) DeleteTutor(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&TutorRecord{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete tutor %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}
