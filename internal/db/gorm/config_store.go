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

// GetActiveWeightConfig fetches the singleton weight configuration row.
// Returns db.ErrNotFound when no configuration has been stored yet.
func (s *Store) GetActiveWeightConfig(ctx context.Context) (*models.WeightConfig, error) {
	var rec WeightConfigRecord
	err := s.DB.WithContext(ctx).
		First(&rec, "config_type = ?", models.ConfigTypeMatchingWeights).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("get weight config: %w", err)
	}
	return recordToConfig(&rec), nil
}

// CreateWeightConfig inserts the singleton weight configuration row.
func (s *Store) CreateWeightConfig(ctx context.Context, cfg *models.WeightConfig) error {
	if cfg.ConfigType == "" {
		cfg.ConfigType = models.ConfigTypeMatchingWeights
	}
	if cfg.UpdatedAt.IsZero() {
		cfg.UpdatedAt = time.Now().UTC()
	}

	if err := s.DB.WithContext(ctx).Create(configToRecord(cfg)).Error; err != nil {
		return fmt.Errorf("create weight config: %w", err)
	}
	return nil
}

// SaveWeightConfig overwrites the singleton weight configuration row.
func (s *Store) SaveWeightConfig(ctx context.Context, cfg *models.WeightConfig) error {
	if cfg.ConfigType == "" {
		cfg.ConfigType = models.ConfigTypeMatchingWeights
	}
	cfg.UpdatedAt = time.Now().UTC()

	res := s.DB.WithContext(ctx).Model(&WeightConfigRecord{}).
		Where("config_type = ?", cfg.ConfigType).
		Select("*").Omit("config_type").
		Updates(configToRecord(cfg))
	if res.Error != nil {
		return fmt.Errorf("save weight config: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return db.ErrNotFound
	}
	return nil
}
