package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lcc360/tutormatch/internal/db"
	"github.com/lcc360/tutormatch/pkg/models"
)

// GetActiveWeightConfig fetches the singleton weight configuration row.
// Returns db.ErrNotFound when no configuration has been stored yet.
func (s *Store) GetActiveWeightConfig(ctx context.Context) (*models.WeightConfig, error) {
	row := s.queryRowContext(ctx, `
		SELECT config_type, weights, charge_percentage, updated_by, updated_at
		FROM weight_configs WHERE config_type = ?`,
		models.ConfigTypeMatchingWeights)

	var (
		cfg       models.WeightConfig
		weights   models.JSONFactorWeights
		updatedAt string
	)
	err := row.Scan(&cfg.ConfigType, &weights, &cfg.ChargePercentage, &cfg.UpdatedBy, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, db.ErrNotFound
		}
		return nil, fmt.Errorf("get weight config: %w", err)
	}

	cfg.Weights = models.FactorWeights(weights)
	cfg.UpdatedAt = parseTime(updatedAt)
	return &cfg, nil
}

// CreateWeightConfig inserts the singleton weight configuration row.
func (s *Store) CreateWeightConfig(ctx context.Context, cfg *models.WeightConfig) error {
	if cfg.ConfigType == "" {
		cfg.ConfigType = models.ConfigTypeMatchingWeights
	}
	if cfg.UpdatedAt.IsZero() {
		cfg.UpdatedAt = time.Now().UTC()
	}

	_, err := s.execContext(ctx, `
		INSERT INTO weight_configs (config_type, weights, charge_percentage, updated_by, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		cfg.ConfigType,
		models.JSONFactorWeights(cfg.Weights),
		cfg.ChargePercentage,
		cfg.UpdatedBy,
		cfg.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
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

	res, err := s.execContext(ctx, `
		UPDATE weight_configs
		SET weights = ?, charge_percentage = ?, updated_by = ?, updated_at = ?
		WHERE config_type = ?`,
		models.JSONFactorWeights(cfg.Weights),
		cfg.ChargePercentage,
		cfg.UpdatedBy,
		cfg.UpdatedAt.Format(time.RFC3339Nano),
		cfg.ConfigType,
	)
	if err != nil {
		return fmt.Errorf("save weight config: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return db.ErrNotFound
	}
	return nil
}
