package matching

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lcc360/tutormatch/internal/db"
	"github.com/lcc360/tutormatch/pkg/models"
)

// WeightsCacheTTL is how long a loaded weight configuration stays valid
// before the next scoring call re-reads it from the store. Admin updates
// invalidate the cache immediately; the TTL only bounds staleness when the
// configuration is changed out of band.
const WeightsCacheTTL = 5 * time.Minute

// WeightsProvider supplies the active weight configuration to the scoring
// path, caching it in process memory so every match request does not hit
// the store. Scoring must never hard-fail because the configuration store
// is down: read failures fall back to the last known (or default)
// configuration and are only logged.
type WeightsProvider struct {
	store db.ConfigStore

	mu        sync.RWMutex
	cached    *models.WeightConfig
	expiresAt time.Time
	lastKnown *models.WeightConfig
}

// NewWeightsProvider creates a provider backed by the given config store.
func NewWeightsProvider(store db.ConfigStore) *WeightsProvider {
	return &WeightsProvider{store: store}
}

// Active returns the current weight configuration. On first call (or after
// the cache expires or is invalidated) it reads the singleton row from the
// store, creating it with defaults when absent. It never returns an error:
// a store outage degrades to the last known or default configuration.
func (p *WeightsProvider) Active(ctx context.Context) *models.WeightConfig {
	p.mu.RLock()
	if p.cached != nil && time.Now().Before(p.expiresAt) {
		cfg := p.cached
		p.mu.RUnlock()
		return cfg
	}
	p.mu.RUnlock()

	cfg, err := p.load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Weight config store unreachable, using fallback weights")
		p.mu.RLock()
		fallback := p.lastKnown
		p.mu.RUnlock()
		if fallback != nil {
			return fallback
		}
		return models.DefaultWeightConfig()
	}

	p.mu.Lock()
	p.cached = cfg
	p.lastKnown = cfg
	p.expiresAt = time.Now().Add(WeightsCacheTTL)
	p.mu.Unlock()

	return cfg
}

// load reads the singleton configuration, creating it lazily with defaults
// when no row exists yet.
func (p *WeightsProvider) load(ctx context.Context) (*models.WeightConfig, error) {
	cfg, err := p.store.GetActiveWeightConfig(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}

	cfg = models.DefaultWeightConfig()
	if err := p.store.CreateWeightConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("create default weight config: %w", err)
	}
	log.Info().Msg("Created default weight configuration")
	return cfg, nil
}

// Invalidate drops the cached configuration so the next read reflects an
// admin update. Called synchronously from every update path; a stale cache
// after an update is a correctness bug, not an acceptable staleness window.
func (p *WeightsProvider) Invalidate() {
	p.mu.Lock()
	p.cached = nil
	p.expiresAt = time.Time{}
	p.mu.Unlock()
}

// Update validates and persists a new weight configuration. chargePercentage
// and updatedBy are optional: nil keeps the current charge percentage, empty
// updatedBy is attributed to "admin". Validation failures are reported
// before anything is persisted; store failures during the write propagate
// to the caller.
func (p *WeightsProvider) Update(ctx context.Context, weights models.FactorWeights, chargePercentage *float64, updatedBy string) (*models.WeightConfig, error) {
	current, err := p.store.GetActiveWeightConfig(ctx)
	exists := true
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("read weight config: %w", err)
		}
		exists = false
		current = models.DefaultWeightConfig()
	}

	next := &models.WeightConfig{
		ConfigType:       models.ConfigTypeMatchingWeights,
		Weights:          weights,
		ChargePercentage: current.ChargePercentage,
		UpdatedBy:        updatedBy,
		UpdatedAt:        time.Now().UTC(),
	}
	if chargePercentage != nil {
		next.ChargePercentage = *chargePercentage
	}
	if next.UpdatedBy == "" {
		next.UpdatedBy = "admin"
	}

	if err := next.Validate(); err != nil {
		return nil, err
	}

	if exists {
		err = p.store.SaveWeightConfig(ctx, next)
	} else {
		err = p.store.CreateWeightConfig(ctx, next)
	}
	if err != nil {
		return nil, fmt.Errorf("persist weight config: %w", err)
	}

	p.Invalidate()

	log.Info().
		Str("updated_by", next.UpdatedBy).
		Float64("charge_percentage", next.ChargePercentage).
		Msg("Matching weights updated")

	return next, nil
}

// Reset overwrites the configuration with the documented defaults,
// attributing the change to "admin". Calling it twice yields the same
// configuration both times.
func (p *WeightsProvider) Reset(ctx context.Context) (*models.WeightConfig, error) {
	defaults := models.DefaultWeightConfig()
	return p.Update(ctx, defaults.Weights, &defaults.ChargePercentage, "admin")
}
