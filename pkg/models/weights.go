package models

import (
	"fmt"
	"math"
	"time"
)

// ConfigTypeMatchingWeights is the singleton key for the matching weight
// configuration. Exactly one configuration row exists per config type.
const ConfigTypeMatchingWeights = "matching_weights"

// WeightSumTolerance is the allowed floating-point slack when checking that
// the five factor weights sum to 1.0.
const WeightSumTolerance = 0.001

// Charge percentage bounds: the business never bills less than half of a
// student's budget ceiling, and never more than all of it.
const (
	MinChargePercentage = 50.0
	MaxChargePercentage = 100.0
)

// FactorWeights holds the relative importance of each matching factor.
// Each weight is in [0, 1] and the five must sum to 1.0 within
// WeightSumTolerance.
type FactorWeights struct {
	// ProfitMargin weights the business margin on the pairing.
	ProfitMargin float64 `json:"profitMargin"`

	// StudentImprovement weights the tutor's track record of raising results.
	StudentImprovement float64 `json:"studentImprovement"`

	// Satisfaction weights parent rating and reliability.
	Satisfaction float64 `json:"satisfaction"`

	// Availability weights weekly schedule overlap.
	Availability float64 `json:"availability"`

	// SubjectExpertise weights proficiency in the requested subject.
	SubjectExpertise float64 `json:"subjectExpertise"`
}

// DefaultFactorWeights returns the weight distribution used when no
// configuration has been stored yet.
func DefaultFactorWeights() FactorWeights {
	return FactorWeights{
		ProfitMargin:       0.25,
		StudentImprovement: 0.30,
		Satisfaction:       0.20,
		Availability:       0.15,
		SubjectExpertise:   0.10,
	}
}

// Sum returns the total of the five factor weights.
func (w FactorWeights) Sum() float64 {
	return w.ProfitMargin + w.StudentImprovement + w.Satisfaction +
		w.Availability + w.SubjectExpertise
}

// Validate checks that every weight is in [0, 1] and that the five sum to
// 1.0 within WeightSumTolerance. The returned error reports the offending
// value so admins can see what to fix.
func (w FactorWeights) Validate() error {
	named := []struct {
		name  string
		value float64
	}{
		{"profitMargin", w.ProfitMargin},
		{"studentImprovement", w.StudentImprovement},
		{"satisfaction", w.Satisfaction},
		{"availability", w.Availability},
		{"subjectExpertise", w.SubjectExpertise},
	}
	for _, f := range named {
		if f.value < 0 || f.value > 1 {
			return &ValidationError{
				Field:   f.name,
				Value:   f.value,
				Message: fmt.Sprintf("%s must be between 0 and 1 (got %v)", f.name, f.value),
			}
		}
	}

	if sum := w.Sum(); math.Abs(sum-1.0) > WeightSumTolerance {
		return &ValidationError{
			Field:   "weights",
			Value:   sum,
			Message: fmt.Sprintf("weights must sum to 1.0 (currently: %v)", sum),
		}
	}
	return nil
}

// WeightConfig is the admin-tunable matching configuration. It is a
// singleton: exactly one active configuration exists at a time, created
// lazily with defaults on first read and mutated only through validated
// updates. It is never deleted.
type WeightConfig struct {
	ConfigType       string        `json:"configType"`
	Weights          FactorWeights `json:"weights"`
	ChargePercentage float64       `json:"chargePercentage"` // percent of student budget billed, [50, 100]
	UpdatedBy        string        `json:"updatedBy"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// DefaultWeightConfig returns the configuration created on first read.
func DefaultWeightConfig() *WeightConfig {
	return &WeightConfig{
		ConfigType:       ConfigTypeMatchingWeights,
		Weights:          DefaultFactorWeights(),
		ChargePercentage: 85,
		UpdatedBy:        "admin",
		UpdatedAt:        time.Now().UTC(),
	}
}

// ChargeFraction returns the charge percentage as a fraction of the
// student's budget ceiling (85 -> 0.85).
func (c *WeightConfig) ChargeFraction() float64 {
	return c.ChargePercentage / 100
}

// Validate checks both configuration invariants: the factor weights and the
// charge percentage bounds.
func (c *WeightConfig) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.ChargePercentage < MinChargePercentage || c.ChargePercentage > MaxChargePercentage {
		return &ValidationError{
			Field:   "chargePercentage",
			Value:   c.ChargePercentage,
			Message: fmt.Sprintf("chargePercentage must be between %v and %v (got %v)", MinChargePercentage, MaxChargePercentage, c.ChargePercentage),
		}
	}
	return nil
}
