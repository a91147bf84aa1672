package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON column types for nested document fields. Both database backends store
// these as JSON text; the types implement sql.Scanner and driver.Valuer so
// GORM and database/sql handle them transparently.

func scanJSON(src interface{}, name string, dst interface{}) error {
	if src == nil {
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("%s: unsupported type %T", name, src)
	}

	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}

// JSONSubjectNeeds stores a student's subject needs as a JSON array.
type JSONSubjectNeeds []SubjectNeed

// Scan implements sql.Scanner for JSONSubjectNeeds.
func (j *JSONSubjectNeeds) Scan(src interface{}) error {
	*j = nil
	return scanJSON(src, "JSONSubjectNeeds", j)
}

// Value implements driver.Valuer for JSONSubjectNeeds.
func (j JSONSubjectNeeds) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// JSONSubjectSkills stores a tutor's subject skills as a JSON array.
type JSONSubjectSkills []SubjectSkill

// Scan implements sql.Scanner for JSONSubjectSkills.
func (j *JSONSubjectSkills) Scan(src interface{}) error {
	*j = nil
	return scanJSON(src, "JSONSubjectSkills", j)
}

// Value implements driver.Valuer for JSONSubjectSkills.
func (j JSONSubjectSkills) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// JSONAvailability stores weekly availability slots as a JSON array.
type JSONAvailability []AvailabilitySlot

// Scan implements sql.Scanner for JSONAvailability.
func (j *JSONAvailability) Scan(src interface{}) error {
	*j = nil
	return scanJSON(src, "JSONAvailability", j)
}

// Value implements driver.Valuer for JSONAvailability.
func (j JSONAvailability) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// JSONFactorWeights stores the factor weight set as a JSON object.
type JSONFactorWeights FactorWeights

// Scan implements sql.Scanner for JSONFactorWeights.
func (j *JSONFactorWeights) Scan(src interface{}) error {
	*j = JSONFactorWeights{}
	return scanJSON(src, "JSONFactorWeights", j)
}

// Value implements driver.Valuer for JSONFactorWeights.
func (j JSONFactorWeights) Value() (driver.Value, error) {
	return json.Marshal(j)
}

// JSONStudentMetrics stores student performance history as a JSON object.
type JSONStudentMetrics StudentMetrics

// Scan implements sql.Scanner for JSONStudentMetrics.
func (j *JSONStudentMetrics) Scan(src interface{}) error {
	*j = JSONStudentMetrics{}
	return scanJSON(src, "JSONStudentMetrics", j)
}

// Value implements driver.Valuer for JSONStudentMetrics.
func (j JSONStudentMetrics) Value() (driver.Value, error) {
	return json.Marshal(j)
}

// JSONPerformanceMetrics stores tutor performance history as a JSON object.
type JSONPerformanceMetrics PerformanceMetrics

// Scan implements sql.Scanner for JSONPerformanceMetrics.
func (j *JSONPerformanceMetrics) Scan(src interface{}) error {
	*j = JSONPerformanceMetrics{}
	return scanJSON(src, "JSONPerformanceMetrics", j)
}

// Value implements driver.Valuer for JSONPerformanceMetrics.
func (j JSONPerformanceMetrics) Value() (driver.Value, error) {
	return json.Marshal(j)
}
