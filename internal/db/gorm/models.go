package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lcc360/tutormatch/pkg/models"
)

// GORM Models
//
// Nested document fields (subjects, availability, weights, metrics) are
// stored as JSON text columns via the JSON types in pkg/models, which
// implement sql.Scanner and driver.Valuer.

// StudentRecord is the persisted form of a student profile.
type StudentRecord struct {
	ID              string                    `gorm:"primaryKey;type:text"`
	Name            string                    `gorm:"not null"`
	Email           string                    `gorm:"index"`
	Phone           string                    ``
	ParentName      string                    ``
	ParentEmail     string                    ``
	ParentPhone     string                    ``
	GradeLevel      string                    ``
	LearningStyle   string                    ``
	SubjectsNeeded  models.JSONSubjectNeeds   `gorm:"type:text"`
	Availability    models.JSONAvailability   `gorm:"type:text"`
	MaxHourlyRate   float64                   `gorm:"not null;default:0"`
	SessionsPerWeek int                       `gorm:"not null;default:1"`
	Metrics         models.JSONStudentMetrics `gorm:"type:text"`
	Status          string                    `gorm:"type:text;check:status IN ('active', 'inactive', 'graduated');default:'active';index"`
	CreatedAt       time.Time                 `gorm:"not null"`
	UpdatedAt       time.Time                 `gorm:"not null"`
}

func (StudentRecord) TableName() string { return "students" }

// BeforeCreate hook to ensure an ID and timestamps are set.
func (r *StudentRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = string(models.StudentActive)
	}
	return nil
}

// TutorRecord is the persisted form of a tutor profile.
type TutorRecord struct {
	ID              string                        `gorm:"primaryKey;type:text"`
	Name            string                        `gorm:"not null"`
	Email           string                        `gorm:"index"`
	Phone           string                        ``
	Subjects        models.JSONSubjectSkills      `gorm:"type:text"`
	HourlyRate      float64                       `gorm:"not null;default:0"`
	ExperienceYears float64                       `gorm:"not null;default:0"`
	Availability    models.JSONAvailability       `gorm:"type:text"`
	Performance     models.JSONPerformanceMetrics `gorm:"type:text"`
	Status          string                        `gorm:"type:text;check:status IN ('active', 'inactive', 'on-leave');default:'active';index"`
	CreatedAt       time.Time                     `gorm:"not null"`
	UpdatedAt       time.Time                     `gorm:"not null"`
}

func (TutorRecord) TableName() string { return "tutors" }

// BeforeCreate hook to ensure an ID and timestamps are set.
func (r *TutorRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Status == "" {
		r.Status = string(models.TutorActive)
	}
	return nil
}

// WeightConfigRecord is the persisted singleton weight configuration,
// keyed by config type.
type WeightConfigRecord struct {
	ConfigType       string                   `gorm:"primaryKey;type:text"`
	Weights          models.JSONFactorWeights `gorm:"type:text;not null"`
	ChargePercentage float64                  `gorm:"not null;default:85"`
	UpdatedBy        string                   `gorm:"not null;default:'admin'"`
	UpdatedAt        time.Time                `gorm:"not null"`
}

func (WeightConfigRecord) TableName() string { return "weight_configs" }

// Model conversions

func studentToRecord(s *models.StudentProfile) *StudentRecord {
	return &StudentRecord{
		ID:              s.ID,
		Name:            s.Name,
		Email:           s.Email,
		Phone:           s.Phone,
		ParentName:      s.ParentName,
		ParentEmail:     s.ParentEmail,
		ParentPhone:     s.ParentPhone,
		GradeLevel:      s.GradeLevel,
		LearningStyle:   string(s.LearningStyle),
		SubjectsNeeded:  models.JSONSubjectNeeds(s.SubjectsNeeded),
		Availability:    models.JSONAvailability(s.Availability),
		MaxHourlyRate:   s.MaxHourlyRate,
		SessionsPerWeek: s.SessionsPerWeek,
		Metrics:         models.JSONStudentMetrics(s.Metrics),
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func recordToStudent(r *StudentRecord) *models.StudentProfile {
	return &models.StudentProfile{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		ParentName:      r.ParentName,
		ParentEmail:     r.ParentEmail,
		ParentPhone:     r.ParentPhone,
		GradeLevel:      r.GradeLevel,
		LearningStyle:   models.LearningStyle(r.LearningStyle),
		SubjectsNeeded:  []models.SubjectNeed(r.SubjectsNeeded),
		Availability:    []models.AvailabilitySlot(r.Availability),
		MaxHourlyRate:   r.MaxHourlyRate,
		SessionsPerWeek: r.SessionsPerWeek,
		Metrics:         models.StudentMetrics(r.Metrics),
		Status:          models.StudentStatus(r.Status),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func tutorToRecord(t *models.TutorProfile) *TutorRecord {
	return &TutorRecord{
		ID:              t.ID,
		Name:            t.Name,
		Email:           t.Email,
		Phone:           t.Phone,
		Subjects:        models.JSONSubjectSkills(t.Subjects),
		HourlyRate:      t.HourlyRate,
		ExperienceYears: t.ExperienceYears,
		Availability:    models.JSONAvailability(t.Availability),
		Performance:     models.JSONPerformanceMetrics(t.Performance),
		Status:          string(t.Status),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func recordToTutor(r *TutorRecord) *models.TutorProfile {
	return &models.TutorProfile{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Subjects:        []models.SubjectSkill(r.Subjects),
		HourlyRate:      r.HourlyRate,
		ExperienceYears: r.ExperienceYears,
		Availability:    []models.AvailabilitySlot(r.Availability),
		Performance:     models.PerformanceMetrics(r.Performance),
		Status:          models.TutorStatus(r.Status),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func configToRecord(c *models.WeightConfig) *WeightConfigRecord {
	return &WeightConfigRecord{
		ConfigType:       c.ConfigType,
		Weights:          models.JSONFactorWeights(c.Weights),
		ChargePercentage: c.ChargePercentage,
		UpdatedBy:        c.UpdatedBy,
		UpdatedAt:        c.UpdatedAt,
	}
}

func recordToConfig(r *WeightConfigRecord) *models.WeightConfig {
	return &models.WeightConfig{
		ConfigType:       r.ConfigType,
		Weights:          models.FactorWeights(r.Weights),
		ChargePercentage: r.ChargePercentage,
		UpdatedBy:        r.UpdatedBy,
		UpdatedAt:        r.UpdatedAt,
	}
}
