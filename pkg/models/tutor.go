package models

import (
	"strings"
	"time"
)

// TutorStatus represents the lifecycle state of a tutor record.
type TutorStatus string

const (
	// TutorActive means the tutor can be matched to students.
	TutorActive TutorStatus = "active"
	// TutorInactive means the tutor is not currently taking students.
	TutorInactive TutorStatus = "inactive"
	// TutorOnLeave means the tutor is temporarily unavailable.
	TutorOnLeave TutorStatus = "on-leave"
)

// IsValid reports whether the status is one of the known states.
func (s TutorStatus) IsValid() bool {
	switch s {
	case TutorActive, TutorInactive, TutorOnLeave:
		return true
	default:
		return false
	}
}

// SubjectSkill is one subject a tutor can teach.
type SubjectSkill struct {
	Name             string `json:"name"`
	ProficiencyLevel int    `json:"proficiencyLevel"` // 1-10
}

// PerformanceMetrics tracks a tutor's historical performance.
type PerformanceMetrics struct {
	AverageStudentImprovement float64 `json:"averageStudentImprovement"` // 0-10
	AverageParentRating       float64 `json:"averageParentRating"`       // 0-5
	TotalSessionsCompleted    int     `json:"totalSessionsCompleted"`
	ReliabilityScore          float64 `json:"reliabilityScore"` // 0-10, defaults to 5
}

// DefaultReliabilityScore is assumed for tutors with no reliability history.
const DefaultReliabilityScore = 5.0

// TutorProfile is a tutor record with rate, skills and weekly availability.
type TutorProfile struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	Subjects        []SubjectSkill     `json:"subjects"`
	HourlyRate      float64            `json:"hourlyRate"` // >= 0, what the tutor is paid
	ExperienceYears float64            `json:"experienceYears"`
	Availability    []AvailabilitySlot `json:"availability"`
	Performance     PerformanceMetrics `json:"performanceMetrics"`
	Status          TutorStatus        `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// IsActive reports whether the tutor is matchable.
func (t *TutorProfile) IsActive() bool {
	return t.Status == TutorActive
}

// SkillFor returns the tutor's skill entry for the given subject,
// matched case-insensitively, or nil when the tutor does not teach it.
func (t *TutorProfile) SkillFor(subject string) *SubjectSkill {
	for i := range t.Subjects {
		if strings.EqualFold(t.Subjects[i].Name, subject) {
			return &t.Subjects[i]
		}
	}
	return nil
}
