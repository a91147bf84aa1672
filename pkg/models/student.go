// Package models contains domain models for tutormatch.
package models

import "time"

// StudentStatus represents the lifecycle state of a student record.
type StudentStatus string

const (
	// StudentActive means the student participates in matching runs.
	StudentActive StudentStatus = "active"
	// StudentInactive means the student is on the books but not matchable.
	StudentInactive StudentStatus = "inactive"
	// StudentGraduated means the student has left the program.
	StudentGraduated StudentStatus = "graduated"
)

// IsValid reports whether the status is one of the known states.
func (s StudentStatus) IsValid() bool {
	switch s {
	case StudentActive, StudentInactive, StudentGraduated:
		return true
	default:
		return false
	}
}

// LearningStyle describes how a student learns best.
type LearningStyle string

const (
	LearningVisual         LearningStyle = "visual"
	LearningAuditory       LearningStyle = "auditory"
	LearningKinesthetic    LearningStyle = "kinesthetic"
	LearningReadingWriting LearningStyle = "reading-writing"
	LearningMixed          LearningStyle = "mixed"
)

// IsValid reports whether the learning style is one of the known values.
func (l LearningStyle) IsValid() bool {
	switch l {
	case LearningVisual, LearningAuditory, LearningKinesthetic,
		LearningReadingWriting, LearningMixed:
		return true
	default:
		return false
	}
}

// SubjectNeed is one subject a student wants tutoring in.
type SubjectNeed struct {
	Name         string `json:"name"`
	CurrentLevel string `json:"currentLevel"`
	TargetLevel  string `json:"targetLevel"`
	Priority     int    `json:"priority"` // 1 (low) to 5 (high)
}

// StudentMetrics tracks a student's own performance history.
// These are bookkeeping fields; the matching engine does not read them.
type StudentMetrics struct {
	OverallImprovement      float64 `json:"overallImprovement"`
	EngagementScore         float64 `json:"engagementScore"`         // 0-10
	ParentSatisfactionScore float64 `json:"parentSatisfactionScore"` // 0-5
}

// StudentProfile is a student record with budget, needs and weekly availability.
type StudentProfile struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	ParentName      string             `json:"parentName"`
	ParentEmail     string             `json:"parentEmail"`
	ParentPhone     string             `json:"parentPhone"`
	GradeLevel      string             `json:"gradeLevel"`
	LearningStyle   LearningStyle      `json:"learningStyle"`
	SubjectsNeeded  []SubjectNeed      `json:"subjectsNeeded"`
	Availability    []AvailabilitySlot `json:"availability"`
	MaxHourlyRate   float64            `json:"maxHourlyRate"`   // budget ceiling per session hour
	SessionsPerWeek int                `json:"sessionsPerWeek"` // >= 1
	Metrics         StudentMetrics     `json:"performanceMetrics"`
	Status          StudentStatus      `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// IsActive reports whether the student participates in portfolio-wide runs.
func (s *StudentProfile) IsActive() bool {
	return s.Status == StudentActive
}
