package models

import "fmt"

// Validate checks a student profile before it is persisted.
func (s *StudentProfile) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if s.MaxHourlyRate < 0 {
		return &ValidationError{
			Field:   "maxHourlyRate",
			Value:   s.MaxHourlyRate,
			Message: fmt.Sprintf("maxHourlyRate must not be negative (got %v)", s.MaxHourlyRate),
		}
	}
	if s.SessionsPerWeek < 0 {
		return &ValidationError{
			Field:   "sessionsPerWeek",
			Value:   s.SessionsPerWeek,
			Message: fmt.Sprintf("sessionsPerWeek must not be negative (got %v)", s.SessionsPerWeek),
		}
	}
	if s.Status != "" && !s.Status.IsValid() {
		return &ValidationError{
			Field:   "status",
			Value:   string(s.Status),
			Message: fmt.Sprintf("unknown student status %q", s.Status),
		}
	}
	if s.LearningStyle != "" && !s.LearningStyle.IsValid() {
		return &ValidationError{
			Field:   "learningStyle",
			Value:   string(s.LearningStyle),
			Message: fmt.Sprintf("unknown learning style %q", s.LearningStyle),
		}
	}
	for _, need := range s.SubjectsNeeded {
		if need.Name == "" {
			return &ValidationError{Field: "subjectsNeeded", Message: "subject need name is required"}
		}
	}
	return validateSlots("availability", s.Availability)
}

// Validate checks a tutor profile before it is persisted.
func (t *TutorProfile) Validate() error {
	if t.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if t.HourlyRate < 0 {
		return &ValidationError{
			Field:   "hourlyRate",
			Value:   t.HourlyRate,
			Message: fmt.Sprintf("hourlyRate must not be negative (got %v)", t.HourlyRate),
		}
	}
	if t.Status != "" && !t.Status.IsValid() {
		return &ValidationError{
			Field:   "status",
			Value:   string(t.Status),
			Message: fmt.Sprintf("unknown tutor status %q", t.Status),
		}
	}
	for _, skill := range t.Subjects {
		if skill.Name == "" {
			return &ValidationError{Field: "subjects", Message: "subject skill name is required"}
		}
		if skill.ProficiencyLevel < 1 || skill.ProficiencyLevel > 10 {
			return &ValidationError{
				Field:   "subjects",
				Value:   skill.ProficiencyLevel,
				Message: fmt.Sprintf("proficiencyLevel for %q must be between 1 and 10 (got %v)", skill.Name, skill.ProficiencyLevel),
			}
		}
	}
	return validateSlots("availability", t.Availability)
}

func validateSlots(field string, slots []AvailabilitySlot) error {
	for _, slot := range slots {
		if !IsValidDay(slot.DayOfWeek) {
			return &ValidationError{
				Field:   field,
				Value:   slot.DayOfWeek,
				Message: fmt.Sprintf("unknown day of week %q", slot.DayOfWeek),
			}
		}
	}
	return nil
}
