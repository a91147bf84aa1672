package models

// DaysOfWeek is the canonical list of weekday names used in availability
// slots. Slots are compared by exact day string, so records must store
// these lowercase names.
var DaysOfWeek = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// IsValidDay reports whether name is one of the seven weekday names.
func IsValidDay(name string) bool {
	for _, d := range DaysOfWeek {
		if d == name {
			return true
		}
	}
	return false
}

// AvailabilitySlot is one recurring weekly time window. Times are 24-hour
// "HH:MM" strings; a slice of slots forms a weekly schedule with no calendar
// dates attached.
type AvailabilitySlot struct {
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
