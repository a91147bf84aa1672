// Package matching implements the tutor-student matching and scoring engine.
//
// The engine turns a student, a candidate pool of tutors, a subject and the
// admin-tunable factor weights into a ranked list of scored matches with
// profit projections. Each (student, tutor) pair is scored independently;
// there is no global assignment optimization.
package matching

import (
	"strconv"
	"strings"

	"github.com/lcc360/tutormatch/pkg/models"
)

// NeutralAvailabilityScore is returned when either side has no availability
// data. Missing data is treated as unknown, not as a penalty.
const NeutralAvailabilityScore = 50.0

// timeToMinutes converts an "HH:MM" string to minutes since midnight.
// Returns -1 for malformed input, which never overlaps anything.
func timeToMinutes(clock string) int {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return -1
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return -1
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return -1
	}
	return hours*60 + minutes
}

// SlotsOverlap reports whether two weekly slots intersect. Slots overlap iff
// they fall on the same day and their time ranges intersect as half-open
// intervals: a slot ending 17:00 does not overlap one starting 17:00.
func SlotsOverlap(a, b models.AvailabilitySlot) bool {
	if a.DayOfWeek != b.DayOfWeek {
		return false
	}

	startA := timeToMinutes(a.StartTime)
	endA := timeToMinutes(a.EndTime)
	startB := timeToMinutes(b.StartTime)
	endB := timeToMinutes(b.EndTime)
	if startA < 0 || endA < 0 || startB < 0 || endB < 0 {
		return false
	}

	return startA < endB && endA > startB
}

// AvailabilityScore measures how well a tutor's weekly schedule covers a
// student's, in [0, 100]. The numerator counts overlapping
// (student slot, tutor slot) pairs, so one student slot covered by several
// tutor slots counts more than once; the score is capped at 100. This
// mirrors the behavior the business signed off on, quirk included.
func AvailabilityScore(studentSlots, tutorSlots []models.AvailabilitySlot) float64 {
	if len(studentSlots) == 0 || len(tutorSlots) == 0 {
		return NeutralAvailabilityScore
	}

	matching := 0
	for _, ss := range studentSlots {
		for _, ts := range tutorSlots {
			if SlotsOverlap(ss, ts) {
				matching++
			}
		}
	}

	score := float64(matching) / float64(len(studentSlots)) * 100
	if score > 100 {
		score = 100
	}
	return score
}
