package booking

import (
	"fmt"
	"time"
)

// Clinic hours run 09:00 through 16:30 in half-hour slots, with the
// 12:00 and 12:30 lunch slots closed.
const (
	openHour     = 9
	lastSlotHour = 16
	lunchHour    = 12
)

// Slots returns every bookable time of day in order.
func Slots() []string {
	out := make([]string, 0, 14)
	for h := openHour; h <= lastSlotHour; h++ {
		if h == lunchHour {
			continue
		}
		out = append(out, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	return out
}

var slotSet = func() map[string]bool {
	set := make(map[string]bool)
	for _, s := range Slots() {
		set[s] = true
	}
	return set
}()

// ValidSlotTime reports whether t names a bookable time of day.
func ValidSlotTime(t string) bool {
	return slotSet[t]
}

// ValidateSlot checks the date and time strings of a booking request.
// today is the caller's current calendar date; dates before it are
// rejected, today itself is allowed.
func ValidateSlot(dateStr, timeStr string, today time.Time) (time.Time, error) {
	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "appointment_date", Reason: "invalid date format, want YYYY-MM-DD"}
	}

	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(midnight) {
		return time.Time{}, &ValidationError{Field: "appointment_date", Reason: "date is in the past"}
	}

	if !ValidSlotTime(timeStr) {
		return time.Time{}, &ValidationError{Field: "appointment_time", Reason: "not a bookable time slot"}
	}
	return date, nil
}
