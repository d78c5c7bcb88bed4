package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"pettime_backend/pkg/apperrors"
)

// Booking window: whole-hour slots from 09:00 to 16:00 inclusive, closed on
// Sundays. This is the single canonical rule; the price/duration estimates in
// pricing.go use the same window.
const (
	OpeningHour = 9
	ClosingHour = 16
)

var timeRe = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// ValidateSlot checks a requested (date, time) pair against the booking
// rules and returns the slot instant. Checks run in a fixed order and the
// first failure wins:
//
//	time format -> business window -> date+time parse -> Sunday -> past.
func ValidateSlot(date, timeOfDay string, now time.Time) (time.Time, error) {
	m := timeRe.FindStringSubmatch(timeOfDay)
	if m == nil {
		return time.Time{}, apperrors.ErrInvalidTimeFormat
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	if minute != 0 || hour < OpeningHour || hour > ClosingHour {
		return time.Time{}, apperrors.ErrOutsideBusinessHours
	}

	slot, err := time.ParseInLocation(
		"2006-01-02T15:04",
		fmt.Sprintf("%sT%02d:%02d", date, hour, minute),
		now.Location(),
	)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDateTime
	}

	if slot.Weekday() == time.Sunday {
		return time.Time{}, apperrors.ErrClosedOnSunday
	}

	if !slot.After(now) {
		return time.Time{}, apperrors.ErrPastDateTime
	}

	return slot, nil
}

// InBusinessWindow reports whether a well-formed time string falls on an
// accepted slot, without the date checks.
func InBusinessWindow(timeOfDay string) bool {
	m := timeRe.FindStringSubmatch(timeOfDay)
	if m == nil {
		return false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return minute == 0 && hour >= OpeningHour && hour <= ClosingHour
}

// Slots enumerates every bookable time of day, in order.
func Slots() []string {
	slots := make([]string, 0, ClosingHour-OpeningHour+1)
	for h := OpeningHour; h <= ClosingHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}
