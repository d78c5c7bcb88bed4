package schedule

import (
	"testing"
	"time"

	"pettime_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, 2025-06-04. All relative dates below are derived from this
// fixed "now" so the tests never depend on the wall clock.
var testNow = time.Date(2025, 6, 4, 12, 0, 0, 0, time.Local)

func TestValidateSlot_AcceptsWholeHoursInWindow(t *testing.T) {
	for _, tc := range []string{"09:00", "10:00", "13:00", "16:00", "9:00"} {
		slot, err := ValidateSlot("2025-06-05", tc, testNow)
		require.NoError(t, err, "time %s should be accepted", tc)
		assert.Equal(t, time.Thursday, slot.Weekday())
		assert.Equal(t, 0, slot.Minute())
	}
}

func TestValidateSlot_RejectsMalformedTime(t *testing.T) {
	for _, tc := range []string{"", "abc", "25:00", "12:60", "12h30", "1200"} {
		_, err := ValidateSlot("2025-06-05", tc, testNow)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTimeFormat, "time %q", tc)
	}
}

func TestValidateSlot_RejectsOutsideWindow(t *testing.T) {
	for _, tc := range []string{"08:00", "17:00", "10:30", "16:01", "00:00", "23:00"} {
		_, err := ValidateSlot("2025-06-05", tc, testNow)
		assert.ErrorIs(t, err, apperrors.ErrOutsideBusinessHours, "time %q", tc)
	}
}

func TestValidateSlot_RejectsUnparsableDate(t *testing.T) {
	for _, tc := range []string{"", "2025-13-01", "2025-02-30", "05/06/2025"} {
		_, err := ValidateSlot(tc, "10:00", testNow)
		assert.ErrorIs(t, err, apperrors.ErrInvalidDateTime, "date %q", tc)
	}
}

func TestValidateSlot_RejectsSunday(t *testing.T) {
	// 2025-06-08 is a Sunday
	_, err := ValidateSlot("2025-06-08", "10:00", testNow)
	assert.ErrorIs(t, err, apperrors.ErrClosedOnSunday)
}

func TestValidateSlot_SundayTakesPrecedenceOverPast(t *testing.T) {
	// 2025-06-01 is a Sunday in the past; the weekday check runs first.
	_, err := ValidateSlot("2025-06-01", "10:00", testNow)
	assert.ErrorIs(t, err, apperrors.ErrClosedOnSunday)
}

func TestValidateSlot_RejectsPast(t *testing.T) {
	_, err := ValidateSlot("2025-06-03", "10:00", testNow)
	assert.ErrorIs(t, err, apperrors.ErrPastDateTime)

	// Same day, earlier hour
	_, err = ValidateSlot("2025-06-04", "10:00", testNow)
	assert.ErrorIs(t, err, apperrors.ErrPastDateTime)

	// The exact current instant is also rejected: strictly-in-the-future only.
	_, err = ValidateSlot("2025-06-04", "12:00", testNow)
	assert.ErrorIs(t, err, apperrors.ErrPastDateTime)
}

func TestValidateSlot_SameDayLaterHourAccepted(t *testing.T) {
	slot, err := ValidateSlot("2025-06-04", "15:00", testNow)
	require.NoError(t, err)
	assert.True(t, slot.After(testNow))
}

func TestInBusinessWindow(t *testing.T) {
	assert.True(t, InBusinessWindow("09:00"))
	assert.True(t, InBusinessWindow("16:00"))
	assert.False(t, InBusinessWindow("10:30"))
	assert.False(t, InBusinessWindow("08:00"))
	assert.False(t, InBusinessWindow("banana"))
}

func TestSlots(t *testing.T) {
	slots := Slots()
	require.Len(t, slots, 8)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:00", slots[len(slots)-1])
}
