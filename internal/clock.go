package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// Operational day bounds in minutes since midnight. Service runs from
// 5:55 to 21:21, so no trip can span more than DayEndMinutes-DayStartMinutes
// minutes.
const (
	DayStartMinutes = 5*60 + 55
	DayEndMinutes   = 21*60 + 21
)

// ClockToMinutes converts an H:MM or HH:MM clock string to minutes since midnight.
func ClockToMinutes(clock string) (int, error) {
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok || len(mm) != 2 {
		return 0, fmt.Errorf("malformed clock time %q", clock)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("malformed clock time %q", clock)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("malformed clock time %q", clock)
	}
	return h*60 + m, nil
}

// MinutesToClock formats minutes since midnight as an H:MM clock string.
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// InDayWindow reports whether a minutes-since-midnight value falls inside
// the operational day.
func InDayWindow(minutes int) bool {
	return minutes >= DayStartMinutes && minutes <= DayEndMinutes
}
