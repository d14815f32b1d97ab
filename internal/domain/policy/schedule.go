// Package policy decides whether an outside-zone fix should raise an alert.
package policy

import (
	"fmt"
	"time"
)

const (
	// DefaultWindowStart is 07:00 in minutes since local midnight.
	DefaultWindowStart = 7 * 60
	// DefaultWindowEnd is 17:00 in minutes since local midnight, exclusive.
	DefaultWindowEnd = 17 * 60
)

// AlertingWindow is the part of the school week during which boundary exits
// are alerted on. Start is inclusive and End exclusive, both in minutes since
// local midnight.
type AlertingWindow struct {
	Location    *time.Location
	StartMinute int
	EndMinute   int
	Weekdays    map[time.Weekday]bool
}

func schoolDays() map[time.Weekday]bool {
	return map[time.Weekday]bool{
		time.Monday:    true,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
		time.Friday:    true,
	}
}

// DefaultAlertingWindow is Monday to Friday, 07:00 to 17:00 in tz.
func DefaultAlertingWindow(tz *time.Location) *AlertingWindow {
	return &AlertingWindow{
		Location:    tz,
		StartMinute: DefaultWindowStart,
		EndMinute:   DefaultWindowEnd,
		Weekdays:    schoolDays(),
	}
}

// NewAlertingWindow builds a school-day window from an IANA timezone name and
// HH:MM bounds.
func NewAlertingWindow(timezone, start, end string) (*AlertingWindow, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}

	startMinute, err := parseClock(start)
	if err != nil {
		return nil, fmt.Errorf("invalid window start: %w", err)
	}

	endMinute, err := parseClock(end)
	if err != nil {
		return nil, fmt.Errorf("invalid window end: %w", err)
	}

	if endMinute <= startMinute {
		return nil, fmt.Errorf("window end %s must be after start %s", end, start)
	}

	return &AlertingWindow{
		Location:    loc,
		StartMinute: startMinute,
		EndMinute:   endMinute,
		Weekdays:    schoolDays(),
	}, nil
}

// Contains reports whether t falls inside the window, evaluated in the
// window's timezone.
func (w *AlertingWindow) Contains(t time.Time) bool {
	local := t
	if w.Location != nil {
		local = t.In(w.Location)
	}

	if !w.Weekdays[local.Weekday()] {
		return false
	}

	minute := local.Hour()*60 + local.Minute()

	return minute >= w.StartMinute && minute < w.EndMinute
}

// InAlertingWindow applies the default school-day window in tz.
func InAlertingWindow(t time.Time, tz *time.Location) bool {
	return DefaultAlertingWindow(tz).Contains(t)
}

func parseClock(s string) (int, error) {
	clock, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}

	return clock.Hour()*60 + clock.Minute(), nil
}
