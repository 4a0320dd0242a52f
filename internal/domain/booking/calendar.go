package booking

import "time"

// Calendar is the working-calendar policy: which weekdays are worked,
// the daily window, and the display grid the slot engine steps on. It is
// an immutable value injected where needed; there is no runtime mutation
// path.
type Calendar struct {
	WorkingDays map[time.Weekday]bool
	DayStart    string // "15:04"
	DayEnd      string // "15:04"
	SlotLength  time.Duration
}

// DefaultCalendar is Monday through Friday, 09:00-17:00, 60-minute grid.
func DefaultCalendar() Calendar {
	return Calendar{
		WorkingDays: map[time.Weekday]bool{
			time.Monday:    true,
			time.Tuesday:   true,
			time.Wednesday: true,
			time.Thursday:  true,
			time.Friday:    true,
		},
		DayStart:   "09:00",
		DayEnd:     "17:00",
		SlotLength: 60 * time.Minute,
	}
}

func (c Calendar) IsWorkingDay(d time.Weekday) bool {
	return c.WorkingDays[d]
}

// Window anchors the daily working window on the given date, in that
// date's location.
func (c Calendar) Window(date time.Time) (start, end time.Time) {
	return atClock(date, c.DayStart), atClock(date, c.DayEnd)
}

func atClock(date time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	)
}
