package services

import "time"

// DateAtLocation normalizes a timestamp to midnight of its calendar date in
// the given location. All persisted dates go through this helper, so the
// uniqueness constraint on days.date operates on normalized values only.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the half-open [start, next midnight) interval covering
// the timestamp's calendar date.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// WeekdayIndex reports the day-of-week index, 0=Sunday through 6=Saturday.
// Both the day query and the summary derive weekdays through this function
// so habit applicability is computed identically everywhere.
func WeekdayIndex(value time.Time) int {
	return int(value.Weekday())
}
