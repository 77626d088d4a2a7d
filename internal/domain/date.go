package domain

import "time"

// DisplayDate returns a user-friendly date relative to now
func DisplayDate(date, now time.Time) string {
	date = date.In(now.Location())

	// Check if today
	if sameDay(date, now) {
		return "Today " + date.Format("15:04")
	}

	// Check if yesterday
	if sameDay(date, now.AddDate(0, 0, -1)) {
		return "Yesterday " + date.Format("15:04")
	}

	return date.Format("2 Jan 2006 15:04")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
