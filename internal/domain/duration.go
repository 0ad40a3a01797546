package domain

import "fmt"

// MinutesToDuration formats whole minutes as "MM:00"
func MinutesToDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%02d:00", minutes)
}

// SecondsToDuration formats seconds as "MM:SS". Minutes are not wrapped into
// hours; the longest phase is 60 minutes.
func SecondsToDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
