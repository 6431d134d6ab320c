package countdown

import "fmt"

// FormatClock formats seconds for the countdown surface (e.g., "3:07", "0:45").
// Minutes are not padded and may exceed 59.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatNatural formats seconds as a preset label (e.g., "1 h 1 m 5 s", "3 min", "45 s").
// Hours use the short "m" for minutes; without hours minutes read "min".
func FormatNatural(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60

	switch {
	case hrs > 0 && mins > 0 && secs > 0:
		return fmt.Sprintf("%d h %d m %d s", hrs, mins, secs)
	case hrs > 0 && mins > 0:
		return fmt.Sprintf("%d h %d m", hrs, mins)
	case hrs > 0 && secs > 0:
		return fmt.Sprintf("%d h %d s", hrs, secs)
	case hrs > 0:
		return fmt.Sprintf("%d h", hrs)
	case mins > 0 && secs > 0:
		return fmt.Sprintf("%d min %d s", mins, secs)
	case mins > 0:
		return fmt.Sprintf("%d min", mins)
	default:
		return fmt.Sprintf("%d s", secs)
	}
}
