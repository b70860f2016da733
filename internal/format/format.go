package format

import (
	"fmt"
	"time"
)

// Duration formats a game length as HH:MM:SS or MM:SS.
func Duration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Seconds formats a length given in whole seconds, as match details report it.
func Seconds(n int64) string {
	return Duration(time.Duration(n) * time.Second)
}

// DurationHuman formats a wait for human display.
// Examples: "2h", "30m", "1h30m", "45s"
func DurationHuman(d time.Duration) string {
	if d >= time.Hour {
		hours := d / time.Hour
		minutes := (d % time.Hour) / time.Minute
		if minutes > 0 {
			return fmt.Sprintf("%dh%dm", hours, minutes)
		}
		return fmt.Sprintf("%dh", hours)
	}
	if d >= time.Minute {
		return fmt.Sprintf("%dm", d/time.Minute)
	}
	return fmt.Sprintf("%ds", d/time.Second)
}

// Millis formats an epoch-milliseconds timestamp in UTC.
// Zero renders as "-".
func Millis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04")
}

// WinRate formats wins over games played as a percentage.
func WinRate(wins, losses int) string {
	total := wins + losses
	if total <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", float64(wins)*100/float64(total))
}
