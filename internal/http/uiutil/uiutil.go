// Package uiutil holds small presentation helpers shared by handlers and templates.
package uiutil

import (
	"fmt"
	"strings"
	"time"
)

const friendlyLayout = "Jan 2, 2006 3:04 PM"

// FriendlyRelativeTime describes how long ago t occurred in plain words.
// Anything under a minute, including future timestamps from clock skew,
// reads as "just now"; anything older than a week falls back to the
// absolute form.
func FriendlyRelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	case d < 7*24*time.Hour:
		return plural(int(d.Hours()/24), "day")
	}
	return FormatFriendlyDateTime(t)
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// FormatFriendlyDateTime renders t in local time, or "" for the zero time.
func FormatFriendlyDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(friendlyLayout)
}

// TruncateWithEllipsis shortens text to limit runes, appending an ellipsis
// when anything was cut.
func TruncateWithEllipsis(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
