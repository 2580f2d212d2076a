// Package timefmt renders durations and clock times for attendance reports.
package timefmt

import "fmt"

// Minutes renders a minute count as "H hour(s) and M minute(s)". The hour
// clause is omitted when hours are zero, the minute clause when minutes are
// zero; a zero total falls back to "0 minutes".
func Minutes(total int) string {
	hours := total / 60
	mins := total % 60

	out := ""
	if hours > 0 {
		out = fmt.Sprintf("%d hour", hours)
		if hours > 1 {
			out += "s"
		}
	}
	if mins > 0 {
		if hours > 0 {
			out += " and "
		}
		out += fmt.Sprintf("%d minute", mins)
		if mins > 1 {
			out += "s"
		}
	}
	if out == "" {
		return "0 minutes"
	}
	return out
}
