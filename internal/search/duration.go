package search

import "strings"

// formatDuration rewrites a provider ISO-8601 duration of the restricted
// grammar PT(\d+H)?(\d+M)? into a display string: "PT2H30M" -> "2H 30M",
// "PT45M" -> "45M", "PT5H" -> "5H ". Input outside the grammar degrades to
// the input with the PT prefix removed.
func formatDuration(iso string) string {
	rest, ok := strings.CutPrefix(iso, "PT")
	if !ok {
		return iso
	}

	hours, afterHours, okH := cutUnit(rest, 'H')
	minutes, afterMinutes, okM := cutUnit(afterHours, 'M')
	if !okH && !okM {
		return rest
	}
	if afterMinutes != "" {
		return rest
	}

	var b strings.Builder
	if okH {
		b.WriteString(hours)
		b.WriteString("H ")
	}
	if okM {
		b.WriteString(minutes)
		b.WriteString("M")
	}
	return b.String()
}

// cutUnit splits a leading "<digits><unit>" component off s. When s does not
// start with that component it is returned unchanged with ok false.
func cutUnit(s string, unit byte) (digits, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(s) || s[i] != unit {
		return "", s, false
	}
	return s[:i], s[i+1:], true
}
