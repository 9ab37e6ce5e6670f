package cmd

import "fmt"

// formatTime renders a second count as "Xm Ys".
func formatTime(seconds int) string {
	minutes := seconds / 60
	rest := seconds % 60
	if minutes == 0 {
		return fmt.Sprintf("%ds", rest)
	}
	return fmt.Sprintf("%dm %ds", minutes, rest)
}

// formatDuration renders a minute count as "X min" or "Xh Ym".
func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, rest)
}

// scoreText buckets a score into a short verdict.
func scoreText(score int) string {
	switch {
	case score >= 90:
		return "Excellent!"
	case score >= 70:
		return "Good!"
	case score >= 50:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}
