package format

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FileSize renders a byte count in human readable form, e.g. "2.5MB".
func FileSize(sizeBytes int64) string {
	if sizeBytes == 0 {
		return "0B"
	}

	size := float64(sizeBytes)
	i := 0
	for size >= 1024 && i < len(sizeUnits)-1 {
		size /= 1024.0
		i++
	}
	return fmt.Sprintf("%.1f%s", size, sizeUnits[i])
}

// Duration renders a duration in seconds as "1h 2m 3.5s", dropping the
// larger units when they are zero.
func Duration(seconds float64) string {
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	if seconds < 3600 {
		minutes := int(seconds) / 60
		return fmt.Sprintf("%dm %.1fs", minutes, seconds-float64(minutes*60))
	}
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	rest := seconds - float64(hours*3600) - float64(minutes*60)
	return fmt.Sprintf("%dh %dm %.1fs", hours, minutes, rest)
}
