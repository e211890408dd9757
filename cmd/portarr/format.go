package main

import "fmt"

func formatSpeed(bytesPerSec int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)
	switch {
	case bytesPerSec >= GB:
		return fmt.Sprintf("%.1f GB/s", float64(bytesPerSec)/GB)
	case bytesPerSec >= MB:
		return fmt.Sprintf("%.1f MB/s", float64(bytesPerSec)/MB)
	case bytesPerSec >= KB:
		return fmt.Sprintf("%.1f KB/s", float64(bytesPerSec)/KB)
	default:
		return fmt.Sprintf("%d B/s", bytesPerSec)
	}
}

func formatETA(seconds int64) string {
	if seconds <= 0 {
		return "-"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
