package handler

import "fmt"

// formatUploadLimit renders a byte limit for error messages, rounding
// sub-megabyte limits up so the message never reads "0MB".
func formatUploadLimit(limit int64) string {
	const mb int64 = 1 << 20
	if limit <= 0 {
		return "0MB"
	}
	value := (limit + mb - 1) / mb
	return fmt.Sprintf("%dMB", value)
}
