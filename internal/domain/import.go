package domain

import "time"

// ImportStats holds statistics from an import into a link store
type ImportStats struct {
	LinksWritten      int
	CategoriesWritten int
	Skipped           int // Records dropped before writing
	Replaced          bool
	Duration          time.Duration
}
