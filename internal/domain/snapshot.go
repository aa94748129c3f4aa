package domain

import "time"

// Snapshot is one archived word set
type Snapshot struct {
	ID         string
	ArchivedAt time.Time
	Words      WordSet
}

// Legacy reports whether the snapshot came from a record without metadata
func (s Snapshot) Legacy() bool {
	return s.ID == "" && s.ArchivedAt.IsZero()
}

// DisplayString returns user-friendly archive date
func (s Snapshot) DisplayString() string {
	if s.ArchivedAt.IsZero() {
		return "undated"
	}

	now := time.Now()
	date := s.ArchivedAt.In(now.Location())

	// Check if today
	if date.Year() == now.Year() && date.Month() == now.Month() && date.Day() == now.Day() {
		return "Today " + date.Format("15:04")
	}

	// Check if yesterday
	yesterday := now.AddDate(0, 0, -1)
	if date.Year() == yesterday.Year() && date.Month() == yesterday.Month() && date.Day() == yesterday.Day() {
		return "Yesterday " + date.Format("15:04")
	}

	return date.Format("2 Jan 2006 15:04")
}
