package domain

import (
	"errors"
	"fmt"
)

// SaveOutcome classifies the result of a save request
type SaveOutcome string

const (
	OutcomeSaved    SaveOutcome = "saved"
	OutcomeRejected SaveOutcome = "rejected"
	OutcomeFailed   SaveOutcome = "failed"
)

// Storage targets reported by WriteError
const (
	TargetRepository = "repository"
	TargetArchive    = "archive"
)

// SaveReport describes a completed save
type SaveReport struct {
	Saved    WordSet
	Previous WordSet
}

// RejectedError is returned when word and translation counts differ.
// Nothing is written when a save is rejected.
type RejectedError struct {
	Words        int
	Translations int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("got %d words but %d translations", e.Words, e.Translations)
}

// WriteError is returned when the repository or the archive cannot be written
type WriteError struct {
	Target string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Target, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// OutcomeOf maps a save error to its outcome
func OutcomeOf(err error) SaveOutcome {
	if err == nil {
		return OutcomeSaved
	}
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return OutcomeRejected
	}
	return OutcomeFailed
}
