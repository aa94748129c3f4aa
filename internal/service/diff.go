package service

import (
	"strings"

	"shark/internal/domain"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// Diff renders a unified diff between two word sets, one entry per line.
// It returns an empty string when the sets are equal.
func Diff(previous, saved domain.WordSet) string {
	u := difflib.UnifiedDiff{
		A:        withNewlines(previous.Lines()),
		B:        withNewlines(saved.Lines()),
		FromFile: "previous",
		ToFile:   "saved",
		Context:  1,
	}
	s, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return ""
	}
	return s
}

func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimRight(l, "\n") + "\n"
	}
	return out
}
