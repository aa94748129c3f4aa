package schema

import (
	"bytes"
	"testing"

	"shark/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestWriteReports(t *testing.T) {
	tests := []struct {
		name       string
		reports    []Report
		expected   string
		expectedOK bool
	}{
		{
			name: "all fine",
			reports: []Report{
				{Path: "words.json", Exists: true, Shape: domain.ShapePairs, Entries: 2},
				{Path: "archive.json", Exists: true, Entries: 3},
			},
			expected:   "words.json: pairs layout, 2 entries\narchive.json: 3 records\n",
			expectedOK: true,
		},
		{
			name: "absent files",
			reports: []Report{
				{Path: "words.json"},
			},
			expected:   "words.json: absent (reads as empty)\n",
			expectedOK: true,
		},
		{
			name: "problems listed",
			reports: []Report{
				{Path: "words.json", Exists: true, Shape: domain.ShapeUnknown, Problems: []string{"malformed JSON: unexpected end of JSON input"}},
				{Path: "archive.json", Exists: true, Entries: 1},
			},
			expected: "words.json: unknown layout, 0 entries\n" +
				"  - malformed JSON: unexpected end of JSON input\n" +
				"archive.json: 1 records\n",
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ok := WriteReports(&buf, tt.reports...)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}
