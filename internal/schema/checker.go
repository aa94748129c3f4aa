// Package schema validates word and archive files strictly, where the
// storage layer is tolerant and silently skips bad input.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"shark/internal/domain"
	"shark/internal/repository/jsonfile"

	"github.com/xeipuuv/gojsonschema"
)

// maxProblems caps how many schema errors are reported per document
const maxProblems = 3

// Report describes one checked file.
// Entries counts words for the repository and records for the archive.
type Report struct {
	Path     string
	Exists   bool
	Shape    domain.Shape
	Entries  int
	Problems []string
}

// OK reports whether no problems were found
func (r Report) OK() bool {
	return len(r.Problems) == 0
}

// Checker holds the compiled schemas
type Checker struct {
	repository *gojsonschema.Schema
	archive    *gojsonschema.Schema
}

// NewChecker compiles the repository and archive schemas
func NewChecker() (*Checker, error) {
	repo, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(repositorySchema))
	if err != nil {
		return nil, fmt.Errorf("invalid repository schema: %w", err)
	}
	archive, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(archiveRecordSchema))
	if err != nil {
		return nil, fmt.Errorf("invalid archive schema: %w", err)
	}
	return &Checker{repository: repo, archive: archive}, nil
}

// CheckRepository validates the word file at path.
// An absent file is valid and reads as an empty set.
func (c *Checker) CheckRepository(path string) Report {
	report := Report{Path: path}

	data, ok := readFile(path, &report)
	if !ok {
		return report
	}

	if len(bytes.TrimSpace(data)) == 0 {
		report.Shape = domain.ShapeUnknown
		report.Problems = append(report.Problems, "file is empty")
		return report
	}

	report.Problems = append(report.Problems, validate(c.repository, data, "")...)

	decoded, err := jsonfile.DecodeDocument(data)
	report.Shape = decoded.Shape
	report.Entries = len(decoded.Words)
	if err != nil && len(report.Problems) == 0 {
		report.Problems = append(report.Problems, fmt.Sprintf("malformed JSON: %v", err))
	}
	return report
}

// CheckArchive validates every record of the archive at path.
// A malformed record is reported and checking continues with the next line.
func (c *Checker) CheckArchive(path string) Report {
	report := Report{Path: path}

	data, ok := readFile(path, &report)
	if !ok {
		return report
	}

	n := 0
	err := jsonfile.EachRecord(bytes.NewReader(data), func(raw json.RawMessage, err error) {
		n++
		if err != nil {
			report.Problems = append(report.Problems, fmt.Sprintf("record %d: malformed JSON: %v", n, err))
			return
		}
		report.Entries++
		report.Problems = append(report.Problems, validate(c.archive, raw, fmt.Sprintf("record %d: ", n))...)
	})
	if err != nil {
		report.Problems = append(report.Problems, fmt.Sprintf("cannot read file: %v", err))
	}
	return report
}

func readFile(path string, report *Report) ([]byte, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			report.Exists = true
			report.Problems = append(report.Problems, fmt.Sprintf("cannot read file: %v", err))
		}
		return nil, false
	}
	report.Exists = true
	return data, true
}

func validate(s *gojsonschema.Schema, doc []byte, prefix string) []string {
	result, err := s.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return []string{prefix + fmt.Sprintf("malformed JSON: %v", err)}
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for i, desc := range result.Errors() {
		if i == maxProblems {
			problems = append(problems, fmt.Sprintf("%s... and %d more", prefix, len(result.Errors())-maxProblems))
			break
		}
		problems = append(problems, prefix+desc.String())
	}
	return problems
}
