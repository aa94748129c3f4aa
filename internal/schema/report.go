package schema

import (
	"fmt"
	"io"
)

// WriteReports prints one block per report and reports whether all were OK
func WriteReports(w io.Writer, reports ...Report) bool {
	ok := true
	for _, r := range reports {
		switch {
		case !r.Exists:
			fmt.Fprintf(w, "%s: absent (reads as empty)\n", r.Path)
		case r.Shape != "":
			fmt.Fprintf(w, "%s: %s layout, %d entries\n", r.Path, r.Shape, r.Entries)
		default:
			fmt.Fprintf(w, "%s: %d records\n", r.Path, r.Entries)
		}

		for _, p := range r.Problems {
			fmt.Fprintf(w, "  - %s\n", p)
		}
		if !r.OK() {
			ok = false
		}
	}
	return ok
}
