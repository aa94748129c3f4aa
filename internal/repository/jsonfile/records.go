package jsonfile

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// maxLineSize bounds a single archive line
const maxLineSize = 64 << 20

// EachRecord calls fn for every JSON value in an archive stream, in file
// order. Each line is decoded on its own, so a line that stops parsing
// midway is reported once through err and reading resumes on the next line.
// Several values on one line are the older concatenated format.
func EachRecord(r io.Reader, fn func(raw json.RawMessage, err error)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}

		dec := json.NewDecoder(bytes.NewReader(line))
		for {
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				if !errors.Is(err, io.EOF) {
					fn(nil, err)
				}
				break
			}
			fn(raw, nil)
		}
	}
	return sc.Err()
}
