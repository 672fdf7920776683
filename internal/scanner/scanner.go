// Package scanner selects the lines of a byte stream that satisfy a
// match/invert predicate.
package scanner

import (
	"bufio"
	"io"
	"regexp"
)

// Scan reads the stream line by line and returns, in order, every line
// selected by the predicate: matching lines normally, non-matching lines
// when invert is set. Each returned line keeps its original terminator; a
// final line without one is returned as-is.
//
// The stream is consumed forward-only and exactly once, so it need not be
// seekable. A read failure discards any lines collected so far and is
// returned to the caller: a stream either scans completely or not at all.
func Scan(r io.Reader, pattern *regexp.Regexp, invert bool) ([]string, error) {
	var selected []string

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			if pattern.MatchString(line) != invert {
				selected = append(selected, line)
			}
		}
		if err == io.EOF {
			return selected, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
