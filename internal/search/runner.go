// Package search orchestrates one invocation: resolve the requested paths,
// scan each resolved file, and write counts or matching lines in order.
package search

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/grepr/internal/config"
	"github.com/harrison/grepr/internal/display"
	"github.com/harrison/grepr/internal/fileutil"
	"github.com/harrison/grepr/internal/scanner"
)

// Runner executes searches against a fixed pair of output streams.
// Out receives matched lines and counts, Err receives one line per
// recoverable failure. Stdin backs the "-" sentinel and is shared across
// every occurrence of it: the first scan drains it, later ones see EOF.
type Runner struct {
	Out         io.Writer
	Err         io.Writer
	Stdin       io.Reader
	Highlighter *display.Highlighter
}

// NewRunner wires a runner to the process streams with the given
// highlighter strategy.
func NewRunner(out, errOut io.Writer, stdin io.Reader, h *display.Highlighter) *Runner {
	return &Runner{Out: out, Err: errOut, Stdin: stdin, Highlighter: h}
}

// Run performs the whole search. Per-path failures are reported and
// skipped; the run itself always completes, which is why Run has no error
// return. Setup failures (an uncompilable pattern) are caught before a
// Runner is ever built.
func (r *Runner) Run(cfg *config.Search) {
	outcomes := fileutil.Resolve(cfg.Files, cfg.Recursive)

	// The prefix policy is fixed before any file is opened: more than one
	// successfully resolved path means every output line names its file.
	resolved := 0
	for _, o := range outcomes {
		if !o.Failed() {
			resolved++
		}
	}
	multi := resolved > 1

	for _, o := range outcomes {
		if o.Failed() {
			fmt.Fprintln(r.Err, &PathError{Path: o.Input, Reason: o.Reason})
			continue
		}
		if err := r.searchOne(o.Path, cfg, multi); err != nil {
			fmt.Fprintln(r.Err, err)
		}
	}
}

// searchOne scans a single resolved path and prints its output unit(s).
// The underlying file is released on every exit path.
func (r *Runner) searchOne(path string, cfg *config.Search, multi bool) error {
	stream, err := r.open(path)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}
	defer stream.Close()

	lines, err := scanner.Scan(stream, cfg.Pattern, cfg.InvertMatch)
	if err != nil {
		return &ScanError{Path: path, Err: err}
	}

	if cfg.Count {
		if multi {
			fmt.Fprintf(r.Out, "%s:%d\n", path, len(lines))
		} else {
			fmt.Fprintf(r.Out, "%d\n", len(lines))
		}
		return nil
	}

	for _, line := range lines {
		r.printLine(path, line, cfg, multi)
	}
	return nil
}

// printLine writes one selected line. Inverted lines go out verbatim with
// the bare "path:" prefix; matched lines get their first match emphasized
// and, in multi-file runs, a "path: " prefix with a trailing space. The
// prefix difference is part of the output contract.
func (r *Runner) printLine(path, line string, cfg *config.Search, multi bool) {
	if cfg.InvertMatch {
		if multi {
			fmt.Fprintf(r.Out, "%s:%s", path, line)
		} else {
			io.WriteString(r.Out, line)
		}
		return
	}

	// The scanner only hands over matching lines here, so a render miss
	// cannot happen; falling back to the verbatim line keeps output sane
	// if that invariant is ever broken.
	rendered, _ := r.Highlighter.Render(line, cfg.Pattern)
	if multi {
		fmt.Fprintf(r.Out, "%s: %s", path, rendered)
	} else {
		io.WriteString(r.Out, rendered)
	}
}

// open turns a resolved path into a readable stream: the stdin sentinel
// yields the runner's shared stdin, anything else opens the named file.
func (r *Runner) open(path string) (io.ReadCloser, error) {
	if path == fileutil.StdinSentinel {
		return io.NopCloser(r.Stdin), nil
	}
	return os.Open(path)
}
