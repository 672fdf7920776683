package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// StdinSentinel is the pseudo-path that names the process's standard input.
const StdinSentinel = "-"

// Outcome is the per-input result of path resolution: either a readable
// file path or the reason the input could not be used.
type Outcome struct {
	// Path is the resolved file path (or the stdin sentinel). Empty when
	// resolution failed.
	Path string
	// Input is the original requested path this outcome belongs to.
	Input string
	// Reason is the human-readable failure message. Empty on success.
	Reason string
}

// Failed reports whether this outcome is a resolution failure.
func (o Outcome) Failed() bool {
	return o.Reason != ""
}

// Resolve expands the requested paths into an ordered list of outcomes.
//
// The stdin sentinel "-" always resolves to itself without touching the
// filesystem; any stdin problem surfaces at read time instead. Directories
// are an error unless recursive is set, in which case every regular file
// under the directory becomes its own resolved outcome, in sorted order for
// deterministic output. Walk errors on individual entries, symlinks, and
// other non-regular entries are skipped silently.
func Resolve(paths []string, recursive bool) []Outcome {
	var outcomes []Outcome

	for _, path := range paths {
		if path == StdinSentinel {
			outcomes = append(outcomes, Outcome{Path: path, Input: path})
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			outcomes = append(outcomes, Outcome{
				Input:  path,
				Reason: fmt.Sprintf("%s: %v", path, statCause(err)),
			})
			continue
		}

		switch {
		case info.IsDir():
			if !recursive {
				outcomes = append(outcomes, Outcome{
					Input:  path,
					Reason: fmt.Sprintf("%s is a directory", path),
				})
				continue
			}
			for _, file := range walkFiles(path) {
				outcomes = append(outcomes, Outcome{Path: file, Input: path})
			}
		case info.Mode().IsRegular():
			outcomes = append(outcomes, Outcome{Path: path, Input: path})
		}
		// Anything else (device nodes, sockets, ...) yields no outcome.
	}

	return outcomes
}

// walkFiles collects every regular file under root, sorted by full path.
// Individual entry errors abort only that subtree's entry, never the walk.
func walkFiles(root string) []string {
	var files []string

	// The returned error is always nil: the callback swallows per-entry
	// failures so one unreadable entry cannot hide its siblings.
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})

	sort.Strings(files)
	return files
}

// statCause unwraps the path-qualified stat error down to the underlying
// system message, so callers can prefix the original input themselves
// without doubling the path.
func statCause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
