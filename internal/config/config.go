package config

import (
	"fmt"
	"regexp"
)

// Search represents one invocation's fully-resolved search parameters.
// It is built once from the command line and never mutated afterwards.
type Search struct {
	// Pattern is the compiled search expression. Case-insensitivity is
	// folded in at compile time, so no separate flag is retained.
	Pattern *regexp.Regexp

	// Files is the ordered list of requested paths. Never empty; the
	// stdin sentinel "-" stands in when no file was named.
	Files []string

	// Recursive expands directory arguments into their regular files.
	Recursive bool

	// Count emits per-file match counts instead of the matching lines.
	Count bool

	// InvertMatch selects the lines that do NOT match the pattern.
	InvertMatch bool
}

// Options carries the boolean flags used to build a Search.
type Options struct {
	Insensitive bool
	Recursive   bool
	Count       bool
	InvertMatch bool
}

// PatternError reports a search expression that failed to compile.
// It aborts the run before any file is touched.
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("Invalid pattern %q", e.Pattern)
}

// New compiles the pattern and assembles an immutable Search.
//
// Case-insensitive matching is requested through the regexp flag group
// rather than kept as state, so downstream code only ever sees a compiled
// pattern. An empty file list defaults to standard input.
func New(pattern string, files []string, opts Options) (*Search, error) {
	expr := pattern
	if opts.Insensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: pattern}
	}

	if len(files) == 0 {
		files = []string{"-"}
	}

	return &Search{
		Pattern:     re,
		Files:       files,
		Recursive:   opts.Recursive,
		Count:       opts.Count,
		InvertMatch: opts.InvertMatch,
	}, nil
}
