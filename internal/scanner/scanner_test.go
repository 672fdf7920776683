package scanner

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingReader returns some data and then a non-EOF error.
type failingReader struct {
	data string
	read bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		return copy(p, r.data), nil
	}
	return 0, errors.New("device gone")
}

func TestScanSelectsMatchingLines(t *testing.T) {
	input := "fox\nno match\nFox\n"

	got, err := Scan(strings.NewReader(input), regexp.MustCompile("fox"), false)

	require.NoError(t, err)
	assert.Equal(t, []string{"fox\n"}, got)
}

func TestScanCaseInsensitivePattern(t *testing.T) {
	input := "fox\nno match\nFox\n"

	got, err := Scan(strings.NewReader(input), regexp.MustCompile("(?i)fox"), false)

	require.NoError(t, err)
	assert.Equal(t, []string{"fox\n", "Fox\n"}, got)
}

func TestScanInvertMatch(t *testing.T) {
	input := "fox\nno match\nFox\n"

	got, err := Scan(strings.NewReader(input), regexp.MustCompile("fox"), true)

	require.NoError(t, err)
	assert.Equal(t, []string{"no match\n", "Fox\n"}, got)
}

func TestScanKeepsUnterminatedFinalLine(t *testing.T) {
	input := "fox\nlast fox"

	got, err := Scan(strings.NewReader(input), regexp.MustCompile("fox"), false)

	require.NoError(t, err)
	assert.Equal(t, []string{"fox\n", "last fox"}, got)
}

func TestScanEmptyStream(t *testing.T) {
	got, err := Scan(strings.NewReader(""), regexp.MustCompile("fox"), false)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScanIsRepeatable(t *testing.T) {
	input := "alpha\nbeta\nalpha beta\n"
	pattern := regexp.MustCompile("beta")

	first, err := Scan(strings.NewReader(input), pattern, false)
	require.NoError(t, err)
	second, err := Scan(strings.NewReader(input), pattern, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScanReadFailureDiscardsPartialResults(t *testing.T) {
	r := &failingReader{data: "fox\nfox again\n"}

	got, err := Scan(r, regexp.MustCompile("fox"), false)

	require.Error(t, err)
	assert.EqualError(t, err, "device gone")
	assert.Nil(t, got, "a failed scan must not leak partial matches")
}
