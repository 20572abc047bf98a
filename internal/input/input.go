// Package input reads newline-delimited data files for the numkit commands.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrFileNotFound is returned when the input path does not exist.
var ErrFileNotFound = errors.New("file not found")

// Line is one line of an input file.
type Line struct {
	Number int    // 1-based
	Raw    string // without the line terminator
	Text   string // Raw with surrounding whitespace trimmed
}

// Blank reports whether the line has no content at all.
func (l Line) Blank() bool {
	return l.Raw == ""
}

// Empty reports whether the line holds only whitespace.
func (l Line) Empty() bool {
	return l.Text == ""
}

// ReadFile reads every line of path.
func ReadFile(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	lines, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// Read splits r into lines, stripping "\n" and "\r\n" terminators.
func Read(r io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		raw := strings.TrimRight(scanner.Text(), "\r")
		lines = append(lines, Line{
			Number: n,
			Raw:    raw,
			Text:   strings.TrimSpace(raw),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Tokens returns the trimmed text of every non-empty line.
func Tokens(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if !l.Empty() {
			out = append(out, l.Text)
		}
	}
	return out
}
