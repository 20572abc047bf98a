// Package report builds the fixed-width text reports printed by numkit commands
// and persists them to results files.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report is a titled list of preformatted lines.
type Report struct {
	Title string
	Lines []string
}

// New creates an empty report with the given title.
func New(title string) *Report {
	return &Report{Title: title}
}

// Line appends one formatted line.
func (r *Report) Line(format string, args ...any) *Report {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
	return r
}

// Rule appends a horizontal rule of n dashes.
func (r *Report) Rule(n int) *Report {
	r.Lines = append(r.Lines, strings.Repeat("-", n))
	return r
}

// Blank appends an empty line.
func (r *Report) Blank() *Report {
	r.Lines = append(r.Lines, "")
	return r
}

// Field appends a "label value" line with the label left-aligned in width columns.
func (r *Report) Field(label string, width int, value string) *Report {
	return r.Line("%-*s%s", width, label, value)
}

// Columns appends a row of left-aligned cells separated by single spaces.
// Cells longer than their width are not truncated.
func (r *Report) Columns(widths []int, cells ...string) *Report {
	var sb strings.Builder
	for i, cell := range cells {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i < len(widths) {
			fmt.Fprintf(&sb, "%-*s", widths[i], cell)
		} else {
			sb.WriteString(cell)
		}
	}
	r.Lines = append(r.Lines, sb.String())
	return r
}

// String renders the report as plain text without a trailing newline.
func (r *Report) String() string {
	parts := make([]string, 0, len(r.Lines)+1)
	if r.Title != "" {
		parts = append(parts, r.Title)
	}
	parts = append(parts, r.Lines...)
	return strings.Join(parts, "\n")
}

// Styled renders the report with a bold title. lipgloss drops the styling when
// the output is not a color-capable terminal.
func (r *Report) Styled() string {
	if r.Title == "" {
		return r.String()
	}
	title := lipgloss.NewStyle().Bold(true).Render(r.Title)
	if len(r.Lines) == 0 {
		return title
	}
	return title + "\n" + strings.Join(r.Lines, "\n")
}

// Save writes the plain report to path, creating parent directories.
func (r *Report) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create results directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(r.String()+"\n"), 0644); err != nil {
		return fmt.Errorf("error writing results file: %w", err)
	}
	return nil
}

// Emit prints the report to w and saves it to path when path is non-empty.
func Emit(w io.Writer, r *Report, path string, styled bool) error {
	text := r.String()
	if styled {
		text = r.Styled()
	}
	if _, err := fmt.Fprintln(w, text); err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	return r.Save(path)
}
