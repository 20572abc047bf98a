// Package wordfreq counts distinct whitespace-separated words.
package wordfreq

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"numkit/internal/input"
	"numkit/internal/report"
)

// ErrNoWords is returned when the input holds no words.
var ErrNoWords = errors.New("file is empty or contains no valid words")

// Frequencies maps each word to its occurrence count. Words are case-sensitive.
type Frequencies struct {
	counts map[string]int
	total  int
}

// Count tallies the words of lines.
func Count(lines []input.Line) (*Frequencies, error) {
	f := &Frequencies{counts: make(map[string]int)}
	for _, l := range lines {
		for _, w := range strings.Fields(l.Text) {
			f.counts[w]++
			f.total++
		}
	}
	if f.total == 0 {
		return nil, ErrNoWords
	}
	return f, nil
}

// Get returns the count of word.
func (f *Frequencies) Get(word string) int {
	return f.counts[word]
}

// Distinct is the number of different words.
func (f *Frequencies) Distinct() int {
	return len(f.counts)
}

// Total is the number of words counted, duplicates included.
func (f *Frequencies) Total() int {
	return f.total
}

// Sorted returns the distinct words in ascending order.
func (f *Frequencies) Sorted() []string {
	words := make([]string, 0, len(f.counts))
	for w := range f.counts {
		words = append(words, w)
	}
	// insertion sort; map iteration order must not leak into the output
	for i := 1; i < len(words); i++ {
		for j := i; j > 0 && words[j] < words[j-1]; j-- {
			words[j], words[j-1] = words[j-1], words[j]
		}
	}
	return words
}

// Report renders the frequency table.
func (f *Frequencies) Report(elapsed time.Duration) *report.Report {
	widths := []int{20}
	r := report.New("").Columns(widths, "WORD", "COUNT").Rule(30)
	for _, w := range f.Sorted() {
		r.Columns(widths, w, fmt.Sprint(f.counts[w]))
	}
	return r.Rule(30).
		Columns(widths, "Grand Total", fmt.Sprint(f.total)).
		Rule(30).
		Line("Execution Time: %.4f seconds", elapsed.Seconds())
}
