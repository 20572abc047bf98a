package wordfreq

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numkit/internal/input"
)

func lines(t *testing.T, text string) []input.Line {
	t.Helper()
	ls, err := input.Read(strings.NewReader(text))
	require.NoError(t, err)
	return ls
}

func TestCount(t *testing.T) {
	f, err := Count(lines(t, "the cat\n\n  the Dog the\ncat\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, f.Get("the"))
	assert.Equal(t, 2, f.Get("cat"))
	assert.Equal(t, 1, f.Get("Dog"))
	assert.Equal(t, 0, f.Get("dog"))
	assert.Equal(t, 6, f.Total())
	assert.Equal(t, 3, f.Distinct())
}

func TestSortedIsDeterministic(t *testing.T) {
	f, err := Count(lines(t, "pear apple Zebra banana apple éclair"))
	require.NoError(t, err)

	want := []string{"Zebra", "apple", "banana", "pear", "éclair"}
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(want, f.Sorted()); diff != "" {
			t.Fatalf("Sorted mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestCountEmpty(t *testing.T) {
	_, err := Count(lines(t, "\n   \n"))
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestReport(t *testing.T) {
	f, err := Count(lines(t, "b a b"))
	require.NoError(t, err)

	want := strings.Join([]string{
		"WORD                 COUNT",
		strings.Repeat("-", 30),
		"a                    1",
		"b                    2",
		strings.Repeat("-", 30),
		"Grand Total          3",
		strings.Repeat("-", 30),
		"Execution Time: 0.0100 seconds",
	}, "\n")
	assert.Equal(t, want, f.Report(10*time.Millisecond).String())
}
