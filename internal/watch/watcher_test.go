package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcherRerunsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n"), 0644))

	runs := make(chan struct{}, 8)
	w, err := New(path, 50*time.Millisecond, func(ctx context.Context) error {
		runs <- struct{}{}
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(other, []byte("ignored\n"), 0644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("1\n2\n"), 0644))
	}

	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not rerun after write")
	}

	w.Stop()
	stats := w.Stats()
	assert.GreaterOrEqual(t, stats.Runs, 1)
	assert.GreaterOrEqual(t, stats.Events, 1)
	// three quick writes settle into one run
	assert.Less(t, stats.Runs, 3)
}

func TestWatcherCountsRunErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	done := make(chan struct{}, 1)
	w, err := New(path, 10*time.Millisecond, func(ctx context.Context) error {
		done <- struct{}{}
		return errors.New("boom")
	})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not rerun after write")
	}

	require.Eventually(t, func() bool { return w.Stats().Errors == 1 }, 2*time.Second, 10*time.Millisecond)
	w.Stop()
}

func TestWatcherStopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "data.txt")
	w, err := New(path, 10*time.Millisecond, func(ctx context.Context) error { return nil })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	select {
	case <-w.doneCh:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit on cancel")
	}
	w.Stop()
}

func TestStopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := New(filepath.Join(t.TempDir(), "x"), time.Millisecond, nil)
	require.NoError(t, err)
	w.Stop()
}
