package arraysum

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSum(t *testing.T) {
	got, err := Sum(context.Background(), []int{1, 2, 3, 4, 5}, []int{10, 20, 30, 40, 50}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 22, 33, 44, 55}, got)
}

func TestSumIndependentOfChunking(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a, err := Random(rng, 1000)
	require.NoError(t, err)
	b, err := Random(rng, 1000)
	require.NoError(t, err)

	want, err := Sum(context.Background(), a, b, len(a), 1)
	require.NoError(t, err)

	for _, chunk := range []int{1, 3, 64, 999, 5000} {
		for _, limit := range []int{0, 1, 4} {
			got, err := Sum(context.Background(), a, b, chunk, limit)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("chunk=%d limit=%d mismatch (-want +got):\n%s", chunk, limit, diff)
			}
		}
	}
}

func TestSumErrors(t *testing.T) {
	_, err := Sum(context.Background(), []int{1}, []int{1, 2}, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Sum(context.Background(), []int{1}, []int{1}, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Sum(ctx, []int{1, 2}, []int{1, 2}, 1, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSumEmpty(t *testing.T) {
	got, err := Sum(context.Background(), nil, nil, 4, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRandom(t *testing.T) {
	values, err := Random(rand.New(rand.NewSource(9)), 500)
	require.NoError(t, err)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 100)
	}

	again, _ := Random(rand.New(rand.NewSource(9)), 500)
	assert.Equal(t, values, again)

	_, err = Random(rand.New(rand.NewSource(9)), 0)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestReport(t *testing.T) {
	r := Report([]int{1, 2, 3}, []int{4, 5, 6}, []int{5, 7, 9}, 2)
	assert.Equal(t, "First 2 elements of the arrays:\nArray 1: 1 2\nArray 2: 4 5\nResult:  5 7", r.String())

	r = Report([]int{1}, []int{2}, []int{3}, 10)
	assert.Contains(t, r.String(), "First 1 elements")
}
