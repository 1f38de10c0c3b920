package resolver

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diesi/aienum/internal/enumdesc"
	"github.com/diesi/aienum/internal/errors"
)

func constant(name string, calls *int) enumdesc.NameFunc {
	return func(context.Context, string) (string, error) {
		*calls++
		return name, nil
	}
}

func TestChainFirstNonEmptyWins(t *testing.T) {
	var a, b, c int
	fn := Chain(constant("", &a), nil, constant("Red", &b), constant("Blue", &c))
	got, err := fn(context.Background(), "红色")
	require.NoError(t, err)
	assert.Equal(t, "Red", got)
	assert.Equal(t, []int{1, 1, 0}, []int{a, b, c})
}

func TestChainStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var later int
	fn := Chain(func(context.Context, string) (string, error) { return "", boom }, constant("Red", &later))
	_, err := fn(context.Background(), "红色")
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, later)
}

func TestChainEmpty(t *testing.T) {
	got, err := Chain()(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoizeCachesResultsNotErrors(t *testing.T) {
	calls := 0
	fail := true
	fn := Memoize(func(_ context.Context, label string) (string, error) {
		calls++
		if fail {
			return "", errors.New("transient")
		}
		return label + "!", nil
	})
	ctx := context.Background()

	_, err := fn(ctx, "a")
	require.Error(t, err)
	fail = false
	for range 3 {
		got, err := fn(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "a!", got)
	}
	assert.Equal(t, 2, calls)
}

func TestMemoizeConcurrent(t *testing.T) {
	fn := Memoize(func(_ context.Context, label string) (string, error) { return label, nil })
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			label := []string{"a", "b", "c"}[i%3]
			got, err := fn(context.Background(), label)
			assert.NoError(t, err)
			assert.Equal(t, label, got)
		}()
	}
	wg.Wait()
}

func TestPassthrough(t *testing.T) {
	cases := map[string]string{
		"red":        "red",
		"light red":  "light_red",
		"Dark Blue":  "dark_blue",
		"dark_blue2": "dark_blue2",
		"lightRed":   "light_red",
		"红色":         "",
		"red色":       "",
		"2nd":        "",
		"a.b":        "",
		"":           "",
	}
	fn := Passthrough()
	for in, want := range cases {
		got, err := fn(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestMockNumbersInCallOrder(t *testing.T) {
	fn := Mock()
	ctx := context.Background()
	first, _ := fn(ctx, "红色")
	second, _ := fn(ctx, "绿色")
	blank, _ := fn(ctx, "  ")
	assert.Equal(t, "Item1", first)
	assert.Equal(t, "Item2", second)
	assert.Empty(t, blank)
}

func TestMockWithExtract(t *testing.T) {
	entries, err := enumdesc.Extract(context.Background(), "1红色，2绿色，3蓝色", Memoize(Mock()))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Item1", entries[0].Identifier)
	assert.Equal(t, "Item2", entries[1].Identifier)
}
