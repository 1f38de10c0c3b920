package resolver

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diesi/aienum/internal/config"
	"github.com/diesi/aienum/internal/errors"
)

func TestInteractiveAnswers(t *testing.T) {
	t.Setenv(config.EnvAIEnumNonInteractive, "")
	in := strings.NewReader("\nCrimson\n-\n")
	var out bytes.Buffer
	suggest := func(_ context.Context, label string) (string, error) { return "Suggested", nil }
	fn := Interactive(in, &out, suggest)
	ctx := context.Background()

	got, err := fn(ctx, "红色")
	require.NoError(t, err)
	assert.Equal(t, "Suggested", got)

	got, err = fn(ctx, "深红")
	require.NoError(t, err)
	assert.Equal(t, "Crimson", got)

	got, err = fn(ctx, "跳过")
	require.NoError(t, err)
	assert.Empty(t, got)

	// Input exhausted: defaults are kept.
	got, err = fn(ctx, "绿色")
	require.NoError(t, err)
	assert.Equal(t, "Suggested", got)

	assert.Contains(t, out.String(), "红色 [default: Suggested]: ")
}

func TestInteractiveWithoutSuggestion(t *testing.T) {
	t.Setenv(config.EnvAIEnumNonInteractive, "")
	var out bytes.Buffer
	fn := Interactive(strings.NewReader("Red\n"), &out, nil)
	got, err := fn(context.Background(), "红色")
	require.NoError(t, err)
	assert.Equal(t, "Red", got)
	assert.Equal(t, "红色: ", out.String())
}

func TestInteractiveNonInteractiveEnv(t *testing.T) {
	t.Setenv(config.EnvAIEnumNonInteractive, "1")
	var out bytes.Buffer
	fn := Interactive(strings.NewReader("ignored\n"), &out, func(context.Context, string) (string, error) { return "Red", nil })
	got, err := fn(context.Background(), "红色")
	require.NoError(t, err)
	assert.Equal(t, "Red", got)
	assert.Empty(t, out.String())
}

func TestInteractiveSuggestionError(t *testing.T) {
	boom := errors.New("offline")
	fn := Interactive(strings.NewReader(""), &bytes.Buffer{}, func(context.Context, string) (string, error) { return "", boom })
	_, err := fn(context.Background(), "红色")
	assert.ErrorIs(t, err, boom)
}
