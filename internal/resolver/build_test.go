package resolver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diesi/aienum/internal/config"
	"github.com/diesi/aienum/internal/enumdesc"
	"github.com/diesi/aienum/internal/errors"
)

func TestFromConfigDictionaryThenMock(t *testing.T) {
	dict := filepath.Join(t.TempDir(), "colors.toml")
	require.NoError(t, os.WriteFile(dict, []byte("\"红色\" = \"Red\"\n"), 0o644))
	cfg := &config.Config{Provider: "openai", Dictionary: dict, Mock: true}

	fn, err := FromConfig(cfg, nil, nil)
	require.NoError(t, err)

	entries, err := enumdesc.Extract(context.Background(), "1红色，2绿色，3 blue, 4", fn)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Red", entries[0].Identifier)
	assert.Equal(t, "Item1", entries[1].Identifier)
	assert.Equal(t, "Blue", entries[2].Identifier)
}

func TestFromConfigMissingKeyIsLazy(t *testing.T) {
	cfg := &config.Config{Provider: "claude", Model: "m"}
	fn, err := FromConfig(cfg, nil, nil)
	require.NoError(t, err)

	got, err := fn(context.Background(), "red")
	require.NoError(t, err)
	assert.Equal(t, "red", got)

	_, err = fn(context.Background(), "红色")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingAPIKey))
	assert.Contains(t, errors.FlattenHints(err), config.EnvClaudeAPIKey)
}

func TestFromConfigInteractiveWithoutKey(t *testing.T) {
	t.Setenv(config.EnvAIEnumNonInteractive, "")
	cfg := &config.Config{Provider: "openai", Interactive: true}
	var out bytes.Buffer
	fn, err := FromConfig(cfg, strings.NewReader("Red\n"), &out)
	require.NoError(t, err)

	got, err := fn(context.Background(), "红色")
	require.NoError(t, err)
	assert.Equal(t, "Red", got)
}

func TestFromConfigBadDictionary(t *testing.T) {
	cfg := &config.Config{Provider: "openai", Mock: true, Dictionary: filepath.Join(t.TempDir(), "nope.yaml")}
	_, err := FromConfig(cfg, nil, nil)
	assert.Error(t, err)
}
