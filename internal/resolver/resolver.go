// Package resolver provides enumdesc.NameFunc implementations: dictionary
// lookup, LLM translation, interactive prompting and the combinators that
// stack them.
package resolver

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"

	"github.com/stoewer/go-strcase"

	"github.com/diesi/aienum/internal/enumdesc"
)

// Chain tries each resolver in order and returns the first non-empty name.
// Errors stop the chain.
func Chain(fns ...enumdesc.NameFunc) enumdesc.NameFunc {
	return func(ctx context.Context, label string) (string, error) {
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			name, err := fn(ctx, label)
			if err != nil {
				return "", err
			}
			if name != "" {
				return name, nil
			}
		}
		return "", nil
	}
}

// Memoize caches successful results per label, including empty ones.
// It is safe for concurrent use.
func Memoize(fn enumdesc.NameFunc) enumdesc.NameFunc {
	var (
		mu    sync.RWMutex
		cache = make(map[string]string)
	)
	return func(ctx context.Context, label string) (string, error) {
		mu.RLock()
		name, ok := cache[label]
		mu.RUnlock()
		if ok {
			return name, nil
		}

		name, err := fn(ctx, label)
		if err != nil {
			return "", err
		}
		mu.Lock()
		cache[label] = name
		mu.Unlock()
		return name, nil
	}
}

// Passthrough names labels that are already usable words (ASCII letters,
// digits, spaces, '_' and '-', starting with a letter) by snake_casing them,
// and leaves the rest to later resolvers.
func Passthrough() enumdesc.NameFunc {
	return func(_ context.Context, label string) (string, error) {
		if isWordy(label) {
			return strcase.SnakeCase(label), nil
		}
		return "", nil
	}
}

func isWordy(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
		switch {
		case unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-'):
		default:
			return false
		}
	}
	return true
}

// Mock names every label "Item1", "Item2", ... in call order. Wrap it in
// Memoize to keep repeated labels stable.
func Mock() enumdesc.NameFunc {
	var n atomic.Int64
	return func(_ context.Context, label string) (string, error) {
		if strings.TrimSpace(label) == "" {
			return "", nil
		}
		return "Item" + strconv.FormatInt(n.Add(1), 10), nil
	}
}
