package resolver

import (
	"context"
	"io"

	"golang.org/x/time/rate"

	"github.com/diesi/aienum/internal/config"
	"github.com/diesi/aienum/internal/enumdesc"
	"github.com/diesi/aienum/internal/errors"
	"github.com/diesi/aienum/internal/logger"
	"github.com/diesi/aienum/internal/provider"
)

// FromConfig assembles the resolver for cfg: dictionary, ASCII passthrough,
// then mock names or LLM translation, optionally behind an interactive
// prompt. in and out are only used when cfg.Interactive is set.
//
// A missing API key is reported when a label first needs translating, so a
// dictionary that covers every label works without one. Interactive mode
// simply prompts without a suggestion.
func FromConfig(cfg *config.Config, in io.Reader, out io.Writer) (enumdesc.NameFunc, error) {
	var steps []enumdesc.NameFunc
	if cfg.Dictionary != "" {
		dict, err := LoadDictionary(cfg.Dictionary)
		if err != nil {
			return nil, err
		}
		logger.Logger.Debugw("dictionary loaded", "path", cfg.Dictionary, "entries", len(dict))
		steps = append(steps, dict.Lookup)
	}
	steps = append(steps, Passthrough())

	var fallback enumdesc.NameFunc
	if cfg.Mock {
		fallback = Mock()
	} else {
		p, err := provider.New(cfg.Provider, cfg.APIKey)
		switch {
		case errors.Is(err, errors.ErrMissingAPIKey) && cfg.Interactive:
			// The prompt still works, just without suggestions.
		case errors.Is(err, errors.ErrMissingAPIKey):
			missing := errors.WithHintf(err, "set %s, pass --dict, or set %s=1 for offline names",
				config.APIKeyEnv(cfg.Provider), config.EnvAIEnumMock)
			fallback = func(context.Context, string) (string, error) { return "", missing }
		case err != nil:
			return nil, err
		default:
			t := NewTranslator(p, cfg.Model)
			if cfg.MaxRequestsPerMinute > 0 {
				t.Limiter = rate.NewLimiter(rate.Limit(float64(cfg.MaxRequestsPerMinute)/60.0), 1)
			}
			fallback = t.Name
		}
	}

	if cfg.Interactive {
		return Memoize(Interactive(in, out, Chain(append(steps, fallback)...))), nil
	}
	return Memoize(Chain(append(steps, fallback)...)), nil
}
