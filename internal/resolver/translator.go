package resolver

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/time/rate"

	"github.com/diesi/aienum/internal/cli"
	"github.com/diesi/aienum/internal/enumdesc"
	"github.com/diesi/aienum/internal/errors"
	"github.com/diesi/aienum/internal/logger"
	"github.com/diesi/aienum/internal/openai"
	"github.com/diesi/aienum/internal/provider"
)

const (
	translatorRules = "Reply with the identifier only: no numbering, quotes, punctuation, code or explanation. " +
		"If the label cannot be named, reply with an empty message."
	chinesePrompt = "You name enum members. " +
		"The user's label is Chinese; translate it into a short English identifier of one to three words in lowerCamelCase. " +
		translatorRules
	genericPrompt = "You name enum members. " +
		"The user's label may be in any language; give a short English identifier of one to three words in lowerCamelCase that describes it. " +
		translatorRules
)

// systemPrompt picks the instruction for label.
func systemPrompt(label string) string {
	if enumdesc.IsChinese(label) {
		return chinesePrompt
	}
	return genericPrompt
}

// Translator asks an LLM provider for an English name per label.
type Translator struct {
	Provider provider.Provider
	Model    string
	// Limiter, when set, paces provider calls.
	Limiter *rate.Limiter
}

// NewTranslator returns a Translator using model on p.
func NewTranslator(p provider.Provider, model string) *Translator {
	return &Translator{Provider: p, Model: model}
}

// Name implements enumdesc.NameFunc.
func (t *Translator) Name(ctx context.Context, label string) (string, error) {
	temp := float32(0.1)
	req := openai.ChatCompletionRequest{
		Model: t.Model,
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt(label)},
			{Role: "user", Content: label},
		},
		MaxTokens:   32,
		N:           1,
		Temperature: &temp,
	}
	if t.Limiter != nil {
		if err := t.Limiter.Wait(ctx); err != nil {
			return "", errors.Wrap(err, "wait for rate limiter")
		}
	}
	logger.Logger.Debugw("translate label", "label", label, "model", t.Model)
	resp, err := t.Provider.Chat(ctx, req)
	if err != nil {
		return "", errors.Wrap(err, "translate")
	}
	if len(resp.Choices) == 0 {
		logger.Logger.Debugw("no choices returned", "label", label, "raw", resp.Raw)
		return "", nil
	}
	name := cleanAnswer(resp.Choices[0])
	logger.Logger.Debugw("translated label", "label", label, "name", name)
	return name, nil
}

// cleanAnswer keeps the first line of a model reply, strips list markers
// and quotes, drops punctuation and joins separate words with '_'.
func cleanAnswer(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = cli.StripLeadingListMarker(s)
	s = strings.Trim(s, "\"'`“”‘’ ")
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return r
		case unicode.IsSpace(r), r == '_', r == '-':
			return ' '
		}
		return -1
	}, s)
	return strings.Join(strings.Fields(s), "_")
}
