package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/diesi/aienum/internal/errors"
	"github.com/diesi/aienum/internal/logger"
	"github.com/diesi/aienum/internal/openai"
)

const (
	geminiMaxOutput = 2048
	geminiAttempts  = 3
)

// Gemini talks to Google's generateContent API.
type Gemini struct {
	APIKey     string
	HTTPClient *http.Client
	BaseURL    string
}

// NewGemini returns a Gemini provider for apiKey.
func NewGemini(apiKey string) *Gemini {
	return &Gemini{
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		BaseURL:    "https://generativelanguage.googleapis.com/v1beta",
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiConfig struct {
	MaxOutputTokens  int      `json:"maxOutputTokens"`
	ResponseMimeType string   `json:"responseMimeType"`
	Temperature      *float32 `json:"temperature,omitempty"`
	CandidateCount   int      `json:"candidateCount,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiConfig    `json:"generationConfig"`
}

type geminiReply struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// choices returns the candidate texts and whether every one came back empty
// because the output budget ran out.
func (r geminiReply) choices() ([]string, bool) {
	out := make([]string, 0, len(r.Candidates))
	empty, cut := true, false
	for _, c := range r.Candidates {
		var b strings.Builder
		for _, p := range c.Content.Parts {
			b.WriteString(p.Text)
		}
		if strings.TrimSpace(b.String()) != "" {
			empty = false
		}
		if strings.EqualFold(c.FinishReason, "MAX_TOKENS") {
			cut = true
		}
		out = append(out, b.String())
	}
	return out, empty && cut
}

func geminiRole(role string) string {
	if role == "assistant" {
		return "model"
	}
	return role
}

// Chat sends req to generateContent. Replies truncated to nothing are retried
// with a doubled output budget, up to geminiMaxOutput.
func (g *Gemini) Chat(ctx context.Context, req openai.ChatCompletionRequest) (*CompletionResponse, error) {
	system, msgs := splitSystem(req.Messages)
	payload := geminiRequest{
		GenerationConfig: geminiConfig{
			MaxOutputTokens:  outputBudget(req, 256),
			ResponseMimeType: "text/plain",
			Temperature:      req.Temperature,
			CandidateCount:   req.N,
		},
	}
	if system != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: system}}}
	}
	for _, m := range msgs {
		payload.Contents = append(payload.Contents, geminiContent{Role: geminiRole(m.Role), Parts: []geminiPart{{Text: m.Content}}})
	}
	endpoint := g.BaseURL + "/models/" + req.Model + ":generateContent?key=" + url.QueryEscape(g.APIKey)

	for attempt := 1; ; attempt++ {
		logger.Logger.Debugw("gemini request", "model", req.Model, "attempt", attempt, "max_output_tokens", payload.GenerationConfig.MaxOutputTokens)
		body, err := postJSON(ctx, g.HTTPClient, "gemini", endpoint, nil, payload)
		if err != nil {
			return nil, err
		}
		var reply geminiReply
		if err := json.Unmarshal(body, &reply); err != nil {
			return nil, errors.Wrap(err, "unmarshal response")
		}
		if reply.Error.Message != "" {
			return nil, errors.Newf("gemini error: %s", reply.Error.Message)
		}
		choices, truncated := reply.choices()
		if !truncated || attempt == geminiAttempts || payload.GenerationConfig.MaxOutputTokens >= geminiMaxOutput {
			return &CompletionResponse{Choices: choices, Raw: string(body)}, nil
		}
		payload.GenerationConfig.MaxOutputTokens = min(payload.GenerationConfig.MaxOutputTokens*2, geminiMaxOutput)
	}
}
