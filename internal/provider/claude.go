package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/diesi/aienum/internal/errors"
	"github.com/diesi/aienum/internal/logger"
	"github.com/diesi/aienum/internal/openai"
)

const claudeAPIVersion = "2023-06-01"

// Claude talks to Anthropic's Messages API.
type Claude struct {
	APIKey     string
	HTTPClient *http.Client
	BaseURL    string
}

// NewClaude returns a Claude provider for apiKey.
func NewClaude(apiKey string) *Claude {
	return &Claude{
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		BaseURL:    "https://api.anthropic.com/v1",
	}
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeRequest struct {
	Model       string          `json:"model"`
	System      string          `json:"system,omitempty"`
	Messages    []claudeMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature *float32        `json:"temperature,omitempty"`
}

type claudeReply struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (r claudeReply) text() string {
	var b strings.Builder
	for _, c := range r.Content {
		if c.Type == "text" {
			b.WriteString(c.Text)
		}
	}
	return b.String()
}

// Chat issues one Messages call per requested choice; the API has no n parameter.
func (c *Claude) Chat(ctx context.Context, req openai.ChatCompletionRequest) (*CompletionResponse, error) {
	system, msgs := splitSystem(req.Messages)
	payload := claudeRequest{
		Model:       req.Model,
		System:      system,
		MaxTokens:   outputBudget(req, 256),
		Temperature: req.Temperature,
	}
	for _, m := range msgs {
		payload.Messages = append(payload.Messages, claudeMessage{Role: m.Role, Content: m.Content})
	}
	header := http.Header{}
	header.Set("x-api-key", c.APIKey)
	header.Set("anthropic-version", claudeAPIVersion)

	count := max(req.N, 1)
	out := &CompletionResponse{Choices: make([]string, 0, count)}
	raw := make([]string, 0, count)
	for i := range count {
		logger.Logger.Debugw("claude request", "model", req.Model, "choice", i+1, "of", count)
		body, err := postJSON(ctx, c.HTTPClient, "claude", c.BaseURL+"/messages", header, payload)
		if err != nil {
			return nil, err
		}
		var reply claudeReply
		if err := json.Unmarshal(body, &reply); err != nil {
			return nil, errors.Wrap(err, "unmarshal response")
		}
		if reply.Error.Message != "" {
			return nil, errors.Newf("claude error: %s", reply.Error.Message)
		}
		out.Choices = append(out.Choices, reply.text())
		raw = append(raw, string(body))
	}
	out.Raw = strings.Join(raw, "\n")
	return out, nil
}
