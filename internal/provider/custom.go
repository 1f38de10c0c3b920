package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/diesi/aienum/internal/config"
	"github.com/diesi/aienum/internal/errors"
	"github.com/diesi/aienum/internal/logger"
	"github.com/diesi/aienum/internal/openai"
)

// Custom implements the Provider interface using a configurable OpenAI-compatible server
// (LM Studio, Ollama, vLLM). Endpoint paths can be overridden via env vars.
type Custom struct {
	APIKey              string
	HTTPClient          *http.Client
	BaseURL             string
	ChatCompletionsPath string
	ModelsPath          string

	mu    sync.Mutex
	model string // first listed model, cached once "auto" is resolved
}

// envOr returns v if non-empty, otherwise def.
func envOr(v, def string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

// NewCustom creates a new Custom provider using environment configuration.
// If apiKey is empty, no Authorization header is sent.
func NewCustom(apiKey string) *Custom {
	base := envOr(config.Get(config.EnvCustomBaseURL), "http://127.0.0.1:1234")
	return &Custom{
		APIKey:              apiKey,
		HTTPClient:          &http.Client{Timeout: 60 * time.Second},
		BaseURL:             strings.TrimRight(base, "/"),
		ChatCompletionsPath: envOr(config.Get(config.EnvCustomChatCompletionsPath), "/v1/chat/completions"),
		ModelsPath:          envOr(config.Get(config.EnvCustomModelsPath), "/v1/models"),
	}
}

func (c *Custom) endpoint(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path
}

func (c *Custom) header() http.Header {
	h := http.Header{}
	if c.APIKey != "" {
		h.Set("Authorization", "Bearer "+c.APIKey)
	}
	return h
}

// ensureModel populates req.Model by querying the models endpoint when needed.
func (c *Custom) ensureModel(ctx context.Context, req *openai.ChatCompletionRequest) error {
	m := strings.TrimSpace(req.Model)
	if m != "" && strings.ToLower(m) != "auto" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.model != "" {
		req.Model = c.model
		return nil
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(c.ModelsPath), nil)
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	httpReq.Header = c.header()
	body, status, err := send(c.HTTPClient, httpReq)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return errors.Newf("custom models http %d: %s", status, string(body))
	}
	// Try OpenAI-compatible shape: { data: [ { id: "..." }, ... ] }
	var models struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &models); err == nil && len(models.Data) > 0 && strings.TrimSpace(models.Data[0].ID) != "" {
		c.model = models.Data[0].ID
		req.Model = c.model
		return nil
	}
	// Fallback: try simple array [ { "id": "..." } ]
	var arr []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &arr); err == nil && len(arr) > 0 && strings.TrimSpace(arr[0].ID) != "" {
		c.model = arr[0].ID
		req.Model = c.model
		return nil
	}
	return errors.New("could not determine model from /models response")
}

// Chat sends a chat completion request to the custom server and maps the response.
func (c *Custom) Chat(ctx context.Context, req openai.ChatCompletionRequest) (*CompletionResponse, error) {
	if err := c.ensureModel(ctx, &req); err != nil {
		return nil, err
	}
	for attempt := 1; ; attempt++ {
		logger.Logger.Debugw("custom request", "model", req.Model, "attempt", attempt)
		respBody, err := postJSON(ctx, c.HTTPClient, "custom", c.endpoint(c.ChatCompletionsPath), c.header(), req)
		var he *httpError
		if errors.As(err, &he) && attempt < 3 && relaxRequest(&req, he.body) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var completion openai.ChatCompletionResponse
		if err := json.Unmarshal(respBody, &completion); err != nil {
			return nil, errors.Wrap(err, "unmarshal response")
		}
		completion.Raw = string(respBody)
		if completion.Error.Message != "" {
			return nil, errors.Newf("custom error: %s", completion.Error.Message)
		}
		// Reasoning models may put <think> in one choice and the answer in another.
		joined := make([]string, 0, len(completion.Choices))
		for _, ch := range completion.Choices {
			joined = append(joined, ch.Message.Content)
		}
		if s := stripReasoning(strings.Join(joined, "\n")); s != "" {
			return &CompletionResponse{Choices: []string{s}, Raw: completion.Raw}, nil
		}
		return &CompletionResponse{Raw: completion.Raw}, nil
	}
}

// relaxRequest drops a parameter the server rejected, reporting whether a
// retry makes sense.
func relaxRequest(req *openai.ChatCompletionRequest, reply string) bool {
	switch {
	case strings.Contains(reply, "Unsupported parameter: 'max_tokens'") && req.MaxTokens > 0:
		req.MaxCompletionTokens = req.MaxTokens
		req.MaxTokens = 0
		return true
	case strings.Contains(reply, "Unsupported value: 'temperature'") && req.Temperature != nil:
		req.Temperature = nil
		return true
	}
	return false
}

var (
	thinkBalancedRe = regexp.MustCompile(`(?is)<think\b[^>]*>.*?</think>`)
	thinkTagOnlyRe  = regexp.MustCompile(`(?is)</?think\b[^>]*>`)
)

func stripReasoning(s string) string {
	s = thinkBalancedRe.ReplaceAllString(s, "")
	s = thinkTagOnlyRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
