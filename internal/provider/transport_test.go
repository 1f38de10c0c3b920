package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diesi/aienum/internal/errors"
	"github.com/diesi/aienum/internal/openai"
)

func TestPostJSONSendsHeadersAndBody(t *testing.T) {
	var got *http.Request
	var body []byte
	client := fakeClient(func(r *http.Request) (*http.Response, error) {
		got = r
		body, _ = io.ReadAll(r.Body)
		return respond(200, `ok`)
	})
	h := http.Header{}
	h.Set("x-api-key", "k")

	out, err := postJSON(context.Background(), client, "claude", "http://example.com/messages", h, map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, "ok", string(out))
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "k", got.Header.Get("x-api-key"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"a":"b"}`, string(body))
}

func TestPostJSONNon2xx(t *testing.T) {
	client := fakeClient(func(*http.Request) (*http.Response, error) { return respond(429, "slow down") })

	_, err := postJSON(context.Background(), client, "gemini", "http://example.com", nil, struct{}{})
	require.Error(t, err)
	assert.Equal(t, "gemini http 429: slow down", err.Error())
	var he *httpError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, 429, he.status)
}

func TestSplitSystemAndBudget(t *testing.T) {
	system, rest := splitSystem([]openai.Message{
		{Role: "system", Content: "a"},
		{Role: "user", Content: "红色"},
		{Role: "system", Content: "b"},
	})
	assert.Equal(t, "a", system)
	assert.Equal(t, []openai.Message{{Role: "user", Content: "红色"}, {Role: "system", Content: "b"}}, rest)

	assert.Equal(t, 256, outputBudget(openai.ChatCompletionRequest{}, 256))
	assert.Equal(t, 32, outputBudget(openai.ChatCompletionRequest{MaxTokens: 32, MaxCompletionTokens: 64}, 256))
	assert.Equal(t, 64, outputBudget(openai.ChatCompletionRequest{MaxCompletionTokens: 64}, 256))
}

func TestCustomRetriesWithoutRejectedParameters(t *testing.T) {
	p := NewCustom("secret")
	var bodies []map[string]any
	p.HTTPClient = fakeClient(func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		var m map[string]any
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &m)
		bodies = append(bodies, m)
		switch len(bodies) {
		case 1:
			return respond(400, `{"error":{"message":"Unsupported parameter: 'max_tokens'"}}`)
		case 2:
			return respond(400, `{"error":{"message":"Unsupported value: 'temperature'"}}`)
		}
		return respond(200, `{"choices":[{"message":{"content":"red"}}]}`)
	})
	temp := float32(0.1)
	req := labelRequest("m", "红色")
	req.MaxTokens = 32
	req.Temperature = &temp

	resp, err := p.Chat(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"red"}, resp.Choices)
	require.Len(t, bodies, 3)
	assert.Contains(t, bodies[0], "max_tokens")
	assert.NotContains(t, bodies[1], "max_tokens")
	assert.Contains(t, bodies[1], "temperature")
	assert.NotContains(t, bodies[2], "temperature")
}
