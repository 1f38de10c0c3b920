package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diesi/aienum/internal/errors"
	"github.com/diesi/aienum/internal/openai"
)

// httpError is a non-2xx reply from a vendor API.
type httpError struct {
	vendor string
	status int
	body   string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("%s http %d: %s", e.vendor, e.status, e.body)
}

// send performs req and returns the fully read body. The body is always closed.
func send(client *http.Client, req *http.Request) ([]byte, int, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "request failed")
	}
	body, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return nil, 0, errors.Wrap(readErr, "read response body")
	}
	if closeErr != nil {
		return nil, 0, errors.Wrap(closeErr, "close response body")
	}
	return body, resp.StatusCode, nil
}

// postJSON marshals payload, posts it to endpoint and returns the reply body.
// A non-2xx status comes back as *httpError.
func postJSON(ctx context.Context, client *http.Client, vendor, endpoint string, header http.Header, payload any) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrap(err, "new request")
	}
	for k, vs := range header {
		req.Header[k] = vs
	}
	req.Header.Set("Content-Type", "application/json")
	body, status, err := send(client, req)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &httpError{vendor: vendor, status: status, body: string(body)}
	}
	return body, nil
}

// splitSystem separates the first system message from the conversation,
// for APIs that take the instruction as a separate field.
func splitSystem(msgs []openai.Message) (string, []openai.Message) {
	var system string
	rest := make([]openai.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == "system" && system == "" {
			system = m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}

// outputBudget is the token cap requested by req, or def when unset.
func outputBudget(req openai.ChatCompletionRequest, def int) int {
	switch {
	case req.MaxTokens > 0:
		return req.MaxTokens
	case req.MaxCompletionTokens > 0:
		return req.MaxCompletionTokens
	}
	return def
}
