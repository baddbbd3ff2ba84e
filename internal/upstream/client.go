// Package upstream is the client for the external chat-completions API.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	vault_errors "prompt-vault/pkg/errors"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"

	// Fixed generation parameters: bounded output length, moderate
	// randomness.
	maxTokens   = 800
	temperature = 0.7
)

type Client struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

func NewClient(baseURL, apiKey, model string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Model:      model,
		HTTPClient: &http.Client{Timeout: 90 * time.Second},
	}
}

// Completion is the shaped result of one single-turn exchange. Raw is the
// unmodified upstream payload.
type Completion struct {
	Text string
	Raw  json.RawMessage
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionReq struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// completionResp covers both response shapes the API may return: a
// structured message field or a plain text field.
type completionResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		Text string `json:"text"`
	} `json:"choices"`
}

// Complete sends a single-turn completion request and extracts the
// generated text from the first choice, preferring the structured message
// field over the plain text field.
func (c *Client) Complete(ctx context.Context, prompt string) (Completion, error) {
	if c.HTTPClient == nil {
		return Completion{}, errors.New("upstream: http client is nil")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return Completion{}, vault_errors.ErrMisconfigured
	}
	model := strings.TrimSpace(c.Model)
	if model == "" {
		return Completion{}, errors.New("upstream: model is required")
	}

	body, err := json.Marshal(completionReq{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return Completion{}, err
	}

	url := fmt.Sprintf("%s/chat/completions", strings.TrimRight(c.BaseURL, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Completion{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Completion{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 32*1024))
		return Completion{}, &vault_errors.UpstreamError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(detail)),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Completion{}, err
	}

	var decoded completionResp
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Completion{}, err
	}

	text := ""
	if len(decoded.Choices) > 0 {
		if decoded.Choices[0].Message.Content != "" {
			text = decoded.Choices[0].Message.Content
		} else {
			text = decoded.Choices[0].Text
		}
	}

	return Completion{Text: text, Raw: raw}, nil
}
