// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file implements LLMClient over the official openai-go SDK (chat
// completions). Any OpenAI-compatible endpoint works by pointing BaseURL
// at it.
package generator

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ClientConfig holds configuration for the OpenAI-backed client.
type ClientConfig struct {
	// APIKey authenticates against the provider. Required.
	APIKey string

	// Model is the chat model to use (default: "gpt-4o-mini").
	Model string

	// BaseURL overrides the provider endpoint (default: OpenAI).
	BaseURL string

	// Temperature controls output creativity (default: 0.7).
	Temperature float64

	// MaxTokens caps each completion (default: 1200).
	MaxTokens int

	// Timeout for each request (default: 60s).
	Timeout time.Duration
}

// DefaultClientConfig returns the default client configuration.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Model:       "gpt-4o-mini",
		Temperature: 0.7,
		MaxTokens:   1200,
		Timeout:     60 * time.Second,
	}
}

// OpenAIClient implements LLMClient using the official openai-go SDK.
//
// The client holds no per-request state and is safe for concurrent use,
// though quill only ever has one request in flight.
type OpenAIClient struct {
	config *ClientConfig
	opts   []option.RequestOption
}

// NewOpenAIClient creates a client from config, filling defaults for any
// zero values. The API key is kept inside the SDK options and never
// exposed through logs or accessors.
func NewOpenAIClient(config *ClientConfig) *OpenAIClient {
	if config == nil {
		config = DefaultClientConfig()
	}
	if config.Model == "" {
		config.Model = "gpt-4o-mini"
	}
	if config.Temperature == 0 {
		config.Temperature = 0.7
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = 1200
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	opts := []option.RequestOption{option.WithAPIKey(config.APIKey)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &OpenAIClient{config: config, opts: opts}
}

// IsConfigured reports whether an API key is present.
func (c *OpenAIClient) IsConfigured() bool {
	return strings.TrimSpace(c.config.APIKey) != ""
}

// Model returns the configured model name.
func (c *OpenAIClient) Model() string {
	return c.config.Model
}

// Complete sends one chat completion request and returns the text of the
// first choice. Errors come back as *ClientError so callers can branch on
// kind without string matching.
func (c *OpenAIClient) Complete(ctx context.Context, prompt Prompt) (string, error) {
	if !c.IsConfigured() {
		return "", ErrNoAPIKey
	}
	if strings.TrimSpace(prompt.User) == "" {
		return "", ErrEmptyPrompt
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	client := openai.NewClient(c.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.config.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		Temperature: openai.Float(c.config.Temperature),
		MaxTokens:   openai.Int(int64(c.config.MaxTokens)),
	})
	if err != nil {
		return "", classifyError(err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// classifyError maps SDK and transport failures onto the client error
// taxonomy. 401/403 become auth errors, other HTTP statuses become
// service errors, timeouts and connection failures become network errors.
func classifyError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &ClientError{Type: ErrTypeAuth, Message: "authentication failed", Cause: err}
		default:
			return &ClientError{Type: ErrTypeService, Message: "provider request failed", Cause: err}
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &ClientError{Type: ErrTypeNetwork, Message: "request timed out", Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		// Cancellation is normal control flow (user superseded the
		// request); pass it through untyped so the UI can drop it.
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return &ClientError{Type: ErrTypeNetwork, Message: "request timed out", Cause: err}
		}
		return &ClientError{Type: ErrTypeNetwork, Message: "network failure", Cause: err}
	}

	return &ClientError{Type: ErrTypeNetwork, Message: "request failed", Cause: err}
}
