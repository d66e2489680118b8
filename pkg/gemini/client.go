package gemini

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
)

const (
	// DefaultModel balances quality and latency for short email drafts.
	DefaultModel = "gemini-2.5-flash"

	// Google Generative Language API endpoint.
	defaultBaseURL = "https://generativelanguage.googleapis.com"

	// Default timeout for generation requests.
	defaultTimeout = 60 * time.Second
)

// Config configures the Gemini client.
type Config struct {
	// APIKey is required for authentication with the Generative Language API.
	APIKey string `env:"GEMINI_API_KEY,required"`

	// Model is the default model used when a request does not override it.
	Model string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// BaseURL overrides the API endpoint. Intended for tests.
	BaseURL string

	// HTTPClient allows custom HTTP client configuration.
	// Default: http.Client with 60s timeout.
	HTTPClient *http.Client
}

// Client is a synchronous text-generation client for the Gemini REST API.
// It performs exactly one remote call per Generate invocation and never
// retries; failures surface to the caller unmodified.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// New creates a Gemini client from the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   model,
		baseURL: baseURL,
		client:  client,
	}, nil
}

// MustNew creates a Gemini client that panics on invalid config.
// Follows the fail-fast pattern for credentials that are required
// before the application can do anything useful.
func MustNew(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// GenerateParams describes a single generation request. Temperature and
// MaxTokens are passed through to the API unmodified.
type GenerateParams struct {
	Prompt      string
	Model       string // optional, defaults to the client's configured model
	MaxTokens   int
	Temperature float64
}

// Wire types for the generateContent endpoint.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends the prompt to the model and returns the extracted text.
// The call blocks until the service responds or the context is cancelled.
// Any transport or API failure is reported as ErrGenerationFailed, as is a
// response from which no text can be extracted.
func (c *Client) Generate(ctx context.Context, params GenerateParams) (string, error) {
	if strings.TrimSpace(params.Prompt) == "" {
		return "", ErrEmptyPrompt
	}

	model := params.Model
	if model == "" {
		model = c.model
	}

	requestBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: params.Prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     params.Temperature,
			MaxOutputTokens: params.MaxTokens,
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Join(ErrGenerationFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Join(ErrGenerationFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp apiErrorResponse
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error.Message != "" {
			return "", fmt.Errorf("%w: %s (%s)", ErrGenerationFailed, errorResp.Error.Message, errorResp.Error.Status)
		}
		return "", fmt.Errorf("%w: status %d: %s", ErrGenerationFailed, resp.StatusCode, string(body))
	}

	// A body that does not decode still goes through the extraction chain,
	// which can fall back to the raw body string.
	var response generateResponse
	_ = json.Unmarshal(body, &response)

	text := extractText(response, body)
	if text == "" {
		return "", fmt.Errorf("%w: response contained no text", ErrGenerationFailed)
	}

	return text, nil
}

// Model returns the client's default model.
func (c *Client) Model() string {
	return c.model
}
