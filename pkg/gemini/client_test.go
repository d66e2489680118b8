package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/draftkit/pkg/gemini"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	t.Run("missing API key", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.New(gemini.Config{})
		require.Error(t, err)
		assert.ErrorIs(t, err, gemini.ErrAPIKeyRequired)
	})

	t.Run("defaults applied", func(t *testing.T) {
		t.Parallel()

		client, err := gemini.New(gemini.Config{APIKey: "test-key"})
		require.NoError(t, err)
		assert.Equal(t, gemini.DefaultModel, client.Model())
	})
}

func TestGenerate_Success(t *testing.T) {
	t.Parallel()

	var gotPath, gotKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"parts": []map[string]any{
							{"text": "Subject: Hello\nMessage:\nWorld"},
						},
					},
					"finishReason": "STOP",
				},
			},
		})
	}))
	defer srv.Close()

	client, err := gemini.New(gemini.Config{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		BaseURL: srv.URL,
	})
	require.NoError(t, err)

	text, err := client.Generate(context.Background(), gemini.GenerateParams{
		Prompt:      "write an email",
		MaxTokens:   300,
		Temperature: 0.2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Subject: Hello\nMessage:\nWorld", text)

	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	// Generation parameters are passed through unmodified.
	genCfg, ok := gotBody["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 0.2, genCfg["temperature"], 1e-9)
	assert.InDelta(t, 300, genCfg["maxOutputTokens"], 1e-9)
}

func TestGenerate_ModelOverride(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer srv.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), gemini.GenerateParams{
		Prompt: "p",
		Model:  "gemini-2.5-pro",
	})
	require.NoError(t, err)
	assert.Equal(t, "/v1beta/models/gemini-2.5-pro:generateContent", gotPath)
}

func TestGenerate_ExtractionFallbacks(t *testing.T) {
	t.Parallel()

	t.Run("multiple parts concatenated", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Subject: Hi"},{"text":"\nMessage:\nthere"}]}}]}`))
		}))
		defer srv.Close()

		client, err := gemini.New(gemini.Config{APIKey: "k", BaseURL: srv.URL})
		require.NoError(t, err)

		text, err := client.Generate(context.Background(), gemini.GenerateParams{Prompt: "p"})
		require.NoError(t, err)
		assert.Equal(t, "Subject: Hi\nMessage:\nthere", text)
	})

	t.Run("candidate without parts falls back to candidate JSON", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[{"finishReason":"SAFETY"}]}`))
		}))
		defer srv.Close()

		client, err := gemini.New(gemini.Config{APIKey: "k", BaseURL: srv.URL})
		require.NoError(t, err)

		text, err := client.Generate(context.Background(), gemini.GenerateParams{Prompt: "p"})
		require.NoError(t, err)
		assert.Contains(t, text, "SAFETY")
	})

	t.Run("no candidates falls back to raw body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"promptFeedback":{"blockReason":"OTHER"}}`))
		}))
		defer srv.Close()

		client, err := gemini.New(gemini.Config{APIKey: "k", BaseURL: srv.URL})
		require.NoError(t, err)

		text, err := client.Generate(context.Background(), gemini.GenerateParams{Prompt: "p"})
		require.NoError(t, err)
		assert.Contains(t, text, "blockReason")
	})

	t.Run("empty body reports generation failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 200 with an empty body: nothing for any strategy to extract.
		}))
		defer srv.Close()

		client, err := gemini.New(gemini.Config{APIKey: "k", BaseURL: srv.URL})
		require.NoError(t, err)

		_, err = client.Generate(context.Background(), gemini.GenerateParams{Prompt: "p"})
		require.Error(t, err)
		assert.ErrorIs(t, err, gemini.ErrGenerationFailed)
	})
}

func TestGenerate_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	client, err := gemini.New(gemini.Config{APIKey: "bad-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), gemini.GenerateParams{Prompt: "p"})
	require.Error(t, err)
	assert.ErrorIs(t, err, gemini.ErrGenerationFailed)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGenerate_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client, err := gemini.New(gemini.Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), gemini.GenerateParams{Prompt: "p"})
	require.Error(t, err)
	assert.ErrorIs(t, err, gemini.ErrGenerationFailed)
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	t.Parallel()

	client, err := gemini.New(gemini.Config{APIKey: "k"})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), gemini.GenerateParams{Prompt: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, gemini.ErrEmptyPrompt)
}
