package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/smartbundle/assistant/internal/infrastructure/config"
	apperrors "github.com/smartbundle/assistant/pkg/errors"
)

func testConfig(baseURL string) config.AIConfig {
	return config.AIConfig{
		OpenAIKey:   "test-key",
		BaseURL:     baseURL,
		Model:       "gpt-4o-mini",
		MaxTokens:   800,
		Temperature: 0.7,
	}
}

func completionBody(content string) string {
	resp := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
		"usage": map[string]int{"prompt_tokens": 100, "completion_tokens": 50, "total_tokens": 150},
	}
	body, _ := json.Marshal(resp)
	return string(body)
}

func TestNewClient(t *testing.T) {
	t.Run("MissingAPIKey_ReturnsConfigurationError", func(t *testing.T) {
		_, err := NewClient(config.AIConfig{}, zap.NewNop())

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeConfiguration))
	})

	t.Run("WithAPIKey_Succeeds", func(t *testing.T) {
		client, err := NewClient(testConfig(""), zap.NewNop())

		require.NoError(t, err)
		assert.Equal(t, "https://api.openai.com/v1", client.baseURL)
	})
}

func TestComplete(t *testing.T) {
	t.Run("SuccessfulCall_ReturnsContentVerbatim", func(t *testing.T) {
		var gotReq chatCompletionRequest
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(completionBody("Buy store brands.")))
		}))
		defer server.Close()

		client, err := NewClient(testConfig(server.URL), zap.NewNop())
		require.NoError(t, err)

		answer, err := client.Complete(context.Background(), "system instruction", "user question")

		require.NoError(t, err)
		assert.Equal(t, "Buy store brands.", answer)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, "gpt-4o-mini", gotReq.Model)
		assert.Equal(t, 0.7, gotReq.Temperature)
		assert.Equal(t, 800, gotReq.MaxTokens)
		require.Len(t, gotReq.Messages, 2)
		assert.Equal(t, "system", gotReq.Messages[0].Role)
		assert.Equal(t, "system instruction", gotReq.Messages[0].Content)
		assert.Equal(t, "user", gotReq.Messages[1].Role)
		assert.Equal(t, "user question", gotReq.Messages[1].Content)
	})

	t.Run("UpstreamError_ReturnsCompletionError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limited"}}`))
		}))
		defer server.Close()

		client, err := NewClient(testConfig(server.URL), zap.NewNop())
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), "system", "user")

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeCompletion))
	})

	t.Run("EmptyChoices_ReturnsCompletionError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		client, err := NewClient(testConfig(server.URL), zap.NewNop())
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), "system", "user")

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeCompletion))
	})

	t.Run("EmptyContent_ReturnsCompletionError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionBody("")))
		}))
		defer server.Close()

		client, err := NewClient(testConfig(server.URL), zap.NewNop())
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), "system", "user")

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeCompletion))
	})

	t.Run("CancelledContext_ReturnsCompletionError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionBody("unused")))
		}))
		defer server.Close()

		client, err := NewClient(testConfig(server.URL), zap.NewNop())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = client.Complete(ctx, "system", "user")

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeCompletion))
	})
}
