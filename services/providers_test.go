package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admin-server/entities"
)

func testEngine(apiKey string) *entities.ChatEngine {
	return &entities.ChatEngine{
		ID:         "engine-1",
		EngineName: "Test Engine",
		APIKey:     apiKey,
		Active:     true,
	}
}

func TestCallOpenAI(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"openai says hi"}}]}`))
	}))
	defer srv.Close()

	client := NewProviderClient()
	client.OpenAIURL = srv.URL

	answer, err := client.Call(testEngine("sk-test"), entities.ProviderOpenAI, "be helpful", "hello?")
	require.NoError(t, err)
	assert.Equal(t, "openai says hi", answer)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotPayload["model"])

	messages, ok := gotPayload["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	system := messages[0].(map[string]any)
	assert.Equal(t, "system", system["role"])
	assert.Equal(t, "be helpful", system["content"])
}

func TestCallAnthropic(t *testing.T) {
	var gotKey, gotVersion string
	var gotPayload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"text":"claude says hi"}]}`))
	}))
	defer srv.Close()

	client := NewProviderClient()
	client.AnthropicURL = srv.URL

	answer, err := client.Call(testEngine("ak-test"), entities.ProviderAnthropic, "be helpful", "hello?")
	require.NoError(t, err)
	assert.Equal(t, "claude says hi", answer)
	assert.Equal(t, "ak-test", gotKey)
	assert.Equal(t, "2023-06-01", gotVersion)
	assert.Equal(t, "be helpful", gotPayload["system"])
}

func TestCallGemini(t *testing.T) {
	var gotKey string
	var gotPayload map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"gemini says hi"}]}}]}`))
	}))
	defer srv.Close()

	client := NewProviderClient()
	client.GeminiURL = srv.URL

	answer, err := client.Call(testEngine("gk-test"), entities.ProviderGemini, "be helpful", "hello?")
	require.NoError(t, err)
	assert.Equal(t, "gemini says hi", answer)
	assert.Equal(t, "gk-test", gotKey)

	instruction, ok := gotPayload["system_instruction"].(map[string]any)
	require.True(t, ok)
	parts := instruction["parts"].([]any)
	require.Len(t, parts, 1)
	assert.Equal(t, "be helpful", parts[0].(map[string]any)["text"])
}

func TestCallGeminiEndpointWithQuery(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer srv.Close()

	// Override URL already carrying a query string; the key must be merged
	// in, not concatenated with a second "?".
	engine := testEngine("gk-test")
	engine.ChatAPIURL = srv.URL + "/v1beta/models/gemini-2.0-flash:generateContent?alt=json"

	client := NewProviderClient()

	answer, err := client.Call(engine, entities.ProviderGemini, "sys", "q")
	require.NoError(t, err)
	assert.Equal(t, "ok", answer)
	assert.Equal(t, "gk-test", gotQuery.Get("key"))
	assert.Equal(t, "json", gotQuery.Get("alt"))
}

func TestUpstreamErrors(t *testing.T) {
	t.Run("passes through provider error message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
		}))
		defer srv.Close()

		client := NewProviderClient()
		client.OpenAIURL = srv.URL

		_, err := client.Call(testEngine("bad"), entities.ProviderOpenAI, "sys", "q")
		require.Error(t, err)
		assert.Equal(t, "Incorrect API key provided", err.Error())
	})

	t.Run("falls back to status code", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream blew up"))
		}))
		defer srv.Close()

		client := NewProviderClient()
		client.AnthropicURL = srv.URL

		_, err := client.Call(testEngine("k"), entities.ProviderAnthropic, "sys", "q")
		require.Error(t, err)
		assert.Equal(t, "Anthropic API error: 502", err.Error())
	})

	t.Run("unknown provider", func(t *testing.T) {
		client := NewProviderClient()
		_, err := client.Call(testEngine("k"), "mistral", "sys", "q")
		require.Error(t, err)
	})
}

func TestEngineURLOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"from custom endpoint"}}]}`))
	}))
	defer srv.Close()

	engine := testEngine("k")
	engine.ChatAPIURL = srv.URL

	client := NewProviderClient()
	client.OpenAIURL = "http://127.0.0.1:1/unreachable"

	answer, err := client.Call(engine, entities.ProviderOpenAI, "sys", "q")
	require.NoError(t, err)
	assert.Equal(t, "from custom endpoint", answer)
}
