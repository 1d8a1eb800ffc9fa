package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"admin-server/entities"
)

const (
	defaultOpenAIURL    = "https://api.openai.com/v1/chat/completions"
	defaultAnthropicURL = "https://api.anthropic.com/v1/messages"
	defaultGeminiURL    = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

	openAIModel    = "gpt-4o-mini"
	anthropicModel = "claude-sonnet-4-20250514"

	maxCompletionTokens = 2048
	completionTemp      = 0.7
)

// ProviderClient performs one synchronous HTTP call per chat request against
// the configured upstream AI API. No retries, no streaming; upstream errors
// are passed through to the caller.
type ProviderClient struct {
	client *http.Client

	// Endpoint defaults, overridable per engine via chat_apiUrl and in tests.
	OpenAIURL    string
	AnthropicURL string
	GeminiURL    string
}

func NewProviderClient() *ProviderClient {
	return &ProviderClient{
		client:       &http.Client{Timeout: 60 * time.Second},
		OpenAIURL:    defaultOpenAIURL,
		AnthropicURL: defaultAnthropicURL,
		GeminiURL:    defaultGeminiURL,
	}
}

// Call dispatches to the engine's provider and returns the assistant text.
func (p *ProviderClient) Call(engine *entities.ChatEngine, provider entities.Provider, systemMessage, question string) (string, error) {
	switch provider {
	case entities.ProviderOpenAI:
		return p.callOpenAI(p.endpoint(engine, p.OpenAIURL), engine.APIKey, systemMessage, question)
	case entities.ProviderAnthropic:
		return p.callAnthropic(p.endpoint(engine, p.AnthropicURL), engine.APIKey, systemMessage, question)
	case entities.ProviderGemini:
		return p.callGemini(p.endpoint(engine, p.GeminiURL), engine.APIKey, systemMessage, question)
	default:
		return "", fmt.Errorf("unknown provider: %s", provider)
	}
}

func (p *ProviderClient) endpoint(engine *entities.ChatEngine, fallback string) string {
	if engine.ChatAPIURL != "" {
		return engine.ChatAPIURL
	}
	return fallback
}

type upstreamErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// upstreamError extracts the provider's error message from a non-2xx body,
// falling back to the status code.
func upstreamError(provider string, status int, body []byte) error {
	var parsed upstreamErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return fmt.Errorf("%s", parsed.Error.Message)
	}
	return fmt.Errorf("%s API error: %d", provider, status)
}

func (p *ProviderClient) post(url string, headers map[string]string, payload any) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := p.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, err
	}
	return res.StatusCode, data, nil
}

func (p *ProviderClient) callOpenAI(url, apiKey, systemMessage, question string) (string, error) {
	payload := map[string]any{
		"model": openAIModel,
		"messages": []map[string]string{
			{"role": "system", "content": systemMessage},
			{"role": "user", "content": question},
		},
		"max_tokens":  maxCompletionTokens,
		"temperature": completionTemp,
	}
	headers := map[string]string{"Authorization": "Bearer " + apiKey}

	status, body, err := p.post(url, headers, payload)
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", upstreamError("OpenAI", status, body)
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return parsed.Choices[0].Message.Content, nil
}

func (p *ProviderClient) callAnthropic(url, apiKey, systemMessage, question string) (string, error) {
	payload := map[string]any{
		"model":      anthropicModel,
		"max_tokens": maxCompletionTokens,
		"system":     systemMessage,
		"messages": []map[string]string{
			{"role": "user", "content": question},
		},
	}
	headers := map[string]string{
		"x-api-key":         apiKey,
		"anthropic-version": "2023-06-01",
	}

	status, body, err := p.post(url, headers, payload)
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", upstreamError("Anthropic", status, body)
	}

	var parsed struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Content) == 0 {
		return "", nil
	}
	return parsed.Content[0].Text, nil
}

func (p *ProviderClient) callGemini(endpoint, apiKey, systemMessage, question string) (string, error) {
	payload := map[string]any{
		"system_instruction": map[string]any{
			"parts": []map[string]string{{"text": systemMessage}},
		},
		"contents": []map[string]any{
			{
				"role":  "user",
				"parts": []map[string]string{{"text": question}},
			},
		},
		"generationConfig": map[string]any{
			"maxOutputTokens": maxCompletionTokens,
			"temperature":     completionTemp,
		},
	}

	// Gemini authenticates via query parameter, not header. The endpoint
	// may already carry a query string when chat_apiUrl overrides it.
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid Gemini endpoint: %w", err)
	}
	q := u.Query()
	q.Set("key", apiKey)
	u.RawQuery = q.Encode()

	status, body, err := p.post(u.String(), nil, payload)
	if err != nil {
		return "", err
	}
	if status < 200 || status > 299 {
		return "", upstreamError("Gemini", status, body)
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
