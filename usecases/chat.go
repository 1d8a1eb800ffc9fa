package usecases

import (
	"strings"

	"admin-server/entities"
	"admin-server/repositories"
)

const defaultSystemMessage = "You are a helpful assistant."

// ProviderCaller performs the outbound AI API call for a resolved engine.
type ProviderCaller interface {
	Call(engine *entities.ChatEngine, provider entities.Provider, systemMessage, question string) (string, error)
}

type ChatUseCase struct {
	engines  repositories.ChatEngineRepository
	topics   repositories.TopicRepository
	prompts  repositories.PromptRepository
	provider ProviderCaller
}

func NewChatUseCase(engines repositories.ChatEngineRepository, topics repositories.TopicRepository, prompts repositories.PromptRepository, provider ProviderCaller) *ChatUseCase {
	return &ChatUseCase{engines: engines, topics: topics, prompts: prompts, provider: provider}
}

type ChatPromptRequest struct {
	TopicID      string
	PromptID     string
	ChatEngineID string
	Question     string
}

type ChatTopicRef struct {
	TopicName  string `json:"topic_name"`
	TopicLabel string `json:"topic_label"`
}

type ChatPromptRef struct {
	PromptName string `json:"prompt_name"`
}

type ChatPromptResult struct {
	Response string         `json:"response"`
	Engine   string         `json:"engine"`
	Topic    *ChatTopicRef  `json:"topic"`
	Prompt   *ChatPromptRef `json:"prompt"`
}

// Submit resolves the engine, assembles the system message from the topic and
// prompt context, and forwards the question to the engine's provider.
func (uc *ChatUseCase) Submit(req ChatPromptRequest) (*ChatPromptResult, error) {
	if req.ChatEngineID == "" {
		return nil, invalid("chat engine is required")
	}
	if req.Question == "" {
		return nil, invalid("question is required")
	}

	engine, err := uc.engines.GetByID(req.ChatEngineID)
	if err != nil {
		return nil, notFound("chat engine")
	}
	if !engine.Active {
		return nil, invalid("chat engine is not active")
	}

	// Topic and prompt are both optional; bad ids resolve to nothing rather
	// than failing the request.
	var topic *entities.Topic
	if req.TopicID != "" {
		topic, _ = uc.topics.GetByID(req.TopicID)
	}

	// Prefer the topic's linked prompt, fall back to the explicit prompt_id.
	var prompt *entities.Prompt
	if topic != nil && topic.Prompt != nil {
		prompt = topic.Prompt
	} else if req.PromptID != "" {
		prompt, _ = uc.prompts.GetByID(req.PromptID)
	}

	systemMessage := buildSystemMessage(topic, prompt)

	provider := engine.Provider
	if provider == "" {
		// engines predating the stored discriminant: infer from the name
		resolved, ok := entities.ResolveProvider(engine.EngineName)
		if !ok {
			return nil, invalidf("unsupported chat engine: %s; %s", engine.EngineName, supportedProvidersHint)
		}
		provider = resolved
	}

	answer, err := uc.provider.Call(engine, provider, systemMessage, req.Question)
	if err != nil {
		return nil, err
	}

	result := &ChatPromptResult{
		Response: answer,
		Engine:   engine.EngineName,
	}
	if topic != nil {
		result.Topic = &ChatTopicRef{TopicName: topic.TopicName, TopicLabel: topic.TopicLabel}
	}
	if prompt != nil {
		result.Prompt = &ChatPromptRef{PromptName: prompt.PromptName}
	}
	return result, nil
}

// buildSystemMessage joins the prompt text and topic context with blank
// lines, defaulting to a generic assistant instruction.
func buildSystemMessage(topic *entities.Topic, prompt *entities.Prompt) string {
	var parts []string

	if prompt != nil {
		parts = append(parts, prompt.Prompt)
	}
	if topic != nil {
		label := topic.TopicLabel
		if label == "" {
			label = topic.TopicName
		}
		parts = append(parts, "Topic: "+label)
		if topic.Description != "" {
			parts = append(parts, "Topic context: "+topic.Description)
		}
	}

	if len(parts) == 0 {
		return defaultSystemMessage
	}
	return strings.Join(parts, "\n\n")
}
