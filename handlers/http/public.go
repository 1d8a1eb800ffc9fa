package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-server/cache"
	"admin-server/usecases"
)

const (
	cacheKeyTopics  = "public:topics"
	cacheKeyPrompts = "public:prompts"
	cacheKeyEngines = "public:chat-engines"
)

// PublicHandler serves the unauthenticated surface used by the client app.
// Catalog listings are cached in-process for a short TTL.
type PublicHandler struct {
	topics  *usecases.TopicUseCase
	prompts *usecases.PromptUseCase
	engines *usecases.ChatEngineUseCase
	chat    *usecases.ChatUseCase
	catalog *cache.Catalog
}

func NewPublicHandler(topics *usecases.TopicUseCase, prompts *usecases.PromptUseCase, engines *usecases.ChatEngineUseCase, chat *usecases.ChatUseCase, catalog *cache.Catalog) *PublicHandler {
	return &PublicHandler{
		topics:  topics,
		prompts: prompts,
		engines: engines,
		chat:    chat,
		catalog: catalog,
	}
}

type publicTopic struct {
	ID          string `json:"id"`
	TopicName   string `json:"topic_name"`
	TopicLabel  string `json:"topic_label"`
	Description string `json:"description"`
}

// ListTopics handles GET /api/public/topics — active topics only.
func (h *PublicHandler) ListTopics(c *gin.Context) {
	if cached, ok := h.catalog.Get(cacheKeyTopics); ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cached})
		return
	}

	topics, err := h.topics.ListPublic()
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]publicTopic, 0, len(topics))
	for _, t := range topics {
		data = append(data, publicTopic{
			ID:          t.ID,
			TopicName:   t.TopicName,
			TopicLabel:  t.TopicLabel,
			Description: t.Description,
		})
	}

	h.catalog.Set(cacheKeyTopics, data)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

type publicPrompt struct {
	ID          string `json:"id"`
	PromptName  string `json:"prompt_name"`
	Description string `json:"description"`
}

// ListPrompts handles GET /api/public/prompts — prompt text stays private.
func (h *PublicHandler) ListPrompts(c *gin.Context) {
	if cached, ok := h.catalog.Get(cacheKeyPrompts); ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cached})
		return
	}

	prompts, err := h.prompts.ListPublic()
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]publicPrompt, 0, len(prompts))
	for _, p := range prompts {
		data = append(data, publicPrompt{
			ID:          p.ID,
			PromptName:  p.PromptName,
			Description: p.Description,
		})
	}

	h.catalog.Set(cacheKeyPrompts, data)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

type publicChatEngine struct {
	ID          string `json:"id"`
	EngineName  string `json:"engine_name"`
	Description string `json:"description"`
}

// ListChatEngines handles GET /api/public/chat-engines — active engines only,
// credentials never leave the server.
func (h *PublicHandler) ListChatEngines(c *gin.Context) {
	if cached, ok := h.catalog.Get(cacheKeyEngines); ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cached})
		return
	}

	engines, err := h.engines.ListPublic()
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]publicChatEngine, 0, len(engines))
	for _, e := range engines {
		data = append(data, publicChatEngine{
			ID:          e.ID,
			EngineName:  e.EngineName,
			Description: e.Description,
		})
	}

	h.catalog.Set(cacheKeyEngines, data)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

type chatPromptRequest struct {
	TopicID      string `json:"topic_id"`
	PromptID     string `json:"prompt_id"`
	ChatEngineID string `json:"chat_engine_id" binding:"required"`
	Question     string `json:"question" binding:"required"`
}

// SubmitChatPrompt handles POST /api/public/chat-prompt — assembles the
// system message and proxies the question to the engine's AI provider.
func (h *PublicHandler) SubmitChatPrompt(c *gin.Context) {
	var req chatPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "chat_engine_id and question are required")
		return
	}

	result, err := h.chat.Submit(usecases.ChatPromptRequest{
		TopicID:      req.TopicID,
		PromptID:     req.PromptID,
		ChatEngineID: req.ChatEngineID,
		Question:     req.Question,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}
