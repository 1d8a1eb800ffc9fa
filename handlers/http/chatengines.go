package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-server/cache"
	"admin-server/entities"
	"admin-server/repositories"
	"admin-server/usecases"
)

type ChatEngineHandler struct {
	useCase *usecases.ChatEngineUseCase
	catalog *cache.Catalog
}

func NewChatEngineHandler(useCase *usecases.ChatEngineUseCase, catalog *cache.Catalog) *ChatEngineHandler {
	return &ChatEngineHandler{useCase: useCase, catalog: catalog}
}

// List handles GET /api/chat-engines
func (h *ChatEngineHandler) List(c *gin.Context) {
	engines, pagination, err := h.useCase.List(repositories.ChatEngineQuery{
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
		Search: c.Query("search"),
		Active: queryBool(c, "active"),
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       engines,
		"pagination": pagination,
	})
}

// Get handles GET /api/chat-engines/:id
func (h *ChatEngineHandler) Get(c *gin.Context) {
	engine, err := h.useCase.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    engine,
	})
}

type createChatEngineRequest struct {
	EngineName  string `json:"engine_name" binding:"required"`
	Description string `json:"description"`
	Provider    string `json:"provider"`
	APIKey      string `json:"api_key" binding:"required"`
	ChatAPIURL  string `json:"chat_apiUrl"`
	Active      *bool  `json:"active"`
}

// Create handles POST /api/chat-engines
func (h *ChatEngineHandler) Create(c *gin.Context) {
	var req createChatEngineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	engine, err := h.useCase.Create(usecases.CreateChatEngineRequest{
		EngineName:  req.EngineName,
		Description: req.Description,
		Provider:    entities.Provider(req.Provider),
		APIKey:      req.APIKey,
		ChatAPIURL:  req.ChatAPIURL,
		Active:      req.Active,
	})
	if err != nil {
		fail(c, err)
		return
	}
	h.catalog.Invalidate(cacheKeyEngines)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Chat engine created successfully",
		"data":    engine,
	})
}

type updateChatEngineRequest struct {
	EngineName  *string `json:"engine_name"`
	Description *string `json:"description"`
	Provider    *string `json:"provider"`
	APIKey      *string `json:"api_key"`
	ChatAPIURL  *string `json:"chat_apiUrl"`
	Active      *bool   `json:"active"`
}

// Update handles PUT /api/chat-engines/:id
func (h *ChatEngineHandler) Update(c *gin.Context) {
	var req updateChatEngineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var provider *entities.Provider
	if req.Provider != nil {
		p := entities.Provider(*req.Provider)
		provider = &p
	}

	engine, err := h.useCase.Update(c.Param("id"), usecases.UpdateChatEngineRequest{
		EngineName:  req.EngineName,
		Description: req.Description,
		Provider:    provider,
		APIKey:      req.APIKey,
		ChatAPIURL:  req.ChatAPIURL,
		Active:      req.Active,
	})
	if err != nil {
		fail(c, err)
		return
	}
	h.catalog.Invalidate(cacheKeyEngines)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Chat engine updated successfully",
		"data":    engine,
	})
}

// Delete handles DELETE /api/chat-engines/:id
func (h *ChatEngineHandler) Delete(c *gin.Context) {
	if err := h.useCase.Delete(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	h.catalog.Invalidate(cacheKeyEngines)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Chat engine deleted successfully",
	})
}

// ToggleStatus handles PATCH /api/chat-engines/:id/status
func (h *ChatEngineHandler) ToggleStatus(c *gin.Context) {
	engine, err := h.useCase.ToggleStatus(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	h.catalog.Invalidate(cacheKeyEngines)

	message := "Chat engine deactivated successfully"
	if engine.Active {
		message = "Chat engine activated successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    engine,
	})
}
