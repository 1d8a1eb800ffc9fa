package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-server/cache"
	"admin-server/repositories"
	"admin-server/usecases"
)

type PromptHandler struct {
	useCase *usecases.PromptUseCase
	catalog *cache.Catalog
}

func NewPromptHandler(useCase *usecases.PromptUseCase, catalog *cache.Catalog) *PromptHandler {
	return &PromptHandler{useCase: useCase, catalog: catalog}
}

// List handles GET /api/prompts
func (h *PromptHandler) List(c *gin.Context) {
	prompts, pagination, err := h.useCase.List(repositories.PromptQuery{
		Page:      queryInt(c, "page", 1),
		Limit:     queryInt(c, "limit", 10),
		Search:    c.Query("search"),
		CreatedBy: c.Query("created_by"),
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       prompts,
		"pagination": pagination,
	})
}

// Get handles GET /api/prompts/:id
func (h *PromptHandler) Get(c *gin.Context) {
	prompt, err := h.useCase.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    prompt,
	})
}

type createPromptRequest struct {
	PromptName   string  `json:"prompt_name" binding:"required"`
	Prompt       string  `json:"prompt" binding:"required"`
	Description  string  `json:"description"`
	CreatedBy    string  `json:"created_by" binding:"required"`
	ChatEngineID *string `json:"chat_engine_id"`
}

// Create handles POST /api/prompts
func (h *PromptHandler) Create(c *gin.Context) {
	var req createPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	prompt, err := h.useCase.Create(usecases.CreatePromptRequest{
		PromptName:   req.PromptName,
		Prompt:       req.Prompt,
		Description:  req.Description,
		CreatedBy:    req.CreatedBy,
		ChatEngineID: req.ChatEngineID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	h.catalog.Invalidate(cacheKeyPrompts)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Prompt created successfully",
		"data":    prompt,
	})
}

type updatePromptRequest struct {
	PromptName   *string `json:"prompt_name"`
	Prompt       *string `json:"prompt"`
	Description  *string `json:"description"`
	CreatedBy    *string `json:"created_by"`
	ChatEngineID *string `json:"chat_engine_id"`
}

// Update handles PUT /api/prompts/:id
func (h *PromptHandler) Update(c *gin.Context) {
	var req updatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	prompt, err := h.useCase.Update(c.Param("id"), usecases.UpdatePromptRequest{
		PromptName:   req.PromptName,
		Prompt:       req.Prompt,
		Description:  req.Description,
		CreatedBy:    req.CreatedBy,
		ChatEngineID: req.ChatEngineID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	h.catalog.Invalidate(cacheKeyPrompts)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Prompt updated successfully",
		"data":    prompt,
	})
}

// Delete handles DELETE /api/prompts/:id
func (h *PromptHandler) Delete(c *gin.Context) {
	if err := h.useCase.Delete(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	h.catalog.Invalidate(cacheKeyPrompts)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Prompt deleted successfully",
	})
}
