package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-server/cache"
	"admin-server/repositories"
	"admin-server/usecases"
)

type TopicHandler struct {
	useCase *usecases.TopicUseCase
	catalog *cache.Catalog
}

func NewTopicHandler(useCase *usecases.TopicUseCase, catalog *cache.Catalog) *TopicHandler {
	return &TopicHandler{useCase: useCase, catalog: catalog}
}

// List handles GET /api/topics
func (h *TopicHandler) List(c *gin.Context) {
	topics, pagination, err := h.useCase.List(repositories.TopicQuery{
		Page:      queryInt(c, "page", 1),
		Limit:     queryInt(c, "limit", 10),
		Search:    c.Query("search"),
		CreatedBy: c.Query("created_by"),
		Active:    queryBool(c, "active"),
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       topics,
		"pagination": pagination,
	})
}

// Get handles GET /api/topics/:id
func (h *TopicHandler) Get(c *gin.Context) {
	topic, err := h.useCase.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    topic,
	})
}

type createTopicRequest struct {
	TopicName   string  `json:"topic_name" binding:"required"`
	TopicLabel  string  `json:"topic_label" binding:"required"`
	Description string  `json:"description"`
	CreatedBy   string  `json:"created_by" binding:"required"`
	PromptID    *string `json:"prompt_id"`
}

// Create handles POST /api/topics
func (h *TopicHandler) Create(c *gin.Context) {
	var req createTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	topic, err := h.useCase.Create(usecases.CreateTopicRequest{
		TopicName:   req.TopicName,
		TopicLabel:  req.TopicLabel,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
		PromptID:    req.PromptID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	h.catalog.Invalidate(cacheKeyTopics)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Topic created successfully",
		"data":    topic,
	})
}

type updateTopicRequest struct {
	TopicName   *string `json:"topic_name"`
	TopicLabel  *string `json:"topic_label"`
	Description *string `json:"description"`
	CreatedBy   *string `json:"created_by"`
	PromptID    *string `json:"prompt_id"`
}

// Update handles PUT /api/topics/:id
func (h *TopicHandler) Update(c *gin.Context) {
	var req updateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	topic, err := h.useCase.Update(c.Param("id"), usecases.UpdateTopicRequest{
		TopicName:   req.TopicName,
		TopicLabel:  req.TopicLabel,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
		PromptID:    req.PromptID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	h.catalog.Invalidate(cacheKeyTopics)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Topic updated successfully",
		"data":    topic,
	})
}

// Delete handles DELETE /api/topics/:id
func (h *TopicHandler) Delete(c *gin.Context) {
	if err := h.useCase.Delete(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	h.catalog.Invalidate(cacheKeyTopics)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Topic deleted successfully",
	})
}

// ToggleStatus handles PATCH /api/topics/:id/status
func (h *TopicHandler) ToggleStatus(c *gin.Context) {
	topic, err := h.useCase.ToggleStatus(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	h.catalog.Invalidate(cacheKeyTopics)

	message := "Topic deactivated successfully"
	if topic.Active {
		message = "Topic activated successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    topic,
	})
}
