package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-server/repositories"
)

type SystemInfoHandler struct {
	repo repositories.SystemInfoRepository
}

func NewSystemInfoHandler(repo repositories.SystemInfoRepository) *SystemInfoHandler {
	return &SystemInfoHandler{repo: repo}
}

// Get handles GET /api/system-info
func (h *SystemInfoHandler) Get(c *gin.Context) {
	info, err := h.repo.Get()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "System info not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    info,
	})
}
