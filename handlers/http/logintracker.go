package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-server/usecases"
)

type LoginTrackerHandler struct {
	useCase *usecases.LoginTrackerUseCase
}

func NewLoginTrackerHandler(useCase *usecases.LoginTrackerUseCase) *LoginTrackerHandler {
	return &LoginTrackerHandler{useCase: useCase}
}

// List handles GET /api/login-tracker
func (h *LoginTrackerHandler) List(c *gin.Context) {
	entries, err := h.useCase.List()
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(entries),
		"data":    entries,
	})
}
