package httpHandler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"admin-server/usecases"
)

// fail maps usecase errors onto the response envelope: validation and
// business-rule violations are 400, credential failures 401, missing rows 404,
// anything else (including upstream provider errors) 500.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case usecases.IsValidation(err):
		status = http.StatusBadRequest
	case usecases.IsUnauthorized(err):
		status = http.StatusUnauthorized
	case errors.Is(err, usecases.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{
		"success": false,
		"message": err.Error(),
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
	})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// queryBool parses an optional boolean filter; nil means "not filtered".
func queryBool(c *gin.Context, key string) *bool {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v := raw == "true"
	return &v
}
