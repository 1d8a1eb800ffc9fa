package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"admin-server/cache"
)

type CacheHandler struct {
	catalog *cache.Catalog
}

func NewCacheHandler(catalog *cache.Catalog) *CacheHandler {
	return &CacheHandler{
		catalog: catalog,
	}
}

// GetCacheStats GET /api/cache/stats
func (h *CacheHandler) GetCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   h.catalog.Stats(),
	})
}

// FlushCache POST /api/cache/flush
func (h *CacheHandler) FlushCache(c *gin.Context) {
	h.catalog.Flush()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cache flushed",
	})
}
