package api

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// CacheKeysResponse lists the cache keys of the cache document
type CacheKeysResponse struct {
	Keys []string `json:"keys"`
}

// getCachedKeys handles GET /api/cache/keys requests
func (s *HTTPServerAdapter) getCachedKeys(c *gin.Context) {
	keys, err := s.forecasts.CachedKeys(c.Request.Context(), s.config.CacheDir)
	if err != nil {
		slog.Error("Cache listing error", "error", err)
		s.handleError(c, err)
		return
	}
	sort.Strings(keys)
	c.JSON(http.StatusOK, CacheKeysResponse{Keys: keys})
}

// resetCache handles DELETE /api/cache requests
func (s *HTTPServerAdapter) resetCache(c *gin.Context) {
	if err := s.forecasts.ResetCache(c.Request.Context(), s.config.CacheDir); err != nil {
		slog.Error("Cache reset error", "error", err)
		s.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
