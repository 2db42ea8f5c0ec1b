package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gostremioccc/internal/errors"
	"github.com/amaumene/gostremioccc/internal/models"
)

// handleMeta serves a detailed show: it looks up the summary retained by an
// earlier catalog request and expands it into the full episode list.
func (h *Handler) handleMeta(c *gin.Context) {
	id := c.Param("id")

	h.services.Logger.Infof("[MetaHandler] fetching detail - type: %s, id: %s", c.Param("type"), id)

	summary := h.lookupSummary(id)
	if summary == nil {
		err := errors.NewShowNotFoundError(id)
		h.services.Logger.Warnf("[MetaHandler] %v", err)
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	detailed, err := h.services.Provider.Detail(c.Request.Context(), id, summary)
	if err != nil {
		h.services.Logger.Errorf("[MetaHandler] detail expansion failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detailed)
}

// lookupSummary resolves a show id through the LRU cache, falling back to
// the database. Database hits are promoted back into the cache.
func (h *Handler) lookupSummary(id string) *models.ShowSummary {
	if cached, found := h.services.Cache.Get(summaryCachePrefix + id); found {
		if summary, ok := cached.(*models.ShowSummary); ok {
			return summary
		}
	}

	summary, err := h.services.DB.GetShowSummary(id)
	if err != nil {
		h.services.Logger.Errorf("[MetaHandler] summary lookup failed for %s: %v", id, err)
		return nil
	}
	if summary == nil {
		return nil
	}

	h.services.Cache.Set(summaryCachePrefix+id, summary)
	return summary
}
