package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gostremioccc/internal/catalog"
	"github.com/amaumene/gostremioccc/internal/errors"
	"github.com/amaumene/gostremioccc/internal/models"
)

// handleCatalog serves a catalog page: it runs the fetch pipeline against
// the upstream conference list and retains every summary for later detail
// requests.
func (h *Handler) handleCatalog(c *gin.Context) {
	filters := catalog.Filters{
		Keywords: c.Query("search"),
		Order:    c.Query("order"),
		Sorter:   c.Query("sorter"),
	}
	if genre := c.Query("genre"); genre != "" {
		filters.Genres = []string{genre}
	}

	h.services.Logger.Infof("[CatalogHandler] processing catalog request - type: %s, id: %s", c.Param("type"), c.Param("id"))

	page, err := h.services.Provider.Fetch(c.Request.Context(), filters)
	if err != nil {
		h.services.Logger.Errorf("[CatalogHandler] fetch failed: %v", err)
		if errors.IsType(err, errors.ErrorTypeNoData) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "upstream returned no data"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	h.retainSummaries(page)

	h.services.Logger.Infof("[CatalogHandler] returning %d shows", len(page.Results))

	c.JSON(http.StatusOK, page)
}

// retainSummaries stores fetched summaries in the cache and database so a
// later meta request can expand them. Store failures are logged, not fatal:
// the catalog response is still valid without the handoff.
func (h *Handler) retainSummaries(page *models.ResultPage) {
	for _, summary := range page.Results {
		h.services.Cache.Set(summaryCachePrefix+summary.ID, summary)

		if err := h.services.DB.StoreShowSummary(summary); err != nil {
			h.services.Logger.Errorf("[CatalogHandler] failed to store summary %s: %v", summary.ID, err)
		}
	}
}
