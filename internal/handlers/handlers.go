// Package handlers implements the HTTP request handlers of the addon API.
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gostremioccc/internal/config"
	"github.com/amaumene/gostremioccc/internal/services"
)

// summaryCachePrefix namespaces show summaries in the shared LRU cache.
const summaryCachePrefix = "summary:"

// Handler handles HTTP requests for the addon.
type Handler struct {
	services *services.Container
	config   *config.Config
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

// RegisterRoutes registers all HTTP routes of the addon.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.handleHome)
	r.GET("/manifest.json", h.handleManifest)

	// Catalog and meta routes, with and without .json suffix on the id
	r.GET("/catalog/:type/:id", h.handleCatalogWrapper)
	r.GET("/meta/:type/:id", h.handleMetaWrapper)
}

func (h *Handler) handleHome(c *gin.Context) {
	c.String(200, "CCC media catalog addon. See /manifest.json")
}

func (h *Handler) handleCatalogWrapper(c *gin.Context) {
	stripJSONExtension(c, "id")
	h.handleCatalog(c)
}

func (h *Handler) handleMetaWrapper(c *gin.Context) {
	stripJSONExtension(c, "id")
	h.handleMeta(c)
}

// stripJSONExtension removes a trailing .json from a path parameter.
func stripJSONExtension(c *gin.Context, param string) {
	value := c.Param(param)
	if strings.HasSuffix(value, ".json") {
		trimmed := strings.TrimSuffix(value, ".json")
		for i, p := range c.Params {
			if p.Key == param {
				c.Params[i].Value = trimmed
			}
		}
	}
}
