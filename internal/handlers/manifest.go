package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/gostremioccc/internal/models"
)

const (
	addonID      = "ccc.media.catalog"
	addonVersion = "0.1.0"
)

func (h *Handler) handleManifest(c *gin.Context) {
	manifest := models.Manifest{
		ID:          addonID,
		Version:     addonVersion,
		Name:        "CCC",
		Description: "Chaos Computer Club conference recordings as a series catalog",
		Types:       []string{"series"},
		Resources:   []string{"catalog", "meta"},
		Catalogs: []models.Catalog{
			{
				Type: "series",
				ID:   "ccc",
				Name: "CCC",
				Extra: []models.ExtraField{
					{Name: "search"},
					{Name: "genre"},
				},
			},
		},
	}

	c.JSON(http.StatusOK, manifest)
}
