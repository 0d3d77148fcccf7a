package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greeshma-prabhu/marketing-tool/service"
)

type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type CatalogRequest struct {
	Category string `json:"category"`
	Limit    int    `json:"limit"`
}

// Search queries the external template catalog. Upstream failures yield an
// empty list rather than an error.
func (h *CatalogHandler) Search(c *gin.Context) {
	var req CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	templates := h.catalog.FetchTemplates(c.Request.Context(), req.Category, req.Limit)
	if templates == nil {
		templates = []service.CatalogTemplate{}
	}

	c.JSON(http.StatusOK, gin.H{
		"templates": templates,
		"count":     len(templates),
	})
}
