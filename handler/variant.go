package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greeshma-prabhu/marketing-tool/service"
)

type VariantHandler struct {
	generator *service.VariantGenerator
}

func NewVariantHandler(generator *service.VariantGenerator) *VariantHandler {
	return &VariantHandler{generator: generator}
}

type VariantRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Features       []string `json:"features"`
	TargetAudience string   `json:"target_audience" binding:"omitempty,oneof=B2B B2C BOTH"`
	Language       string   `json:"language"`
}

// Generate returns three tonal variants for a product brief. Always succeeds:
// backend failures degrade to deterministic fallback copy per tone.
func (h *VariantHandler) Generate(c *gin.Context) {
	var req VariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	audience := req.TargetAudience
	if audience == "" {
		audience = "BOTH"
	}
	language := req.Language
	if language == "" {
		language = "en"
	}

	variants := h.generator.Generate(c.Request.Context(), req.Name, req.Description, audience, language, req.Features)

	c.JSON(http.StatusOK, gin.H{
		"product":  req.Name,
		"variants": variants,
	})
}
