package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greeshma-prabhu/marketing-tool/model"
	"github.com/greeshma-prabhu/marketing-tool/template"
)

type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// List returns the built-in template catalog with slot contracts
func (h *TemplateHandler) List(c *gin.Context) {
	templates := template.All()

	result := make([]gin.H, len(templates))
	for i, tpl := range templates {
		result[i] = gin.H{
			"id":            tpl.ID(),
			"name":          tpl.Name(),
			"description":   tpl.Description(),
			"format":        tpl.Format(),
			"slot_limits":   tpl.SlotLimits(),
			"preview_color": tpl.PreviewColor(),
		}
	}

	c.JSON(http.StatusOK, gin.H{"templates": result})
}

type PreviewRequest struct {
	TemplateID  string           `json:"template_id"`
	ProductName string           `json:"product_name"`
	Copy        *model.CopySlots `json:"copy"`
}

// Preview renders a template as HTML, with sample copy when none is given
func (h *TemplateHandler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	tpl := template.Get(req.TemplateID)
	slots := req.Copy
	if slots == nil {
		slots = template.SampleCopy()
	}
	productName := req.ProductName
	if productName == "" {
		productName = "Sample Product"
	}

	document, err := tpl.Render(slots, productName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render preview: " + err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(document))
}
