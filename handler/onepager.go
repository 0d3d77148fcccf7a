package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/greeshma-prabhu/marketing-tool/middleware"
	"github.com/greeshma-prabhu/marketing-tool/model"
	"github.com/greeshma-prabhu/marketing-tool/service"
	"github.com/greeshma-prabhu/marketing-tool/template"
)

type OnepagerHandler struct {
	copywriter *service.Copywriter
	qcEngine   *service.QCEngine
	storage    *service.StorageService
	store      *service.OnepagerStore
}

// NewOnepagerHandler wires the generation pipeline. storage may be nil, in
// which case documents are served from the in-memory store only.
func NewOnepagerHandler(copywriter *service.Copywriter, qcEngine *service.QCEngine, storage *service.StorageService) *OnepagerHandler {
	return &OnepagerHandler{
		copywriter: copywriter,
		qcEngine:   qcEngine,
		storage:    storage,
		store:      service.GetOnepagerStore(),
	}
}

type GenerateRequest struct {
	ProductID      string            `json:"product_id"`
	Type           string            `json:"type" binding:"omitempty,oneof=product service"`
	Name           string            `json:"name" binding:"required"`
	Description    string            `json:"description" binding:"required"`
	Category       string            `json:"category"`
	Features       []string          `json:"features"`
	TargetAudience string            `json:"target_audience" binding:"omitempty,oneof=B2B B2C BOTH"`
	Language       string            `json:"language"`
	TemplateID     string            `json:"template_id"`
	Metadata       map[string]string `json:"metadata"`
}

func (r *GenerateRequest) toBrief() *model.ProductBrief {
	brief := &model.ProductBrief{
		ProductID:      r.ProductID,
		Type:           model.ProductType(r.Type),
		Name:           r.Name,
		Description:    r.Description,
		Category:       r.Category,
		Features:       r.Features,
		TargetAudience: model.TargetAudience(r.TargetAudience),
		Language:       r.Language,
		Metadata:       r.Metadata,
	}
	if brief.Type == "" {
		brief.Type = model.TypeProduct
	}
	if brief.TargetAudience == "" {
		brief.TargetAudience = model.AudienceBoth
	}
	if brief.Language == "" {
		brief.Language = "en"
	}
	return brief
}

// Generate accepts a product brief and starts onepager generation
func (h *OnepagerHandler) Generate(c *gin.Context) {
	username := middleware.GetUsername(c)

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	brief := req.toBrief()
	tpl := template.Get(req.TemplateID)

	onepagerID := uuid.New().String()
	onepager := &model.Onepager{
		ID:          onepagerID,
		ProductName: brief.Name,
		Brief:       brief,
		TemplateID:  tpl.ID(),
		Owner:       username,
		Status:      model.StatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	h.store.Save(onepager)

	go h.processOnepager(onepager, tpl)

	c.JSON(http.StatusOK, gin.H{
		"id":          onepagerID,
		"product":     brief.Name,
		"template_id": tpl.ID(),
		"status":      model.StatusPending,
	})
}

// processOnepager runs the generation pipeline asynchronously:
// copy generation, QC, HTML render, document upload. A QC fail is recorded
// in the result but does not abort the pipeline.
func (h *OnepagerHandler) processOnepager(onepager *model.Onepager, tpl template.Template) {
	slog.Info("starting onepager generation",
		"onepager_id", onepager.ID,
		"product", onepager.ProductName,
		"template_id", tpl.ID(),
	)

	h.store.UpdateStatus(onepager.ID, model.StatusProcessing, "")

	ctx := context.Background()
	contract := tpl.SlotLimits()

	slots := h.copywriter.Generate(ctx, onepager.Brief, contract)
	qc := h.qcEngine.Evaluate(contract, &slots)
	slog.Info("copy generated",
		"onepager_id", onepager.ID,
		"qc_status", qc.OverallStatus,
		"qc_checks", len(qc.Checks),
	)

	document, err := tpl.Render(&slots, onepager.ProductName)
	if err != nil {
		slog.Error("failed to render onepager", "onepager_id", onepager.ID, "error", err)
		h.store.UpdateStatus(onepager.ID, model.StatusFailed, "Failed to render document: "+err.Error())
		return
	}

	var objectKey, documentURL string
	if h.storage != nil {
		objectKey = fmt.Sprintf("%s/%s/%s.html", onepager.Owner, onepager.ID, tpl.ID())
		if err := h.storage.UploadDocument(ctx, objectKey, []byte(document)); err != nil {
			slog.Error("failed to upload onepager", "onepager_id", onepager.ID, "error", err)
			h.store.UpdateStatus(onepager.ID, model.StatusFailed, "Failed to upload document: "+err.Error())
			return
		}
		documentURL, err = h.storage.GetPresignedURL(ctx, objectKey)
		if err != nil {
			slog.Warn("failed to presign document URL", "onepager_id", onepager.ID, "error", err)
			documentURL = h.storage.GetPublicURL(objectKey)
		}
	}

	h.store.UpdateResult(onepager.ID, &slots, &qc, document, objectKey, documentURL)
	slog.Info("onepager completed", "onepager_id", onepager.ID, "object_key", objectKey)
}

// List returns all onepagers owned by the current user
func (h *OnepagerHandler) List(c *gin.Context) {
	username := middleware.GetUsername(c)
	onepagers := h.store.GetByOwner(username)

	// Return without copy/QC payload for list view
	result := make([]gin.H, len(onepagers))
	for i, op := range onepagers {
		result[i] = gin.H{
			"id":           op.ID,
			"product":      op.ProductName,
			"template_id":  op.TemplateID,
			"status":       op.Status,
			"document_url": op.DocumentURL,
			"created_at":   op.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			"updated_at":   op.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	c.JSON(http.StatusOK, gin.H{"onepagers": result})
}

// Get returns a single onepager with copy and QC results
func (h *OnepagerHandler) Get(c *gin.Context) {
	username := middleware.GetUsername(c)
	id := c.Param("id")

	onepager := h.store.Get(id)
	if onepager == nil || onepager.Owner != username {
		c.JSON(http.StatusNotFound, gin.H{"error": "Onepager not found"})
		return
	}

	c.JSON(http.StatusOK, onepager)
}

// GetStatus returns the generation status of a onepager
func (h *OnepagerHandler) GetStatus(c *gin.Context) {
	username := middleware.GetUsername(c)
	id := c.Param("id")

	onepager := h.store.Get(id)
	if onepager == nil || onepager.Owner != username {
		c.JSON(http.StatusNotFound, gin.H{"error": "Onepager not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        onepager.ID,
		"status":    onepager.Status,
		"error_msg": onepager.ErrorMsg,
	})
}

// GetDocument serves the rendered HTML document
func (h *OnepagerHandler) GetDocument(c *gin.Context) {
	username := middleware.GetUsername(c)
	id := c.Param("id")

	onepager := h.store.Get(id)
	if onepager == nil || onepager.Owner != username {
		c.JSON(http.StatusNotFound, gin.H{"error": "Onepager not found"})
		return
	}
	if onepager.Status != model.StatusCompleted || onepager.Document == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "Onepager is not ready", "status": onepager.Status})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(onepager.Document))
}

// Delete removes a onepager and its stored document
func (h *OnepagerHandler) Delete(c *gin.Context) {
	username := middleware.GetUsername(c)
	id := c.Param("id")

	onepager := h.store.Get(id)
	if onepager == nil || onepager.Owner != username {
		c.JSON(http.StatusNotFound, gin.H{"error": "Onepager not found"})
		return
	}

	if h.storage != nil && onepager.ObjectKey != "" {
		if err := h.storage.DeleteDocument(c.Request.Context(), onepager.ObjectKey); err != nil {
			slog.Warn("failed to delete stored document", "onepager_id", id, "error", err)
		}
	}
	h.store.Delete(id)

	c.JSON(http.StatusOK, gin.H{"message": "Onepager deleted"})
}
