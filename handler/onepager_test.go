package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/greeshma-prabhu/marketing-tool/config"
	"github.com/greeshma-prabhu/marketing-tool/model"
	"github.com/greeshma-prabhu/marketing-tool/service"
)

// stubLLM returns canned copy so handler tests never hit a real backend.
type stubLLM struct {
	respond func(prompt string) (string, error)
}

func (s *stubLLM) Complete(ctx context.Context, prompt string) (string, error) {
	if s.respond != nil {
		return s.respond(prompt)
	}
	return "Stub copy for this slot that is long enough to pass quality checks.", nil
}

func newOnepagerTestHandler() *OnepagerHandler {
	copywriter := service.NewCopywriter(&stubLLM{}, 2)
	qcEngine := service.NewQCEngine(&config.QCConfig{})
	return NewOnepagerHandler(copywriter, qcEngine, nil)
}

// onepagerRouter injects a fixed username the way AuthMiddleware would.
func onepagerRouter(h *OnepagerHandler, username string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("username", username)
		c.Next()
	})
	router.POST("/onepagers", h.Generate)
	router.GET("/onepagers", h.List)
	router.GET("/onepagers/:id", h.Get)
	router.GET("/onepagers/:id/status", h.GetStatus)
	router.GET("/onepagers/:id/document", h.GetDocument)
	router.DELETE("/onepagers/:id", h.Delete)
	return router
}

func postOnepager(t *testing.T, router *gin.Engine, payload map[string]any) map[string]any {
	t.Helper()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/onepagers", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	return response
}

func waitForStatus(t *testing.T, h *OnepagerHandler, id string, want string) *model.Onepager {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if op := h.store.Get(id); op != nil && op.Status == want {
			return op
		}
		time.Sleep(10 * time.Millisecond)
	}
	op := h.store.Get(id)
	if op == nil {
		t.Fatalf("Onepager %s disappeared while waiting for %s", id, want)
	}
	t.Fatalf("Onepager %s stuck in status %s, wanted %s (error: %s)", id, op.Status, want, op.ErrorMsg)
	return nil
}

func TestOnepagerGenerateLifecycle(t *testing.T) {
	h := newOnepagerTestHandler()
	router := onepagerRouter(h, "alice")

	response := postOnepager(t, router, map[string]any{
		"name":            "UltraWidget",
		"description":     "A widget that does everything",
		"features":        []string{"Fast", "Light"},
		"target_audience": "B2B",
		"template_id":     "template_01",
	})

	if response["status"] != model.StatusPending {
		t.Errorf("Expected pending status on creation, got %v", response["status"])
	}
	id, _ := response["id"].(string)
	if id == "" {
		t.Fatal("Expected onepager id in response")
	}

	op := waitForStatus(t, h, id, model.StatusCompleted)

	if op.Copy == nil || op.Copy.Title == "" {
		t.Error("Expected generated copy on completed onepager")
	}
	if op.QC == nil {
		t.Fatal("Expected QC result on completed onepager")
	}
	if op.QC.OverallStatus == "" {
		t.Error("Expected an overall QC verdict")
	}
	if !strings.Contains(op.Document, "UltraWidget") {
		t.Error("Expected rendered document to mention the product")
	}

	// Status endpoint reflects completion
	req := httptest.NewRequest("GET", "/onepagers/"+id+"/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var status map[string]any
	json.Unmarshal(w.Body.Bytes(), &status)
	if status["status"] != model.StatusCompleted {
		t.Errorf("Expected completed status, got %v", status["status"])
	}

	// Document endpoint serves the HTML
	req = httptest.NewRequest("GET", "/onepagers/"+id+"/document", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for document, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "text/html") {
		t.Errorf("Expected HTML content type, got %s", w.Header().Get("Content-Type"))
	}
}

func TestOnepagerQCFailureStillCompletes(t *testing.T) {
	// Backend produces empty copy, which fails QC but must not fail the job
	llm := &stubLLM{
		respond: func(prompt string) (string, error) {
			return " ", nil
		},
	}
	h := NewOnepagerHandler(
		service.NewCopywriter(llm, 2),
		service.NewQCEngine(&config.QCConfig{}),
		nil,
	)
	router := onepagerRouter(h, "alice")

	response := postOnepager(t, router, map[string]any{
		"name":        "UltraWidget",
		"description": "A widget",
	})
	id := response["id"].(string)

	op := waitForStatus(t, h, id, model.StatusCompleted)

	if op.QC.OverallStatus != model.QCFail {
		t.Errorf("Expected QC fail for empty copy, got %s", op.QC.OverallStatus)
	}
}

func TestOnepagerGenerateValidation(t *testing.T) {
	h := newOnepagerTestHandler()
	router := onepagerRouter(h, "alice")

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing name", map[string]any{"description": "A widget"}},
		{"missing description", map[string]any{"name": "UltraWidget"}},
		{"bad type", map[string]any{"name": "X", "description": "Y", "type": "gadget"}},
		{"bad audience", map[string]any{"name": "X", "description": "Y", "target_audience": "everyone"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.payload)
			req := httptest.NewRequest("POST", "/onepagers", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestOnepagerUnknownTemplateFallsBack(t *testing.T) {
	h := newOnepagerTestHandler()
	router := onepagerRouter(h, "alice")

	response := postOnepager(t, router, map[string]any{
		"name":        "UltraWidget",
		"description": "A widget",
		"template_id": "template_99",
	})

	if response["template_id"] != "template_01" {
		t.Errorf("Expected fallback to default template, got %v", response["template_id"])
	}
}

func TestOnepagerOwnership(t *testing.T) {
	h := newOnepagerTestHandler()
	aliceRouter := onepagerRouter(h, "alice")
	bobRouter := onepagerRouter(h, "bob")

	response := postOnepager(t, aliceRouter, map[string]any{
		"name":        "UltraWidget",
		"description": "A widget",
	})
	id := response["id"].(string)
	waitForStatus(t, h, id, model.StatusCompleted)

	// Bob cannot see, fetch, or delete Alice's onepager
	for _, path := range []string{"/onepagers/" + id, "/onepagers/" + id + "/status", "/onepagers/" + id + "/document"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		bobRouter.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s as bob: expected 404, got %d", path, w.Code)
		}
	}

	req := httptest.NewRequest("DELETE", "/onepagers/"+id, nil)
	w := httptest.NewRecorder()
	bobRouter.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("DELETE as bob: expected 404, got %d", w.Code)
	}

	// Alice can delete her own
	req = httptest.NewRequest("DELETE", "/onepagers/"+id, nil)
	w = httptest.NewRecorder()
	aliceRouter.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("DELETE as alice: expected 200, got %d", w.Code)
	}
	if h.store.Get(id) != nil {
		t.Error("Expected onepager removed from store")
	}
}

func TestOnepagerList(t *testing.T) {
	h := newOnepagerTestHandler()
	router := onepagerRouter(h, "list-owner")

	first := postOnepager(t, router, map[string]any{"name": "Widget One", "description": "First"})
	second := postOnepager(t, router, map[string]any{"name": "Widget Two", "description": "Second"})
	waitForStatus(t, h, first["id"].(string), model.StatusCompleted)
	waitForStatus(t, h, second["id"].(string), model.StatusCompleted)

	req := httptest.NewRequest("GET", "/onepagers", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Onepagers []map[string]any `json:"onepagers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(response.Onepagers) != 2 {
		t.Fatalf("Expected 2 onepagers, got %d", len(response.Onepagers))
	}
	// List view must not carry the copy payload
	if _, ok := response.Onepagers[0]["copy"]; ok {
		t.Error("List view should not include copy payload")
	}
}

func TestOnepagerDocumentNotReady(t *testing.T) {
	h := newOnepagerTestHandler()
	router := onepagerRouter(h, "carol")

	// Seed a pending record directly, bypassing generation
	op := &model.Onepager{
		ID:        "pending-doc",
		Owner:     "carol",
		Status:    model.StatusPending,
		CreatedAt: time.Now(),
	}
	h.store.Save(op)
	defer h.store.Delete(op.ID)

	req := httptest.NewRequest("GET", "/onepagers/pending-doc/document", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 for unfinished document, got %d", w.Code)
	}
}
