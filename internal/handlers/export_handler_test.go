package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnanduApillAi/kendo-forms/internal/builder"
	"github.com/AnanduApillAi/kendo-forms/internal/schema"
	"github.com/AnanduApillAi/kendo-forms/internal/service"
)

func newExportRouter(t *testing.T) (*gin.Engine, *builder.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := builder.NewManager(time.Hour)
	t.Cleanup(manager.Close)

	handler := NewExportHandler(manager, service.NewExportService())

	router := gin.New()
	router.GET("/sessions/:id/export/json", handler.ExportJSON)
	router.GET("/sessions/:id/export/code", handler.ExportCode)
	router.POST("/sessions/:id/import", handler.Import)
	router.GET("/builder/components", handler.Palette)
	router.GET("/builder/sample", handler.SampleForm)
	return router, manager
}

func TestExportHandler_JSONListsRequiredFields(t *testing.T) {
	router, manager := newExportRouter(t)

	session := manager.Create()
	session.ReplaceSchema(schema.Schema{
		{
			{ID: "f1", Type: schema.TypeTextField, Label: "Name", Name: "name", Required: true},
			{ID: "f2", Type: schema.TypeEmail, Label: "Email", Name: "email"},
		},
	})

	w := doJSON(t, router, http.MethodGet, "/sessions/"+session.ID+"/export/json", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var payload struct {
		Format         string   `json:"format"`
		Content        string   `json:"content"`
		RequiredFields []string `json:"requiredFields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Format != "json" {
		t.Fatalf("expected json format, got %q", payload.Format)
	}
	if !strings.Contains(payload.Content, `"id": "f1"`) {
		t.Fatalf("exported JSON is missing component f1: %s", payload.Content)
	}
	if len(payload.RequiredFields) != 1 || payload.RequiredFields[0] != "name" {
		t.Fatalf("expected required fields [name], got %v", payload.RequiredFields)
	}
}

func TestExportHandler_CodeForUnknownSession(t *testing.T) {
	router, _ := newExportRouter(t)

	w := doJSON(t, router, http.MethodGet, "/sessions/nope/export/code", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestExportHandler_ImportReplacesSchema(t *testing.T) {
	router, manager := newExportRouter(t)
	session := manager.Create()

	body := []interface{}{
		[]map[string]interface{}{
			{"id": "imp-1", "type": "dropdown", "label": "Country", "options": []map[string]string{
				{"label": "One", "value": "one"},
			}},
		},
	}
	w := doJSON(t, router, http.MethodPost, "/sessions/"+session.ID+"/import", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	state := session.Schema()
	if len(state) != 1 || state[0][0].ID != "imp-1" {
		t.Fatalf("imported schema was not applied: %+v", state)
	}
	if state[0][0].ComponentName != "Dropdown" {
		t.Fatalf("expected componentName to be derived, got %q", state[0][0].ComponentName)
	}
}

func TestExportHandler_ImportRejectsBrokenPayload(t *testing.T) {
	router, manager := newExportRouter(t)
	session := manager.Create()

	body := []interface{}{
		[]map[string]interface{}{
			{"id": "", "type": "textField", "label": "No id"},
		},
	}
	w := doJSON(t, router, http.MethodPost, "/sessions/"+session.ID+"/import", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", w.Code)
	}
	if len(session.Schema()) != 0 {
		t.Fatalf("rejected import must not touch the session schema")
	}
}

func TestExportHandler_PaletteAndSample(t *testing.T) {
	router, _ := newExportRouter(t)

	w := doJSON(t, router, http.MethodGet, "/builder/components", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var palette struct {
		Components []map[string]interface{} `json:"components"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &palette); err != nil {
		t.Fatalf("failed to decode palette: %v", err)
	}
	if len(palette.Components) != 7 {
		t.Fatalf("expected 7 palette entries, got %d", len(palette.Components))
	}

	w = doJSON(t, router, http.MethodGet, "/builder/sample", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var sample schema.Schema
	if err := json.Unmarshal(w.Body.Bytes(), &sample); err != nil {
		t.Fatalf("failed to decode sample form: %v", err)
	}
	if err := schema.Validate(sample); err != nil {
		t.Fatalf("sample form must satisfy the schema invariants: %v", err)
	}
}
