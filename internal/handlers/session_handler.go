package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnanduApillAi/kendo-forms/internal/builder"
	"github.com/AnanduApillAi/kendo-forms/internal/constants"
	"github.com/AnanduApillAi/kendo-forms/internal/models"
	"github.com/AnanduApillAi/kendo-forms/internal/schema"
)

// SessionHandler exposes builder sessions and the schema mutations a canvas
// performs on them.
type SessionHandler struct {
	sessions *builder.Manager
}

func NewSessionHandler(sessions *builder.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) session(c *gin.Context) (*builder.Session, bool) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return session, true
}

func (h *SessionHandler) Create(c *gin.Context) {
	session := h.sessions.Create()
	c.JSON(http.StatusCreated, gin.H{
		"sessionId": session.ID,
		"formState": session.Schema(),
	})
}

func (h *SessionHandler) Get(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionId":   session.ID,
		"formState":   session.Schema(),
		"selectedId":  session.SelectedID(),
		"generating":  session.Generating(),
	})
}

func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.sessions.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session deleted successfully"})
}

func componentFromType(c *gin.Context, typeName string) (schema.Component, bool) {
	component, ok := constants.NewComponent(schema.ComponentType(typeName))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown component type"})
		return schema.Component{}, false
	}
	return component, true
}

func (h *SessionHandler) AddComponent(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.AddComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	component, ok := componentFromType(c, req.Type)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"formState": session.AppendComponent(component)})
}

func (h *SessionHandler) InsertRow(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.InsertRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	component, ok := componentFromType(c, req.Type)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"formState": session.InsertRowAt(component, req.RowIndex)})
}

func (h *SessionHandler) InsertInline(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.InsertInlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	component, ok := componentFromType(c, req.Type)
	if !ok {
		return
	}

	state, err := session.InsertInlineComponent(component, req.RowIndex)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"formState": state})
}

func (h *SessionHandler) UpdateComponent(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"formState": session.UpdateComponent(c.Param("componentId"), req.Patch())})
}

func (h *SessionHandler) RemoveComponent(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"formState": session.RemoveComponent(c.Param("componentId"))})
}

func (h *SessionHandler) MoveRow(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.MoveRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := session.MoveRow(req.SourceIndex, req.DestIndex)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"formState": state})
}

func (h *SessionHandler) ReorderRow(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.ReorderRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := session.ReorderWithinRow(req.RowIndex, req.SourceIndex, req.DestIndex)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"formState": state})
}

func (h *SessionHandler) Select(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.SelectComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ComponentID != "" {
		if _, found := session.Schema().FindComponent(req.ComponentID); !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "component not found"})
			return
		}
	}
	session.Select(req.ComponentID)
	c.JSON(http.StatusOK, gin.H{"selectedId": session.SelectedID()})
}

func (h *SessionHandler) ReplaceSchema(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.ReplaceSchemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows := make(schema.Schema, len(req.FormState))
	for i, row := range req.FormState {
		rows[i] = schema.Row(row)
	}
	normalized, err := schema.Normalize(rows)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	session.ReplaceSchema(normalized)
	c.JSON(http.StatusOK, gin.H{"formState": session.Schema()})
}
