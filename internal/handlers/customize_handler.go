package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnanduApillAi/kendo-forms/internal/builder"
	"github.com/AnanduApillAi/kendo-forms/internal/models"
	"github.com/AnanduApillAi/kendo-forms/internal/schema"
)

// CustomizeHandler exposes the staged property editor: a draft per session
// that only reaches the live schema on commit.
type CustomizeHandler struct {
	sessions *builder.Manager
}

func NewCustomizeHandler(sessions *builder.Manager) *CustomizeHandler {
	return &CustomizeHandler{sessions: sessions}
}

func (h *CustomizeHandler) session(c *gin.Context) (*builder.Session, bool) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return session, true
}

func draftError(c *gin.Context, err error) {
	switch err {
	case builder.ErrComponentNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "component not found"})
	case builder.ErrNoDraft:
		c.JSON(http.StatusConflict, gin.H{"error": "no customization in progress"})
	case builder.ErrOptionOutOfRange:
		c.JSON(http.StatusBadRequest, gin.H{"error": "option index out of range"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *CustomizeHandler) Begin(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	draft, err := session.BeginCustomize(c.Param("componentId"))
	if err != nil {
		draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *CustomizeHandler) Update(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req builder.DraftFields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := session.UpdateDraft(req)
	if err != nil {
		draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *CustomizeHandler) AddOption(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.DraftOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := session.AddDraftOption(schema.Option{Label: req.Label, Value: req.Value})
	if err != nil {
		draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *CustomizeHandler) UpdateOption(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.UpdateDraftOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := session.UpdateDraftOption(req.Index, schema.Option{Label: req.Label, Value: req.Value})
	if err != nil {
		draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *CustomizeHandler) RemoveOption(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.RemoveDraftOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := session.RemoveDraftOption(req.Index)
	if err != nil {
		draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (h *CustomizeHandler) Commit(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	state, err := session.CommitCustomize()
	if err != nil {
		draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"formState": state})
}

func (h *CustomizeHandler) Cancel(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	session.CancelCustomize()
	c.JSON(http.StatusOK, gin.H{"message": "customization discarded"})
}
