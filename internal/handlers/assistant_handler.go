package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnanduApillAi/kendo-forms/internal/builder"
	"github.com/AnanduApillAi/kendo-forms/internal/models"
	"github.com/AnanduApillAi/kendo-forms/internal/service"
)

type AssistantHandler struct {
	sessions  *builder.Manager
	assistant *service.AssistantService
}

func NewAssistantHandler(sessions *builder.Manager, assistant *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{sessions: sessions, assistant: assistant}
}

func (h *AssistantHandler) session(c *gin.Context) (*builder.Session, bool) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return session, true
}

func (h *AssistantHandler) Submit(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.assistant.Submit(c.Request.Context(), session, req.Prompt, req.Mode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyPrompt), errors.Is(err, service.ErrPromptTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, builder.ErrGenerationInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "a generation is already in progress"})
		case errors.Is(err, service.ErrInvalidResponse):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to generate form with AI. Please try again with a different prompt."})
		case errors.Is(err, service.ErrUpstream):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to generate form with AI. Please try again with a different prompt."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process form generation request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entry":     result.Entry,
		"formState": result.Schema,
	})
}

func (h *AssistantHandler) History(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": h.assistant.History(session)})
}

func (h *AssistantHandler) Restore(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.assistant.Restore(session, req.EntryID)
	if err != nil {
		switch {
		case errors.Is(err, builder.ErrEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "history entry not found"})
		case errors.Is(err, builder.ErrNoSnapshot):
			c.JSON(http.StatusConflict, gin.H{"error": "entry has no form snapshot to restore"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"formState": state})
}
