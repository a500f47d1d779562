package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnanduApillAi/kendo-forms/internal/builder"
	"github.com/AnanduApillAi/kendo-forms/internal/constants"
	"github.com/AnanduApillAi/kendo-forms/internal/schema"
	"github.com/AnanduApillAi/kendo-forms/internal/service"
)

// ExportHandler serves schema exports plus the static builder configuration
// the canvas needs: the component palette and a canned starter form.
type ExportHandler struct {
	sessions      *builder.Manager
	exportService *service.ExportService
}

func NewExportHandler(sessions *builder.Manager, exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{sessions: sessions, exportService: exportService}
}

func (h *ExportHandler) session(c *gin.Context) (*builder.Session, bool) {
	session, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	return session, true
}

func (h *ExportHandler) ExportJSON(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	form := session.Schema()
	out, err := h.exportService.ToJSON(form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"format":         "json",
		"content":        out,
		"requiredFields": schema.RequiredFields(form),
	})
}

func (h *ExportHandler) ExportCode(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	form := session.Schema()
	out, err := h.exportService.ToCode(form)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"format":         "jsx",
		"content":        out,
		"requiredFields": schema.RequiredFields(form),
	})
}

func (h *ExportHandler) Import(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form, err := h.exportService.Import(data)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	session.ReplaceSchema(form)
	c.JSON(http.StatusOK, gin.H{"formState": session.Schema()})
}

func (h *ExportHandler) Palette(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"components": constants.Palette()})
}

func (h *ExportHandler) SampleForm(c *gin.Context) {
	c.JSON(http.StatusOK, constants.SampleSchema())
}
