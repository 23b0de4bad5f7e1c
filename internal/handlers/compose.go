package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/compose"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
)

type sessionView struct {
	compose.Session
	Title       string `json:"title"`
	Recipient   string `json:"recipient"`
	CanGenerate bool   `json:"canGenerate"`
	CanSend     bool   `json:"canSend"`
}

func viewOf(s compose.Session) sessionView {
	return sessionView{
		Session:     s,
		Title:       s.Title(),
		Recipient:   s.Recipient(),
		CanGenerate: s.CanGenerate(),
		CanSend:     s.CanSend(),
	}
}

// OpenCompose opens the compose dialog for a lead
func (h *Handler) OpenCompose(c *gin.Context) {
	var req struct {
		Channel string `json:"channel" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	channel, err := models.ParseChannel(req.Channel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.app.OpenCompose(c.Request.Context(), c.Param("id"), channel)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewOf(session))
}

func (h *Handler) GetCompose(c *gin.Context) {
	s := h.app.State()
	if s.Compose == nil {
		abortWithError(c, compose.ErrNotOpen)
		return
	}
	c.JSON(http.StatusOK, viewOf(*s.Compose))
}

// EditDraft replaces the draft text
func (h *Handler) EditDraft(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.app.EditDraft(c.Request.Context(), req.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(session))
}

// GenerateDraft asks for an AI draft and responds once it is in place. A
// client that disconnects meanwhile does not cancel the generation.
func (h *Handler) GenerateDraft(c *gin.Context) {
	session, err := h.app.GenerateDraft(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(session))
}

// SendCompose dispatches the draft
func (h *Handler) SendCompose(c *gin.Context) {
	msg, notice, err := h.app.Send(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": msg,
		"notice":  notice,
	})
}

// CancelCompose closes the dialog and discards the draft
func (h *Handler) CancelCompose(c *gin.Context) {
	if err := h.app.CancelCompose(c.Request.Context()); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
