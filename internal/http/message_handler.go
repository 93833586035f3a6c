package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"message-composer/internal/domain"
	"message-composer/internal/service"
)

// MessageHandler expone la generación de mensajes y el historial.
type MessageHandler struct {
	logger   *zap.Logger
	messages *service.MessageService
}

func NewMessageHandler(logger *zap.Logger, messages *service.MessageService) *MessageHandler {
	return &MessageHandler{
		logger:   logger,
		messages: messages,
	}
}

// GenerateMessage maneja POST /api/generate-message.
func (h *MessageHandler) GenerateMessage(c *gin.Context) {
	var req domain.GenerateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid generate message request", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request"})
		return
	}

	resp, err := h.messages.Generate(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("generate message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate message"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListMessages maneja GET /api/messages.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	messages, err := h.messages.ListRecent(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrHistoryDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "message history disabled"})
			return
		}
		h.logger.Error("list messages failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

type toneView struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

type categoryView struct {
	Name  string     `json:"name"`
	Tones []toneView `json:"tones"`
}

// ListTemplates maneja GET /api/templates.
func (h *MessageHandler) ListTemplates(c *gin.Context) {
	catalog, err := h.messages.Catalog()
	if err != nil {
		h.logger.Error("catalog unavailable", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}

	categories := make([]categoryView, 0)
	for _, name := range catalog.Categories() {
		defTone, _ := catalog.DefaultTone(name)
		view := categoryView{Name: name}
		for _, tone := range catalog.Tones(name) {
			view.Tones = append(view.Tones, toneView{Name: tone, Default: tone == defTone})
		}
		categories = append(categories, view)
	}

	keywords := make([]string, 0)
	for _, f := range catalog.FestiveOverrides() {
		keywords = append(keywords, f.Keyword)
	}

	c.JSON(http.StatusOK, gin.H{
		"categories":       categories,
		"default_category": catalog.DefaultCategory(),
		"festive_keywords": keywords,
	})
}
