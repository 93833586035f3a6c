package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"message-composer/internal/domain"
	"message-composer/internal/repository"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

var (
	ErrMessageServiceNotConfigured = errors.New("message service not configured")
	ErrHistoryDisabled             = errors.New("message history disabled")
)

// MessageService compone mensajes y, si hay repositorio, guarda el historial.
type MessageService struct {
	logger   *zap.Logger
	composer *MessageComposer
	repo     repository.MessageRepository
	now      func() time.Time
}

// NewMessageService acepta repo nil: en ese caso el historial queda deshabilitado.
func NewMessageService(logger *zap.Logger, composer *MessageComposer, repo repository.MessageRepository) *MessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{
		logger:   logger,
		composer: composer,
		repo:     repo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Catalog expone el catálogo de plantillas en uso.
func (s *MessageService) Catalog() (*TemplateCatalog, error) {
	if s == nil || s.composer == nil {
		return nil, ErrMessageServiceNotConfigured
	}
	return s.composer.Catalog(), nil
}

func (s *MessageService) Generate(ctx context.Context, req domain.GenerateMessageRequest) (domain.GenerateMessageResponse, error) {
	if s == nil || s.composer == nil {
		return domain.GenerateMessageResponse{}, ErrMessageServiceNotConfigured
	}

	prompt := ""
	if req.Prompt != nil {
		prompt = *req.Prompt
	}
	messageType := req.MessageType.Or(domain.DefaultMessageType)
	tone := req.Tone.Or(domain.DefaultTone)

	composition := s.composer.Compose(prompt, messageType, tone)

	if s.repo != nil {
		record := domain.GeneratedMessage{
			ID:               uuid.NewString(),
			Prompt:           prompt,
			MessageType:      messageType,
			Tone:             tone,
			ResolvedCategory: composition.Category,
			ResolvedTone:     composition.Tone,
			FestiveKeyword:   composition.FestiveKeyword,
			Message:          composition.Message,
			CreatedAt:        s.now(),
		}
		if err := s.repo.Create(ctx, record); err != nil {
			s.logger.Warn("store generated message failed", zap.Error(err), zap.String("message_type", messageType))
		}
	}

	return domain.GenerateMessageResponse{
		Message: composition.Message,
		Success: composition.Success,
	}, nil
}

// ListRecent devuelve el historial más reciente primero; limit fuera de rango se ajusta.
func (s *MessageService) ListRecent(ctx context.Context, limit int) ([]domain.GeneratedMessage, error) {
	if s == nil {
		return nil, ErrMessageServiceNotConfigured
	}
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	messages, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []domain.GeneratedMessage{}
	}
	return messages, nil
}
