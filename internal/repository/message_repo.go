package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"message-composer/internal/domain"
)

// MessageRepository define la persistencia del historial de mensajes generados.
type MessageRepository interface {
	Create(ctx context.Context, message domain.GeneratedMessage) error
	ListRecent(ctx context.Context, limit int) ([]domain.GeneratedMessage, error)
}

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) Create(ctx context.Context, message domain.GeneratedMessage) error {
	const query = `
		INSERT INTO generated_messages (
			id, prompt, message_type, tone, resolved_category, resolved_tone,
			festive_keyword, message, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	var festiveKeyword interface{}
	if message.FestiveKeyword != "" {
		festiveKeyword = message.FestiveKeyword
	}

	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.Prompt,
		message.MessageType,
		message.Tone,
		message.ResolvedCategory,
		message.ResolvedTone,
		festiveKeyword,
		message.Message,
		message.CreatedAt,
	)
	return err
}

func (r *PgMessageRepository) ListRecent(ctx context.Context, limit int) ([]domain.GeneratedMessage, error) {
	const query = `
		SELECT id, prompt, message_type, tone, resolved_category, resolved_tone,
			festive_keyword, message, created_at
		FROM generated_messages
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]domain.GeneratedMessage, 0, limit)
	for rows.Next() {
		var msg domain.GeneratedMessage
		var festiveKeyword *string

		err = rows.Scan(
			&msg.ID,
			&msg.Prompt,
			&msg.MessageType,
			&msg.Tone,
			&msg.ResolvedCategory,
			&msg.ResolvedTone,
			&festiveKeyword,
			&msg.Message,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if festiveKeyword != nil {
			msg.FestiveKeyword = *festiveKeyword
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
