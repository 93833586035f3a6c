package domain

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	DefaultMessageType = "promotional"
	DefaultTone        = "friendly"
)

var ErrNullString = errors.New("expected a string, got null")

// OptionalString distingue un campo ausente (Set=false) de uno presente.
// Un null explícito se rechaza al decodificar.
type OptionalString struct {
	Value string
	Set   bool
}

// SomeString construye un OptionalString presente.
func SomeString(v string) OptionalString {
	return OptionalString{Value: v, Set: true}
}

// Or devuelve el valor si está presente, o def en caso contrario.
func (o OptionalString) Or(def string) string {
	if o.Set {
		return o.Value
	}
	return def
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return ErrNullString
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// GenerateMessageRequest es el cuerpo de POST /api/generate-message.
// Campos opcionales ausentes toman los valores por defecto.
type GenerateMessageRequest struct {
	Prompt      *string        `json:"prompt" binding:"required"`
	MessageType OptionalString `json:"messageType"`
	Tone        OptionalString `json:"tone"`
}

type GenerateMessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// GeneratedMessage registra un mensaje compuesto en el historial.
type GeneratedMessage struct {
	ID               string    `json:"id"`
	Prompt           string    `json:"prompt"`
	MessageType      string    `json:"message_type"`
	Tone             string    `json:"tone"`
	ResolvedCategory string    `json:"resolved_category"`
	ResolvedTone     string    `json:"resolved_tone"`
	FestiveKeyword   string    `json:"festive_keyword,omitempty"`
	Message          string    `json:"message"`
	CreatedAt        time.Time `json:"created_at"`
}
