package service

import (
	"math/rand/v2"
	"strings"
)

// RandomSource elige un índice en [0, n). Las implementaciones deben ser seguras para uso concurrente.
type RandomSource interface {
	IntN(n int) int
}

// globalRandom usa la fuente global de math/rand/v2, sembrada una vez por proceso.
type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

// Composition es el resultado de componer un mensaje.
type Composition struct {
	Message        string
	Category       string
	Tone           string
	FestiveKeyword string
	Success        bool
}

// MessageComposer elige y rellena plantillas del catálogo. No tiene estado mutable.
type MessageComposer struct {
	catalog *TemplateCatalog
	random  RandomSource
}

func NewMessageComposer(catalog *TemplateCatalog, random RandomSource) *MessageComposer {
	if catalog == nil {
		catalog = DefaultTemplateCatalog()
	}
	if random == nil {
		random = globalRandom{}
	}
	return &MessageComposer{catalog: catalog, random: random}
}

// Catalog expone el catálogo usado por el compositor.
func (m *MessageComposer) Catalog() *TemplateCatalog {
	return m.catalog
}

// Compose nunca falla: categorías y tonos desconocidos caen a los valores de respaldo.
func (m *MessageComposer) Compose(prompt, messageType, tone string) Composition {
	if festive, ok := m.catalog.MatchFestive(strings.ToLower(prompt)); ok && messageType == "greeting" {
		return Composition{
			Message:        festive.Message,
			Category:       messageType,
			Tone:           tone,
			FestiveKeyword: festive.Keyword,
			Success:        true,
		}
	}

	category, resolvedTone, templates := m.catalog.Resolve(messageType, tone)
	template := templates[m.random.IntN(len(templates))]

	return Composition{
		Message:  strings.ReplaceAll(template, ContextPlaceholder, SanitizeContext(prompt)),
		Category: category,
		Tone:     resolvedTone,
		Success:  true,
	}
}

// SanitizeContext recorta el prompt y agrega un punto final si no termina en '.' o '!'.
func SanitizeContext(prompt string) string {
	ctx := strings.TrimSpace(prompt)
	if !strings.HasSuffix(ctx, ".") && !strings.HasSuffix(ctx, "!") {
		ctx += "."
	}
	return ctx
}
