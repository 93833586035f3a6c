package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	// NamePlaceholder queda sin resolver para la personalización posterior.
	NamePlaceholder = "{name}"
	// ContextPlaceholder se reemplaza con el prompt saneado.
	ContextPlaceholder = "{prompt_context}"
)

var ErrCatalogInvalid = errors.New("template catalog invalid")

// ToneTemplates agrupa las plantillas de un tono.
type ToneTemplates struct {
	Tone      string
	Templates []string
}

// CategoryTemplates define una categoría; el primer tono declarado es el tono por defecto.
type CategoryTemplates struct {
	Name  string
	Tones []ToneTemplates
}

// FestiveOverride asocia una palabra clave festiva con un mensaje fijo.
type FestiveOverride struct {
	Keyword string
	Message string
}

type categoryEntry struct {
	tones       map[string][]string
	toneOrder   []string
	defaultTone string
}

// TemplateCatalog es inmutable una vez construido y seguro para uso concurrente.
type TemplateCatalog struct {
	categories      map[string]categoryEntry
	defaultCategory string
	festive         []FestiveOverride
}

// NewTemplateCatalog valida y copia las definiciones recibidas.
func NewTemplateCatalog(categories []CategoryTemplates, festive []FestiveOverride, defaultCategory string) (*TemplateCatalog, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrCatalogInvalid)
	}

	c := &TemplateCatalog{
		categories:      make(map[string]categoryEntry, len(categories)),
		defaultCategory: defaultCategory,
	}
	for _, cat := range categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("%w: empty category name", ErrCatalogInvalid)
		}
		if _, dup := c.categories[cat.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrCatalogInvalid, cat.Name)
		}
		if len(cat.Tones) == 0 {
			return nil, fmt.Errorf("%w: category %q has no tones", ErrCatalogInvalid, cat.Name)
		}

		entry := categoryEntry{
			tones:       make(map[string][]string, len(cat.Tones)),
			defaultTone: cat.Tones[0].Tone,
		}
		for _, tt := range cat.Tones {
			if tt.Tone == "" {
				return nil, fmt.Errorf("%w: category %q has an empty tone name", ErrCatalogInvalid, cat.Name)
			}
			if _, dup := entry.tones[tt.Tone]; dup {
				return nil, fmt.Errorf("%w: duplicate tone %q in %q", ErrCatalogInvalid, tt.Tone, cat.Name)
			}
			if len(tt.Templates) == 0 {
				return nil, fmt.Errorf("%w: %s/%s has no templates", ErrCatalogInvalid, cat.Name, tt.Tone)
			}
			for _, tmpl := range tt.Templates {
				if strings.TrimSpace(tmpl) == "" {
					return nil, fmt.Errorf("%w: %s/%s has an empty template", ErrCatalogInvalid, cat.Name, tt.Tone)
				}
				if !strings.Contains(tmpl, ContextPlaceholder) {
					return nil, fmt.Errorf("%w: %s/%s template lacks %s", ErrCatalogInvalid, cat.Name, tt.Tone, ContextPlaceholder)
				}
			}
			entry.tones[tt.Tone] = append([]string(nil), tt.Templates...)
			entry.toneOrder = append(entry.toneOrder, tt.Tone)
		}
		c.categories[cat.Name] = entry
	}

	if _, ok := c.categories[defaultCategory]; !ok {
		return nil, fmt.Errorf("%w: default category %q not declared", ErrCatalogInvalid, defaultCategory)
	}

	seen := make(map[string]struct{}, len(festive))
	for _, f := range festive {
		if f.Keyword == "" || f.Keyword != strings.ToLower(f.Keyword) {
			return nil, fmt.Errorf("%w: festive keyword %q must be non-empty lowercase", ErrCatalogInvalid, f.Keyword)
		}
		if _, dup := seen[f.Keyword]; dup {
			return nil, fmt.Errorf("%w: duplicate festive keyword %q", ErrCatalogInvalid, f.Keyword)
		}
		if strings.TrimSpace(f.Message) == "" {
			return nil, fmt.Errorf("%w: festive keyword %q has an empty message", ErrCatalogInvalid, f.Keyword)
		}
		seen[f.Keyword] = struct{}{}
		c.festive = append(c.festive, f)
	}

	return c, nil
}

// DefaultCategory devuelve la categoría usada cuando la pedida no existe.
func (c *TemplateCatalog) DefaultCategory() string {
	return c.defaultCategory
}

// Categories devuelve los nombres de categoría ordenados alfabéticamente.
func (c *TemplateCatalog) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for name := range c.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tones devuelve los tonos de una categoría en orden de declaración, o nil si no existe.
func (c *TemplateCatalog) Tones(category string) []string {
	entry, ok := c.categories[category]
	if !ok {
		return nil
	}
	return append([]string(nil), entry.toneOrder...)
}

// DefaultTone devuelve el tono de respaldo de una categoría.
func (c *TemplateCatalog) DefaultTone(category string) (string, bool) {
	entry, ok := c.categories[category]
	if !ok {
		return "", false
	}
	return entry.defaultTone, true
}

// Templates devuelve una copia de las plantillas de category/tone, sin fallbacks.
func (c *TemplateCatalog) Templates(category, tone string) []string {
	entry, ok := c.categories[category]
	if !ok {
		return nil
	}
	return append([]string(nil), entry.tones[tone]...)
}

// FestiveOverrides devuelve la tabla festiva en orden de prioridad.
func (c *TemplateCatalog) FestiveOverrides() []FestiveOverride {
	return append([]FestiveOverride(nil), c.festive...)
}

// Resolve aplica los fallbacks de categoría y tono. La lista devuelta no debe modificarse.
func (c *TemplateCatalog) Resolve(category, tone string) (string, string, []string) {
	entry, ok := c.categories[category]
	if !ok {
		category = c.defaultCategory
		entry = c.categories[category]
	}
	templates, ok := entry.tones[tone]
	if !ok {
		tone = entry.defaultTone
		templates = entry.tones[tone]
	}
	return category, tone, templates
}

// MatchFestive busca la primera palabra clave contenida en el prompt (ya en minúsculas).
func (c *TemplateCatalog) MatchFestive(lowerPrompt string) (FestiveOverride, bool) {
	for _, f := range c.festive {
		if strings.Contains(lowerPrompt, f.Keyword) {
			return f, true
		}
	}
	return FestiveOverride{}, false
}
