package service

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultTemplateCatalog_Invariants(t *testing.T) {
	catalog := DefaultTemplateCatalog()

	want := []string{"greeting", "informational", "promotional", "reminder", "support"}
	got := catalog.Categories()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected categories %v, got %v", want, got)
	}
	if catalog.DefaultCategory() != "promotional" {
		t.Fatalf("expected promotional default, got %q", catalog.DefaultCategory())
	}

	for _, category := range got {
		tones := catalog.Tones(category)
		if len(tones) == 0 {
			t.Fatalf("%s: expected tones", category)
		}
		defTone, ok := catalog.DefaultTone(category)
		if !ok || defTone != tones[0] {
			t.Fatalf("%s: expected default tone %q, got %q", category, tones[0], defTone)
		}
		for _, tone := range tones {
			templates := catalog.Templates(category, tone)
			if len(templates) != 3 {
				t.Fatalf("%s/%s: expected 3 templates, got %d", category, tone, len(templates))
			}
			for _, tmpl := range templates {
				if !strings.Contains(tmpl, ContextPlaceholder) {
					t.Fatalf("%s/%s: template without context placeholder: %q", category, tone, tmpl)
				}
			}
		}
	}
}

func TestDefaultTemplateCatalog_FestiveOrder(t *testing.T) {
	overrides := DefaultTemplateCatalog().FestiveOverrides()
	var keywords []string
	for _, f := range overrides {
		keywords = append(keywords, f.Keyword)
		if strings.Contains(f.Message, ContextPlaceholder) {
			t.Fatalf("festive message must not carry context placeholder: %q", f.Message)
		}
	}
	if strings.Join(keywords, ",") != "diwali,christmas,new year,holi,eid,birthday" {
		t.Fatalf("unexpected festive order %v", keywords)
	}
}

func TestTemplateCatalog_AccessorsReturnCopies(t *testing.T) {
	catalog := DefaultTemplateCatalog()

	templates := catalog.Templates("promotional", "friendly")
	templates[0] = "mutated"
	if catalog.Templates("promotional", "friendly")[0] == "mutated" {
		t.Fatalf("templates must not be shared with callers")
	}

	overrides := catalog.FestiveOverrides()
	overrides[0].Message = "mutated"
	if catalog.FestiveOverrides()[0].Message == "mutated" {
		t.Fatalf("festive overrides must not be shared with callers")
	}

	if catalog.Templates("missing", "friendly") != nil || catalog.Tones("missing") != nil {
		t.Fatalf("expected nil for unknown category")
	}
	if _, ok := catalog.DefaultTone("missing"); ok {
		t.Fatalf("expected no default tone for unknown category")
	}
}

func TestNewTemplateCatalog_CopiesInput(t *testing.T) {
	templates := []string{"Hi {name}, {prompt_context}"}
	catalog, err := NewTemplateCatalog([]CategoryTemplates{
		{Name: "promotional", Tones: []ToneTemplates{{Tone: "friendly", Templates: templates}}},
	}, nil, "promotional")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	templates[0] = "mutated"
	if catalog.Templates("promotional", "friendly")[0] != "Hi {name}, {prompt_context}" {
		t.Fatalf("catalog must not alias caller slices")
	}
}

func TestNewTemplateCatalog_Validation(t *testing.T) {
	valid := CategoryTemplates{Name: "promotional", Tones: []ToneTemplates{{Tone: "friendly", Templates: []string{"{prompt_context}"}}}}

	cases := []struct {
		name       string
		categories []CategoryTemplates
		festive    []FestiveOverride
		def        string
	}{
		{"no categories", nil, nil, "promotional"},
		{"missing default", []CategoryTemplates{valid}, nil, "greeting"},
		{"empty category name", []CategoryTemplates{valid, {Tones: valid.Tones}}, nil, "promotional"},
		{"duplicate category", []CategoryTemplates{valid, valid}, nil, "promotional"},
		{"no tones", []CategoryTemplates{{Name: "promotional"}}, nil, "promotional"},
		{"empty tone list", []CategoryTemplates{{Name: "promotional", Tones: []ToneTemplates{{Tone: "friendly"}}}}, nil, "promotional"},
		{"blank template", []CategoryTemplates{{Name: "promotional", Tones: []ToneTemplates{{Tone: "friendly", Templates: []string{" "}}}}}, nil, "promotional"},
		{"template without context placeholder", []CategoryTemplates{{Name: "promotional", Tones: []ToneTemplates{{Tone: "friendly", Templates: []string{"Hi {name}! Big sale today."}}}}}, nil, "promotional"},
		{"duplicate tone", []CategoryTemplates{{Name: "promotional", Tones: []ToneTemplates{valid.Tones[0], valid.Tones[0]}}}, nil, "promotional"},
		{"uppercase keyword", []CategoryTemplates{valid}, []FestiveOverride{{Keyword: "Diwali", Message: "x"}}, "promotional"},
		{"empty keyword", []CategoryTemplates{valid}, []FestiveOverride{{Keyword: "", Message: "x"}}, "promotional"},
		{"duplicate keyword", []CategoryTemplates{valid}, []FestiveOverride{{Keyword: "eid", Message: "x"}, {Keyword: "eid", Message: "y"}}, "promotional"},
		{"empty festive message", []CategoryTemplates{valid}, []FestiveOverride{{Keyword: "eid"}}, "promotional"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewTemplateCatalog(c.categories, c.festive, c.def); !errors.Is(err, ErrCatalogInvalid) {
				t.Fatalf("expected ErrCatalogInvalid, got %v", err)
			}
		})
	}
}

func TestTemplateCatalogResolve(t *testing.T) {
	catalog := DefaultTemplateCatalog()

	category, tone, templates := catalog.Resolve("reminder", "professional")
	if category != "reminder" || tone != "professional" || len(templates) != 3 {
		t.Fatalf("unexpected resolution %s/%s (%d)", category, tone, len(templates))
	}

	category, tone, _ = catalog.Resolve("informational", "formal")
	if category != "informational" || tone != "professional" {
		t.Fatalf("expected informational/professional, got %s/%s", category, tone)
	}

	category, tone, _ = catalog.Resolve("", "")
	if category != "promotional" || tone != "friendly" {
		t.Fatalf("expected promotional/friendly, got %s/%s", category, tone)
	}
}

func TestTemplateCatalogMatchFestive(t *testing.T) {
	catalog := DefaultTemplateCatalog()

	if _, ok := catalog.MatchFestive("weekly newsletter"); ok {
		t.Fatalf("expected no match")
	}
	f, ok := catalog.MatchFestive("happy holidays and christmas")
	if !ok || f.Keyword != "christmas" {
		t.Fatalf("expected christmas, got %+v", f)
	}
	// Coincidencia por subcadena, no por palabra completa.
	f, ok = catalog.MatchFestive("holidays")
	if !ok || f.Keyword != "holi" {
		t.Fatalf("expected substring match on holi, got %+v", f)
	}
}
