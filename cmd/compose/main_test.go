package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"message-composer/internal/service"
)

type firstRandom struct{}

func (firstRandom) IntN(int) int { return 0 }

func TestRun_ComposesOneMessagePerLineIncludingBlank(t *testing.T) {
	composer := service.NewMessageComposer(service.DefaultTemplateCatalog(), firstRandom{})
	svc := service.NewMessageService(zap.NewNop(), composer, nil)

	in := strings.NewReader("Order shipped\n\n   \nBirthday party on Friday\n")
	var out bytes.Buffer
	if err := run(context.Background(), in, &out, svc, "greeting", "formal"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), out.String())
	}
	if lines[0] != "Dear {name}, Order shipped. We extend our warmest greetings and best wishes on this auspicious occasion." {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	blank := "Dear {name}, . We extend our warmest greetings and best wishes on this auspicious occasion."
	if lines[1] != blank || lines[2] != blank {
		t.Fatalf("expected blank lines composed with empty context, got %q and %q", lines[1], lines[2])
	}
	if !strings.HasPrefix(lines[3], "Happy Birthday, {name}!") {
		t.Fatalf("expected birthday override, got %q", lines[3])
	}
}

func TestRun_ServiceNotConfigured(t *testing.T) {
	var svc *service.MessageService
	err := run(context.Background(), strings.NewReader("hola\n"), &bytes.Buffer{}, svc, "promotional", "friendly")
	if !errors.Is(err, service.ErrMessageServiceNotConfigured) {
		t.Fatalf("expected ErrMessageServiceNotConfigured, got %v", err)
	}
}
