package db

import (
	"context"
	"errors"
	"testing"

	"message-composer/internal/config"
)

func TestNewPool_RequiresDatabaseURL(t *testing.T) {
	_, err := NewPool(context.Background(), &config.Config{})
	if !errors.Is(err, ErrDatabaseNotConfigured) {
		t.Fatalf("expected ErrDatabaseNotConfigured, got %v", err)
	}
}

func TestNewPool_InvalidURL(t *testing.T) {
	_, err := NewPool(context.Background(), &config.Config{DatabaseURL: "postgres://%zz"})
	if err == nil {
		t.Fatalf("expected parse error")
	}
}
