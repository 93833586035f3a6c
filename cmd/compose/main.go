package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"message-composer/internal/config"
	"message-composer/internal/db"
	"message-composer/internal/domain"
	"message-composer/internal/repository"
	"message-composer/internal/service"
)

func main() {
	ctx := context.Background()

	messageType := flag.String("type", domain.DefaultMessageType, "categoría del mensaje")
	tone := flag.String("tone", domain.DefaultTone, "tono del mensaje")
	seed := flag.Uint64("seed", 0, "semilla para una selección reproducible (0 = aleatoria)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	var messageRepo repository.MessageRepository
	if cfg.HistoryEnabled() {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		messageRepo = repository.NewPgMessageRepository(pool)
	}

	var random service.RandomSource
	if *seed != 0 {
		random = rand.New(rand.NewPCG(*seed, *seed))
	}

	composer := service.NewMessageComposer(service.DefaultTemplateCatalog(), random)
	svc := service.NewMessageService(logger, composer, messageRepo)

	if err := run(ctx, os.Stdin, os.Stdout, svc, *messageType, *tone); err != nil {
		log.Fatal(err)
	}
}

// run compone un mensaje por cada línea de entrada, incluidas las vacías.
func run(ctx context.Context, in io.Reader, out io.Writer, svc *service.MessageService, messageType, tone string) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		prompt := scanner.Text()
		resp, err := svc.Generate(ctx, domain.GenerateMessageRequest{
			Prompt:      &prompt,
			MessageType: domain.SomeString(messageType),
			Tone:        domain.SomeString(tone),
		})
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		if _, err := fmt.Fprintln(out, resp.Message); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
