// Command chat is a terminal conversation window over the same engine and
// flat-file history as the web server.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"chatjpt/internal/chat"
	"chatjpt/internal/config"
	"chatjpt/internal/history"
	"chatjpt/internal/responder"
	"chatjpt/internal/seed"
)

func main() {
	cfg := config.Load()
	if err := run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		return fmt.Errorf("failed to load YAML config: %w", err)
	}

	engine, err := seed.Load(ctx,
		seed.Chain(seed.FileSource{Path: cfg.SeedFile}, seed.Static(yamlCfg.Pairs())),
		responder.WithVocabulary(yamlCfg.FallbackVocabulary()),
		responder.WithMaxWords(yamlCfg.FallbackMaxWords()),
	)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	for _, k := range engine.Skipped() {
		log.Printf("Warning: keyword %q has no letters or digits and was skipped", k)
	}

	store := history.FileStore{Path: cfg.HistoryFile}
	messages, err := store.Load(ctx)
	if err != nil {
		return err
	}
	service := chat.NewService(engine, history.NewConversation(messages), nil)

	for _, ex := range service.Exchanges() {
		fmt.Fprintf(out, "User  : %s\n%s   : %s\n", ex.User, cfg.BotName, ex.Bot)
	}

	fmt.Fprintf(out, "Chat with %s! Type 'bye' to exit.\n", cfg.BotName)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if strings.ToLower(input) == "bye" {
			fmt.Fprintf(out, "%s: Goodbye!\n", cfg.BotName)
			break
		}

		reply, err := service.Ask(input)
		if err != nil {
			var invalid *chat.InvalidPromptError
			if errors.As(err, &invalid) {
				continue
			}
			return err
		}
		fmt.Fprintf(out, "%s: %s\n", cfg.BotName, reply.Response)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return service.Conversation().Save(ctx, store)
}
