// Command bootstrap creates the first administrator account against the
// configured store. It refuses once an administrator exists.
package main

import (
	"context"
	"log"
	"os"

	"github.com/mdrrmo4516/mobile2026/internal/logging"
	"github.com/mdrrmo4516/mobile2026/internal/operator"
	"github.com/mdrrmo4516/mobile2026/internal/server/auth"
	"github.com/mdrrmo4516/mobile2026/internal/server/config"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/repomanager"
	"github.com/mdrrmo4516/mobile2026/internal/server/services"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	store, err := repomanager.New(ctx, cfg)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer store.Close()

	logger := logging.NewJSON(os.Stderr, cfg.LogLevel)
	tokens := auth.NewTokenService([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration, nil)
	users := services.NewUserService(store.Users(), auth.NewBcryptHasher(), tokens, nil, logger)

	if _, err := operator.Bootstrap(ctx, users, os.Stdin, os.Stdout); err != nil {
		log.Printf("bootstrap failed: %v", err)
		store.Close()
		os.Exit(1)
	}
}
