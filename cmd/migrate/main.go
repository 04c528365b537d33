package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/conectavoluntarios/api/internal/config"
	"github.com/conectavoluntarios/api/migrations"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	if err := run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("migração falhou")
	}
}

func run(args []string) error {
	if len(args) != 1 || (args[0] != "up" && args[0] != "down") {
		return fmt.Errorf("uso: migrate up|down")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	dsn := cfg.DB.ConnString()

	switch args[0] {
	case "up":
		err = migrations.Up(dsn)
	case "down":
		err = migrations.Down(dsn)
	}
	if err != nil {
		return err
	}

	log.Info().Str("direction", args[0]).Msg("migrações aplicadas")
	return nil
}
