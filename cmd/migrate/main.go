// migrate aplica o revierte las migraciones embebidas del catálogo.
//
// Uso:
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down [pasos]
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	dbURL := cfg.DB.ConnectionString()
	switch cmd {
	case "up":
		err = postgres.MigrateUp(dbURL, log)
	case "down":
		steps := 1
		if len(os.Args) > 2 {
			steps, err = strconv.Atoi(os.Args[2])
			if err != nil {
				log.Fatal().Err(err).Msg("pasos inválidos")
			}
		}
		err = postgres.MigrateDown(dbURL, steps, log)
	default:
		fmt.Fprintf(os.Stderr, "comando desconocido %q (up | down [pasos])\n", cmd)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("cmd", cmd).Msg("migrate")
	}
	log.Info().Str("cmd", cmd).Msg("migrate completado")
}
