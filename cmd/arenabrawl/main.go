// Package main is the entry point for Neon Brawl.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/arenabrawl/internal/game"
	"github.com/samdwyer/arenabrawl/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// tcell owns the terminal from here on, so logs go to a file
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file %s: %v", cfg.LogFile, err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Printf("Failed to initialize game: %v", err)
		fmt.Fprintf(os.Stderr, "arenabrawl: %v\n", err)
		os.Exit(1)
	}

	if err := g.Run(ctx); err != nil {
		log.Printf("Game error: %v", err)
		fmt.Fprintf(os.Stderr, "arenabrawl: %v\n", err)
		os.Exit(1)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Without an API key nothing is set and the exporter falls back to its
// defaults (a local collector).
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_ARENABRAWL_API_KEY")
	if apiKey == "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_ARENABRAWL_DATASET")
	if dataset == "" {
		dataset = "arenabrawl"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
