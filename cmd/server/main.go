package main

import (
	"context"
	"log"

	"workpulse/internal/app/server"
	"workpulse/internal/platform/config"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app, err := server.New(cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
