package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Black-And-White-Club/club-mirror/app"
	"github.com/Black-And-White-Club/club-mirror/config"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		cancel()
	}()

	if err := application.Run(ctx); err != nil {
		log.Printf("Application error: %v", err)
	}

	if err := application.Close(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
