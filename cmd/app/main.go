package main

import (
	"flag"
	"log"
	"os"

	"MarketBell/internal/di"
	"MarketBell/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s channel=%s", cfg.App.Environment, cfg.Telegram.ChannelID)

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	log.Printf("finnhub: symbols=%v news_limit=%d", cfg.Schedule.Symbols, cfg.Schedule.NewsLimit)
	log.Printf("telegram: polling=%t", cfg.Telegram.PollingEnabled())

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
