package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"globe-weather/datasource"
	"globe-weather/directory"
	"globe-weather/logging"
	"globe-weather/widget"
)

func main() {
	envFile := flag.String("env", ".env", "Path to the .env file")
	flag.Parse()

	config, err := datasource.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Diagnostics go to stderr so they do not interleave with the prompt
	logger := logging.New(os.Stderr, config.LogLevel, config.Env)
	if config.OpenWeatherMap.APIKey == "" {
		logger.Warn("OPENWEATHERMAP_API_KEY is not set, weather fetches will fail")
	}

	provider := datasource.NewOpenWeatherMapProvider(config.OpenWeatherMap.APIKey, config.OpenWeatherMap.BaseURL)
	controller := widget.NewController(directory.Default(), provider, config.DefaultCity, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := widget.NewPrompt(controller, os.Stdout).Run(ctx, os.Stdin); err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}
}
