package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"globe-weather/api"
	"globe-weather/datasource"
	"globe-weather/directory"
	"globe-weather/logging"
	"globe-weather/widget"
)

func main() {
	// Parse command line arguments
	port := flag.String("port", "", "Port to run the server on (overrides HTTP_PORT)")
	envFile := flag.String("env", ".env", "Path to the .env file")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable API rate limiting")
	flag.Parse()

	config, err := datasource.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := logging.New(os.Stdout, config.LogLevel, config.Env)
	if config.OpenWeatherMap.APIKey == "" {
		logger.Warn("OPENWEATHERMAP_API_KEY is not set, weather fetches will fail")
	}

	if *port != "" {
		config.HTTPPort = *port
	}
	config.RateLimit = config.RateLimit && *enableRateLimiting

	var provider datasource.WeatherProvider = datasource.NewOpenWeatherMapProvider(
		config.OpenWeatherMap.APIKey, config.OpenWeatherMap.BaseURL)
	if config.RateLimit {
		// OpenWeatherMap free tier allows 60 calls/minute = 1 call per second
		// Allow bursts of up to 5 requests
		provider = datasource.NewRateLimitedProvider(provider, 1.0, 5)
		logger.Info("applied rate limiting", "provider", provider.Name())
	}

	controller := widget.NewController(directory.Default(), provider, config.DefaultCity, logger)
	server := api.NewServer(controller, config.HTTPPort, logger)

	// Load the default city before serving so the first page has weather
	activateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := controller.Activate(activateCtx); err != nil {
		logger.Warn("default city not loaded", "error", err)
	}
	cancel()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	sig := <-shutdownChan
	fmt.Printf("Shutting down due to %s signal\n", sig)

	ctx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}

	fmt.Println("Shutdown complete")
}
