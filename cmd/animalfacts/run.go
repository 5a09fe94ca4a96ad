package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/getzep/animalfacts/config"
	"github.com/getzep/animalfacts/internal"
	"github.com/getzep/animalfacts/pkg/llms"
	"github.com/getzep/animalfacts/pkg/models"
	"github.com/getzep/animalfacts/pkg/server"
	"github.com/getzep/animalfacts/pkg/web"
)

const ShutdownTimeout = 10 * time.Second

// run is the entrypoint for the animalfacts server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring animalfacts: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting animalfacts server version %s", config.VersionString)

	config.SetLogLevel(cfg)

	ctx := context.Background()
	shutdownTracing, err := internal.SetupTracing(ctx)
	if err != nil {
		log.Fatalf("Error setting up tracing: %s", err)
	}

	appState, err := NewAppState(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	srv := server.Create(appState)

	go func() {
		log.Infof("Listening on: %s", srv.Addr)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	waitForShutdown(srv, shutdownTracing)
}

// NewAppState creates an AppState from the config file / ENV, creates the images directory
// and the LLM client. A missing API key is not fatal: fact requests fail until one is set.
func NewAppState(ctx context.Context, cfg *config.Config) (*models.AppState, error) {
	if err := web.EnsureImagesDir(cfg.Static.ImagesDir); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	appState := &models.AppState{
		Config: cfg,
	}

	llmClient, err := llms.NewLLMClient(ctx, cfg)
	switch {
	case errors.Is(err, llms.ErrLLMNotConfigured):
		log.Warnf(
			"No API key configured for %s. Animal facts are unavailable.",
			llms.ServiceName(cfg),
		)
	case err != nil:
		return nil, err
	default:
		appState.LLMClient = llmClient
		log.Infof("Using LLM: %s", llmClient.Name())
	}

	return appState, nil
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Print(string(out))
		os.Exit(0)
	}
}

// waitForShutdown blocks until SIGINT or SIGTERM, then drains the server and flushes traces.
func waitForShutdown(srv *http.Server, shutdownTracing func(context.Context) error) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signalCh

	log.Infof("Received %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Error shutting down server: %v", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Errorf("Error shutting down tracing: %v", err)
	}

	log.Info("Server stopped")
}
