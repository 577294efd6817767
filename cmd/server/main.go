package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/catalog"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/config"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/domain"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/draw"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/history"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/irc"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/logging"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/overlay"
	"github.com/sandiskgamer1-ops/giveaway-wheel-MEGAMU/internal/server"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func runGracefulShutdown(srv *server.Server, engine *draw.Engine, hub *overlay.Hub, cancel context.CancelFunc) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		cancel()
		engine.Stop()
		hub.Stop()

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	settingsStore := config.NewSettingsStore(cfg.DataDir)
	settings, err := settingsStore.Load()
	if err != nil {
		slog.Error("Failed to load settings", "error", err)
		os.Exit(1)
	}
	if settings.Debug {
		slog.Info("Debug mode active - chat connection disabled")
	}

	historyStore := history.NewFileStore(cfg.DataDir)
	historyStore.Load()

	picker := draw.NewPicker(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The chat client and engine reference each other (inbound messages go
	// to the engine, announcements go out through the client), so the client
	// is built first with a forwarding handler.
	var engine *draw.Engine
	chatClient := irc.NewClient(settingsStore.Current, func(msg *domain.ChatMessage) {
		engine.HandleChatMessage(msg)
	})

	engine = draw.NewEngine(draw.DefaultConfig(), clock, picker, chatClient, historyStore, settingsStore.Current)

	hub := overlay.NewHub()
	engine.SetPublisher(hub)
	engine.Start()

	go chatClient.Run(ctx)

	catalogClient := catalog.NewClient(cfg.CatalogBaseURL, settingsStore.Current)
	refresher := catalog.NewRefresher(catalogClient, engine, clock)
	go refresher.Run(ctx)

	srv := server.NewServer(cfg, settingsStore, engine, historyStore, chatClient, refresher, hub)
	done := runGracefulShutdown(srv, engine, hub, cancel)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
