package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/wheelibin/ringlight/internal/api"
	"github.com/wheelibin/ringlight/internal/config"
	"github.com/wheelibin/ringlight/internal/healthTracker"
	"github.com/wheelibin/ringlight/internal/hub"
	"github.com/wheelibin/ringlight/internal/platform"
	"github.com/wheelibin/ringlight/internal/repos"
	"github.com/wheelibin/ringlight/internal/simulator"
	"github.com/wheelibin/ringlight/internal/stream"
)

func main() {
	configFile := flag.String("config", "", "path to the config file")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		ReportCaller:    true,
	})
	logger.Info("ringlightd starting")

	// read the config file
	if err := config.InitialiseConfig(*configFile); err != nil {
		logger.Fatal(err)
	}
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}
	logger.SetLevel(config.ParseLevel(cfg.Log.Level))

	db, err := sql.Open("sqlite3", cfg.Database.Path)
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	// create/wire up services
	repo, err := repos.NewStateRepo(logger, db)
	if err != nil {
		logger.Fatal(err)
	}

	sessionID := uuid.NewString()
	logger.Info("session started", "id", sessionID)

	backend := simulator.NewBackend(logger, simulator.Options{
		WriteLatency:     cfg.Simulator.WriteLatency,
		WriteTimeout:     cfg.Simulator.WriteTimeout,
		PropagationDelay: cfg.Simulator.PropagationDelay,
	})
	inventory := backend.Inventory(cfg.Simulator.Devices, cfg.Simulator.Groups)

	broadcaster := stream.NewBroadcaster(logger)
	tracker := healthtracker.NewTracker(logger, cfg.Health.PollInterval)
	p := platform.NewPlatform(logger, sessionID, repo, broadcaster, cfg.Entities.RefreshRate)
	h := hub.NewHub(logger, p, tracker, cfg.Entities.ScanInterval, cfg.Entities.WriteTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := h.Initialise(ctx, inventory); err != nil {
		logger.Fatal(err)
	}

	router := api.NewRouter(logger, cfg.Log.Level == "debug", h, p, repo, broadcaster)
	server := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http api listening", "address", cfg.HTTP.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(err)
			stop()
		}
	}()

	// start the light update loop, returns once a stop signal is received
	h.Run(ctx)

	// cleanup before exit
	broadcaster.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(err)
	}
	fmt.Println("ringlightd is closing")
}
