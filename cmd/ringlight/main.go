package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/ringlight/internal/models"
	"github.com/wheelibin/ringlight/internal/stream"
	"github.com/wheelibin/ringlight/internal/tui"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	address := flag.String("address", "http://127.0.0.1:8123", "address of ringlightd")
	flag.Parse()

	logger := log.NewWithOptions(&lumberjack.Logger{
		Filename: "logs/ringlight.log",
		MaxAge:   3,
	}, log.Options{
		Level:      log.InfoLevel,
		TimeFormat: "2006/01/02 15:04:05",
	})
	logger.Info("ringlight starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := stream.NewConsumer(logger, *address)
	states := make(chan models.EntityState, 16)
	if err := consumer.Subscribe(ctx, states); err != nil {
		logger.Fatal(err)
	}

	// run the terminal UI
	ui := tui.NewLightsTUI()

	go func() {
		current, err := consumer.Snapshot(ctx)
		if err != nil {
			logger.Error(err)
		}
		ui.RefreshLights(current...)

		for {
			select {
			case s := <-states:
				ui.RefreshLights(s)
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := ui.Run(); err != nil {
		logger.Error(err)
		stop()
		os.Exit(1)
	}

	// cleanup before exit
	stop()
	logger.Info("ringlight is closing")
}
