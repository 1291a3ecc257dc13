package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thermobox/internal/config"
	"thermobox/internal/thermobox"

	"github.com/lmittmann/tint"
)

func main() {
	cfgPath := flag.String("config", "thermobox.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "thermobox: %s\n", err)
		os.Exit(1)
	}

	slog.SetDefault(
		slog.New(
			tint.NewHandler(
				os.Stderr,
				&tint.Options{
					Level:      cfg.Level(),
					TimeFormat: time.Kitchen,
				}),
		),
	)

	box, err := thermobox.New(cfg)
	if err != nil {
		slog.Error("setup failed", "error", err)
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		box.Stop()
	}()

	box.Run()
}
