package main

import (
	"context"
	"github.com/clambin/tcc-thermostat/internal/cmd/cli"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

var (
	// overridden during build
	version = "change-me"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.RootCmd.Version = version
	if err := cli.RootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("command failed", "err", err)
		cancel()
		os.Exit(1)
	}
}
