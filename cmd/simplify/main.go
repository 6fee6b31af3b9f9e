package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/es-debug/luasimplify/internal/application/simplify"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := simplify.Start(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()

	if err != nil {
		slog.Error(fmt.Sprintf("simplify.Start(): %s", err))
		os.Exit(1)
	}
}
