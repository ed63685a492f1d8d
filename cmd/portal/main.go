package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pet-adoption-portal/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, cli.Env{}, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
