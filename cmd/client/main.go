package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophdrop/internal/client/cli"
	"github.com/dmitrijs2005/gophdrop/internal/client/config"
	"github.com/dmitrijs2005/gophdrop/internal/flagx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	args := flagx.StripArgs(os.Args[1:], config.Flags)

	if err := cli.NewApp(cfg).Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
