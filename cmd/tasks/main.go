package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Makepad-fr/tasks/internal/cli"
	"github.com/Makepad-fr/tasks/internal/config"
)

func main() {
	// Root flags (apply to every subcommand)
	theme := flag.String("theme", "", "colour theme: classic, neon or mono (overrides TASKS_THEME)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	if *theme != "" {
		cfg.Client.Theme = *theme
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Run(ctx, flag.Args(), cli.Options{Config: cfg})
	stop()
	os.Exit(code)
}
