package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/privlock/privlock-tui/internal/app"
)

var version = "dev"

func main() {
	var (
		configPath string
		themeName  string
		logPath    string
	)

	flag.StringVar(&configPath, "config", "", "Path to the config file (defaults to the OS config dir)")
	flag.StringVar(&themeName, "theme", "", "Override theme (light, dark, auto)")
	flag.StringVar(&logPath, "log", "", "Path to the log file (defaults to the OS cache dir)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: configPath,
		Theme:      themeName,
		LogPath:    logPath,
		Version:    version,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "privlock-tui: %v\n", err)
		os.Exit(1)
	}
}
