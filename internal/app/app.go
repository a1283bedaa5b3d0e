// Package app wires configuration, logging, the subsystem controllers,
// and the Bubble Tea program together.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/privlock/privlock-tui/internal/config"
	"github.com/privlock/privlock-tui/internal/identity"
	"github.com/privlock/privlock-tui/internal/policy"
	"github.com/privlock/privlock-tui/internal/runner"
	"github.com/privlock/privlock-tui/internal/state"
	"github.com/privlock/privlock-tui/internal/theme"
	"github.com/privlock/privlock-tui/internal/ui/root"
	"github.com/privlock/privlock-tui/internal/winsys"
)

// Options control how the application is executed.
type Options struct {
	ConfigPath string
	Theme      string
	LogPath    string
	Version    string
}

// Run loads configuration, checks privileges, and starts the program.
// Everything this tool touches requires administrative rights, so a
// missing elevation is fatal before the menu ever shows.
func Run(ctx context.Context, opts Options) error {
	configPath, err := config.ResolvePath(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LogPath != "" {
		cfg.LogPath = opts.LogPath
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	if !winsys.IsElevated() {
		return errors.New("administrative privileges are required; restart from an elevated shell")
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logger.Sync()

	table := policy.Default()
	passes := runner.New(runner.Options{
		Table:    table,
		Services: winsys.NewServiceControl(logger),
		Adapters: winsys.NewAdapterControl(logger),
		Policies: winsys.NewRegistryPolicyStore(logger),
		Logger:   logger,
	})
	egress := identity.New(identity.Options{
		IPEndpoint:  cfg.Identity.IPEndpoint,
		GeoEndpoint: cfg.Identity.GeoEndpoint,
		HTTPClient:  &http.Client{Timeout: 15 * time.Second},
		Logger:      logger,
	})

	store := state.NewStore()
	palette := theme.New(theme.Options{Override: opts.Theme, Preferred: cfg.Theme})

	rootModel := root.New(store, root.Options{
		Theme:    palette,
		Table:    table,
		Lockdown: passes,
		Identity: egress,
		Version:  opts.Version,
	})

	prog := tea.NewProgram(rootModel, tea.WithAltScreen())

	runnerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(runnerCtx)
	group.Go(func() error {
		<-groupCtx.Done()
		prog.Quit()
		return nil
	})
	group.Go(func() error {
		defer cancel()
		_, err := prog.Run()
		return err
	})

	if err := group.Wait(); err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func buildLogger(cfg config.Config) (*zap.Logger, error) {
	logPath, err := config.ResolveLogPath(cfg)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{logPath}
	zapCfg.ErrorOutputPaths = []string{logPath}
	return zapCfg.Build()
}
