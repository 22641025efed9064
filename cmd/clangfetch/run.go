package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ochairo/clangfetch/internal/domain-adapters/gateways"
	orchestrators "github.com/ochairo/clangfetch/internal/domain-orchestrators"
	"github.com/ochairo/clangfetch/internal/domain/entities"
	"github.com/ochairo/clangfetch/internal/domain/interfaces"
	ifgateways "github.com/ochairo/clangfetch/internal/domain/interfaces/gateways"
	"github.com/ochairo/clangfetch/internal/external-adapters/yaml"
	"github.com/ochairo/clangfetch/internal/external-adapters/zap"
)

// deps are the collaborators run wires together
type deps struct {
	stderr     io.Writer
	loadConfig func(path string) (*entities.Config, error)
	newLogger  func(settings entities.LogSettings) (interfaces.Logger, error)
	newFetcher func(cfg *entities.Config, logger interfaces.Logger) ifgateways.Fetcher
}

func defaultDeps() deps {
	return deps{
		stderr:     os.Stderr,
		loadConfig: yaml.NewConfigLoader().Load,
		newLogger: func(settings entities.LogSettings) (interfaces.Logger, error) {
			return zap.NewLogger(settings)
		},
		newFetcher: func(cfg *entities.Config, logger interfaces.Logger) ifgateways.Fetcher {
			return gateways.NewDownloader(gateways.DownloaderConfig{
				Timeout:   time.Duration(cfg.Download.TimeoutMinutes) * time.Minute,
				UserAgent: cfg.Download.UserAgent,
				Logger:    logger,
			})
		},
	}
}

// run parses args, downloads the script and returns the process exit code
func run(ctx context.Context, args []string, d deps) int {
	fs := flag.NewFlagSet("clangfetch", flag.ContinueOnError)
	fs.SetOutput(d.stderr)
	var (
		output     = fs.String("output", "", "Path to file to create/overwrite")
		revision   = fs.String("revision", "", "Revision to download (default from configuration, \""+entities.DefaultRevision+"\" if unset)")
		configPath = fs.String("config", "", "YAML configuration file (default $"+yaml.ConfigEnvVar+")")
		verbose    = fs.Bool("verbose", false, "Enable debug logging")
	)

	fs.Usage = func() {
		fmt.Fprintf(d.stderr, `Usage: clangfetch --output <path> [options]

Download the clang update script (tools/clang/scripts/update.py) from the
Chromium repository at the given revision.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(d.stderr, `
Examples:
  # Fetch the script from the main branch
  clangfetch --output tools/clang/scripts/update.py

  # Fetch the script at a pinned revision
  clangfetch --output update.py --revision 4f2a9c0e8b7d
`)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *output == "" {
		fs.Usage()
		return 1
	}

	rev := entities.NoRevision()
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "revision" {
			rev = entities.RevisionOf(*revision)
		}
	})

	cfg, err := d.loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(d.stderr, "Error: %v\n", err)
		return 1
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := d.newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(d.stderr, "Error: %v\n", err)
		return 1
	}
	if s, ok := logger.(interface{ Sync() error }); ok {
		//nolint:errcheck // Sync on stderr fails on some terminals
		defer s.Sync()
	}

	orch := orchestrators.NewDownloadOrchestrator(d.newFetcher(cfg, logger), orchestrators.DownloadOrchestratorConfig{
		Source: cfg.Source,
		Logger: logger,
	})

	err = orch.Execute(ctx, entities.DownloadRequest{
		OutputPath: *output,
		Revision:   rev,
	})
	return orchestrators.ExitCode(err)
}
