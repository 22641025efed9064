// Package orchestrators coordinates workflows across domain services and gateways.
package orchestrators

import (
	"context"
	"errors"

	"github.com/ochairo/clangfetch/internal/domain/entities"
	"github.com/ochairo/clangfetch/internal/domain/interfaces"
	"github.com/ochairo/clangfetch/internal/domain/interfaces/gateways"
	"github.com/ochairo/clangfetch/internal/domain/services"
)

var (
	// ErrMissingOutput is returned when no output path was supplied
	ErrMissingOutput = errors.New("output path is required")

	// ErrDownloadFailed is returned when the fetcher reports failure.
	// The fetcher gives no further detail.
	ErrDownloadFailed = errors.New("download failed")
)

// DownloadOrchestrator fetches the update script for one request
type DownloadOrchestrator struct {
	fetcher gateways.Fetcher
	source  entities.ScriptSource
	logger  interfaces.Logger
}

// DownloadOrchestratorConfig holds configuration for the orchestrator
type DownloadOrchestratorConfig struct {
	Source entities.ScriptSource
	Logger interfaces.Logger
}

// NewDownloadOrchestrator creates a new download orchestrator.
// A zero Source falls back to the upstream Chromium location.
func NewDownloadOrchestrator(fetcher gateways.Fetcher, config DownloadOrchestratorConfig) *DownloadOrchestrator {
	source := config.Source
	if source.URLTemplate == "" {
		source.URLTemplate = entities.DefaultURLTemplate
	}
	if source.DefaultRevision == "" {
		source.DefaultRevision = entities.DefaultRevision
	}

	logger := config.Logger
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &DownloadOrchestrator{
		fetcher: fetcher,
		source:  source,
		logger:  logger,
	}
}

// ScriptURL returns the URL a request for rev would download
func (o *DownloadOrchestrator) ScriptURL(rev entities.Revision) string {
	return services.BuildScriptURL(o.source, rev)
}

// Execute downloads the script named by req. It calls the fetcher at most
// once and never before the request has been checked.
func (o *DownloadOrchestrator) Execute(ctx context.Context, req entities.DownloadRequest) error {
	if req.OutputPath == "" {
		return ErrMissingOutput
	}

	if req.Revision.IsEmpty() {
		o.logger.Debug("no revision given, using default",
			interfaces.F("explicit_empty", req.Revision.IsSet()),
			interfaces.F("default", o.source.DefaultRevision))
	}

	url := o.ScriptURL(req.Revision)
	o.logger.Info("downloading clang update script",
		interfaces.F("url", url),
		interfaces.F("output", req.OutputPath))

	if !o.fetcher.Fetch(ctx, url, req.OutputPath) {
		return ErrDownloadFailed
	}

	return nil
}

// ExitCode maps the result of Execute to a process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
