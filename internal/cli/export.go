package cli

import (
	"context"
	"fmt"

	"github.com/pumlex/pumlex/pkg/errors"
	"github.com/pumlex/pumlex/pkg/export"
)

// exportOpts holds the command-line flags for the root export command.
type exportOpts struct {
	typeName   string // output format name ("" means config/default)
	serverURL  string // server base URL ("" means config/default)
	configPath string // explicit config file path
	progress   bool   // live TUI instead of log lines
}

// runExport resolves options, builds the shared HTTP client, and dispatches
// one concurrent export task per input path. Client configuration errors are
// fatal before any file is touched; per-file errors fail the run but never
// stop sibling exports.
func runExport(ctx context.Context, paths []string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(resolve(opts.typeName, cfg.Type, "svg"))
	if err != nil {
		return err
	}
	serverURL := resolve(opts.serverURL, cfg.URL, defaultServerURL)
	logger.Debugf("Exporting %d file(s) as %s via %s", len(paths), format, serverURL)

	client, err := export.NewClient(logger)
	if err != nil {
		return err
	}

	runner := &export.Runner{
		Exporter: &export.Exporter{
			Client:  client,
			BaseURL: serverURL,
			Format:  format,
			Logger:  logger,
		},
	}

	if opts.progress {
		return runExportTUI(ctx, runner, paths)
	}

	runner.OnResult = func(ev export.Event) {
		if ev.Err != nil {
			printError("%s: %s", ev.Path, errors.UserMessage(ev.Err))
			return
		}
		printFile(ev.OutPath)
	}

	p := newProgress(logger)
	if err := runner.ExportAll(ctx, paths); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Exported %d diagram(s)", len(paths)))
	return nil
}

// resolve returns the first non-empty value: flag, then config, then default.
func resolve(flag, config, fallback string) string {
	if flag != "" {
		return flag
	}
	if config != "" {
		return config
	}
	return fallback
}
