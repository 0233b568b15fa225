package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pumlex/pumlex/pkg/buildinfo"
)

const (
	// appName is the binary name, used for config paths and display.
	appName = "pumlex"

	// defaultServerURL is the public PlantUML rendering service.
	defaultServerURL = "http://www.plantuml.com/plantuml"
)

// Execute runs the pumlex CLI and returns an error if the export fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd creates the root command. The root runs the export directly;
// input paths are positional arguments, already expanded by the shell.
func newRootCmd() *cobra.Command {
	var verbose bool
	var opts exportOpts

	root := &cobra.Command{
		Use:   "pumlex [flags] FILE...",
		Short: "Pumlex renders PlantUML files through a PlantUML server",
		Long: `Pumlex converts PlantUML diagram source files into rendered images.
The diagram text is compressed, encoded into a URL token, and sent to a
PlantUML server which performs the rendering; the resulting image is written
next to the input file with the output format's extension.`,
		Version:      buildinfo.Version,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args, &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.Flags().StringVarP(&opts.typeName, "type", "t", "", "output format: svg (default), png, ascii/txt")
	root.Flags().StringVarP(&opts.serverURL, "url", "u", "", "PlantUML server base URL")
	root.Flags().BoolVar(&opts.progress, "progress", false, "show live per-file progress instead of log lines")
	root.Flags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/pumlex/config.toml)")

	root.AddCommand(newCompletionCmd())

	return root
}
