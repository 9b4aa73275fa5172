// Package cli implements the arenabench command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// options are shared by every command.
type options struct {
	logLevel string
	logger   log.Logger
}

// NewRootCommand builds the arenabench command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "arenabench",
		Short:         "arenabench - drive typed page arenas with synthetic workloads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd, opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newDefaultsCommand())
	rootCmd.AddCommand(newScenarioCommand())
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, "Error:", err)
}

func newLogger(cmd *cobra.Command, lvl string) (log.Logger, error) {
	var filter level.Option
	switch lvl {
	case "debug":
		filter = level.AllowDebug()
	case "info":
		filter = level.AllowInfo()
	case "warn":
		filter = level.AllowWarn()
	case "error":
		filter = level.AllowError()
	default:
		return nil, errors.Errorf("unknown log level %q", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(cmd.ErrOrStderr()))
	logger = level.NewFilter(logger, filter)
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}
