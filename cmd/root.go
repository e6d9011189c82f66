package cmd

import (
	"fmt"
	"os"

	"devserver/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the devserver command tree.
// Running the root command without a subcommand starts the server.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devserver",
		Short: "Otomono Jerseys development server",
		Long: `devserver serves the current directory over HTTP for local development.
It adds permissive CORS headers, answers preflight requests, logs every
request and opens the quick order test page in your browser.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	cmd.Flags().Int("port", 8000, "Use a specific port")
	cmd.Flags().Bool("no-browser", false, "Do not open the start page in a browser")

	// A bad --port value is a usage error: show the usage before failing.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintln(c.ErrOrStderr(), c.UsageString())
		return err
	})

	cmd.AddCommand(newCheckCmd())
	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format with ISO8601 timestamps matches the request log.
		cfg := &logger.Config{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
