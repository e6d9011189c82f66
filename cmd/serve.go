package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"devserver/core/browser"
	"devserver/core/config"
	"devserver/core/logger"
	"devserver/core/server"
	"devserver/feature/project"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func runServe(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	// 1. Load Configuration
	cfg, err := config.LoadConfig(".", cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()

	// 3. Check project files before any socket is opened
	report, err := project.Check(afero.NewOsFs(), cfg.Server.Root, project.DefaultChecklist)
	if err != nil {
		return err
	}
	report.Print(out)
	if !report.OK() {
		fmt.Fprintln(out, "❌ Please run devserver from the project root directory")
		return report.Err()
	}

	// 4. Bind the listener
	ln, err := server.Listen(cfg.Server)
	if err != nil {
		if errors.Is(err, server.ErrPortInUse) {
			printPortInUse(out, cmd.Root().Name(), cfg.Server.Port)
		} else {
			fmt.Fprintf(out, "❌ Error starting server: %v\n", err)
		}
		return err
	}

	srv := server.New(cfg.Server, logg)
	printBanner(out, cfg.Server)

	// 5. Open the start page (best effort)
	if cfg.Server.OpenBrowser {
		startPage := cfg.Server.StartPage
		if startPage == "" {
			startPage = project.StartPage
		}
		browser.Launch(logg, browser.Open, cfg.Server.URL(startPage))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "🔄 Server started successfully!")
	fmt.Fprintln(out, "📝 Check the console for any errors or requests")

	// 6. Serve until interrupted
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx, ln); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "🛑 Server stopped by user")
	fmt.Fprintln(out, "👋 Goodbye!")
	return nil
}
