package cmd

import (
	"fmt"

	"devserver/core/config"
	"devserver/feature/project"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the project files are present",
		Long:  `Verifies the required and optional project files without starting the server.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(".", nil)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			report, err := project.Check(afero.NewOsFs(), cfg.Server.Root, project.DefaultChecklist)
			if err != nil {
				return err
			}

			report.Print(out)
			if err := report.Err(); err != nil {
				return err
			}

			fmt.Fprintf(out, "✅ Project files look good in %s\n", cfg.Server.Root)
			return nil
		},
	}
}
