package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/prep/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available project profiles",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return c.app.List(c.configPath)
		},
	}
}

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <project>",
		Short: "Print the commands a bootstrap would run",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.Plan(c.configPath, args[0])
		},
	}
}

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <project>",
		Short: "Bootstrap a project",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			dir, _ := cmd.Flags().GetString("dir")
			failFast, _ := cmd.Flags().GetBool("fail-fast")

			return c.app.Run(cmd.Context(), c.configPath, args[0], app.RunOptions{
				Dir:      dir,
				FailFast: failFast,
			})
		},
	}
	cmd.Flags().StringP("dir", "d", "", "Working directory, overriding the profile")
	cmd.Flags().Bool("fail-fast", false, "Stop at the first failing step")
	return cmd
}

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <project>",
		Short: "Show the last bootstrap of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Status(cmd.Context(), c.configPath, args[0])
		},
	}
}
