package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/prep/internal/app"
)

func (c *CLI) newImageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Build and verify task images",
	}
	cmd.AddCommand(c.newImageBuildCmd())
	cmd.AddCommand(c.newImageVerifyCmd())
	return cmd
}

func (c *CLI) newImageBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <tasks-dir>",
		Short: "Build one image per task instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			skipExisting, _ := cmd.Flags().GetBool("skip-existing")
			exitOnFailure, _ := cmd.Flags().GetBool("exit-on-failure")

			_, err := c.app.BuildImages(cmd.Context(), args[0], app.BuildOptions{
				Force:         force,
				SkipExisting:  skipExisting,
				ExitOnFailure: exitOnFailure,
			})
			return err
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rebuild images that already exist, without cache")
	cmd.Flags().Bool("skip-existing", true, "Skip images that already exist")
	cmd.Flags().Bool("exit-on-failure", true, "Stop at the first failed build")
	return cmd
}

func (c *CLI) newImageVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <tasks-dir>",
		Short: "Run the verification container of every task instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.VerifyImages(cmd.Context(), args[0])
			return err
		},
	}
}
