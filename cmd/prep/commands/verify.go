package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/prep/internal/engine/verifier"
)

func (c *CLI) newVerifyCmd() *cobra.Command {
	var req verifier.Request
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that a code patch fixes the tests added by a test patch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Verify(cmd.Context(), req)
		},
	}
	cmd.Flags().StringVar(&req.RepoDir, "repo", ".", "Repository checkout")
	cmd.Flags().StringVar(&req.BaseCommit, "commit", "", "Base commit to reset to")
	cmd.Flags().StringVar(&req.InstanceID, "instance", "", "Instance id used as the results key")
	cmd.Flags().StringVar(&req.PatchDir, "patches", ".", "Directory holding test.patch and code.patch")
	cmd.Flags().StringVar(&req.TestCommand, "test-cmd", verifier.DefaultTestCommand, "Test runner command")
	cmd.Flags().StringSliceVar(&req.DefaultTestFiles, "default-tests", nil, "Test files used when the test patch names none")
	cmd.Flags().StringVarP(&req.OutputPath, "output", "o", "", "Results file (defaults to <patches>/results.json)")
	_ = cmd.MarkFlagRequired("commit")
	_ = cmd.MarkFlagRequired("instance")
	return cmd
}
