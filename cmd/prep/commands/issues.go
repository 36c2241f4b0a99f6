package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newIssuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "issues <owner/repo> <pr>",
		Short: "List the issues a pull request closes and flag pull requests linked to several",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Issues(cmd.Context(), args[0], args[1])
			return err
		},
	}
}
