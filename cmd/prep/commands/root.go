// Package commands implements the CLI commands for prep.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/prep/internal/app"
	"go.trai.ch/prep/internal/build"
	"go.trai.ch/prep/internal/core/domain"
	"go.trai.ch/prep/internal/engine/verifier"
)

// CLI represents the command line interface for prep.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath string
	logFormat  string
}

// Application represents the application logic interface.
type Application interface {
	SetLogFormat(setting string)
	List(configPath string) error
	Plan(configPath, name string) error
	Run(ctx context.Context, configPath, name string, opts app.RunOptions) error
	Status(ctx context.Context, configPath, name string) error
	Verify(ctx context.Context, req verifier.Request) error
	BuildImages(ctx context.Context, tasksDir string, opts app.BuildOptions) (app.BuildStats, error)
	VerifyImages(ctx context.Context, tasksDir string) (app.VerifyStats, error)
	Issues(ctx context.Context, repository, pr string) (*domain.ClosingIssues, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "prep",
		Short:         "Bootstrap project environments and verify patches against their test suites",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			c.app.SetLogFormat(c.logFormat)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Profile file (defaults to $PREP_CONFIG when it exists)")
	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "", "Log format: auto, pretty or json")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newImageCmd())
	rootCmd.AddCommand(c.newIssuesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
