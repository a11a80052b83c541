// Package commands implements the CLI commands for the cook asset cooker.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	cookv1 "go.trai.ch/cook/api/cook/v1"
	"go.trai.ch/cook/internal/app"
	"go.trai.ch/cook/internal/build"
)

// CLI represents the command line interface for cook.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Serve(ctx context.Context, opts app.ServeOptions) error
	Book(ctx context.Context, opts app.BookOptions) error
	RemoteBook(ctx context.Context, opts app.RemoteOptions, req cookv1.BookRequest) error
	Child(ctx context.Context, opts app.ChildOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	Status(ctx context.Context, opts app.RemoteOptions) error
	Manifest(ctx context.Context, opts app.RemoteOptions, platform string) error
	Request(ctx context.Context, opts app.RequestOptions) error
	Dirty(ctx context.Context, opts app.RemoteOptions, packages []string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cook",
		Short:         "Cook source assets into platform-ready packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	rootCmd.PersistentFlags().StringP("root", "C", ".", "Project directory holding cook.yaml or cook.toml")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newBookCmd())
	rootCmd.AddCommand(c.newChildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newManifestCmd())
	rootCmd.AddCommand(c.newRequestCmd())
	rootCmd.AddCommand(c.newDirtyCmd())
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

func rootFlag(cmd *cobra.Command) string {
	root, _ := cmd.Flags().GetString("root")
	return root
}

func remoteOptions(cmd *cobra.Command) app.RemoteOptions {
	addr, _ := cmd.Flags().GetString("addr")
	return app.RemoteOptions{Root: rootFlag(cmd), Addr: addr}
}

func addAddrFlag(cmd *cobra.Command) {
	cmd.Flags().String("addr", "", "Server address (defaults to the address recorded by `cook serve`)")
}
