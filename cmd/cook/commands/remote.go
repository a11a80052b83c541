package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cook/internal/app"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Status(cmd.Context(), remoteOptions(cmd))
		},
	}
	addAddrFlag(cmd)
	return cmd
}

func (c *CLI) newManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest <platform>",
		Short: "List the packages a running server cooked for a platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Manifest(cmd.Context(), remoteOptions(cmd), args[0])
		},
	}
	addAddrFlag(cmd)
	return cmd
}

func (c *CLI) newRequestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request <platform> <package>",
		Short: "Fetch one cooked package from a running server",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			return c.app.Request(cmd.Context(), app.RequestOptions{
				RemoteOptions: remoteOptions(cmd),
				Platform:      args[0],
				Path:          args[1],
				Out:           out,
			})
		},
	}
	cmd.Flags().StringP("out", "o", "", "Write the cooked bytes to a file instead of stdout")
	addAddrFlag(cmd)
	return cmd
}

func (c *CLI) newDirtyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirty <package>...",
		Short: "Tell a running server that packages changed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Dirty(cmd.Context(), remoteOptions(cmd), args)
		},
	}
	addAddrFlag(cmd)
	return cmd
}
