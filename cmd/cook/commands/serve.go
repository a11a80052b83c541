package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cook/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve cooked packages to clients over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Serve(cmd.Context(), app.ServeOptions{
				Root:  rootFlag(cmd),
				Addr:  addr,
				Watch: watch,
			})
		},
	}
	cmd.Flags().String("addr", "", "Listen address (defaults to server.addr from the configuration)")
	cmd.Flags().Bool("watch", true, "Recook packages whose sources change")
	return cmd
}
