package commands

import (
	"github.com/spf13/cobra"
	cookv1 "go.trai.ch/cook/api/cook/v1"
	"go.trai.ch/cook/internal/adapters/server"
	"go.trai.ch/cook/internal/app"
)

func (c *CLI) newBookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Cook every selected package for the target platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			req := cookv1.BookRequest{}
			req.Platforms, _ = flags.GetStringSlice("platform")
			req.Maps, _ = flags.GetStringSlice("map")
			req.AllMaps, _ = flags.GetBool("all-maps")
			req.Directories, _ = flags.GetStringSlice("dir")
			req.Packages, _ = flags.GetStringSlice("package")
			req.DLC, _ = flags.GetString("dlc")
			req.BasedOnRelease, _ = flags.GetString("based-on-release")
			req.CreateRelease, _ = flags.GetString("create-release")
			req.Iterative, _ = flags.GetBool("iterative")
			req.MapDependencyGraph, _ = flags.GetBool("map-dependency-graph")
			children, _ := flags.GetInt("children")

			if remote, _ := flags.GetBool("remote"); remote {
				req.Children = max(children, 0)
				return c.app.RemoteBook(cmd.Context(), remoteOptions(cmd), req)
			}

			outputMode, _ := flags.GetString("output-mode")
			if ci, _ := flags.GetBool("ci"); ci {
				outputMode = "linear"
			}
			childPTY, _ := flags.GetBool("child-pty")
			return c.app.Book(cmd.Context(), app.BookOptions{
				Root:       rootFlag(cmd),
				OutputMode: outputMode,
				Children:   children,
				ChildPTY:   childPTY,
				Book:       server.BookOptions(req),
			})
		},
	}
	cmd.Flags().StringSliceP("platform", "p", nil, "Target platform (repeatable, defaults to the configured platforms)")
	cmd.Flags().StringSliceP("map", "m", nil, "Map to cook with its dependencies (repeatable)")
	cmd.Flags().Bool("all-maps", false, "Cook every map under the content root")
	cmd.Flags().StringSlice("dir", nil, "Cook every package under a package path (repeatable)")
	cmd.Flags().StringSlice("package", nil, "Cook a single package (repeatable)")
	cmd.Flags().String("dlc", "", "Cook the named DLC")
	cmd.Flags().String("based-on-release", "", "Release the cook is based on")
	cmd.Flags().String("create-release", "", "Store the resulting manifests as a release")
	cmd.Flags().BoolP("iterative", "i", false, "Keep artifacts whose sources did not change")
	cmd.Flags().Int("children", -1, "Number of child cookers (defaults to the configured number)")
	cmd.Flags().Bool("child-pty", false, "Attach child cookers to a pseudo terminal")
	cmd.Flags().Bool("map-dependency-graph", false, "Write the map dependency graph into the sandbox")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	cmd.Flags().Bool("remote", false, "Run the session on a running `cook serve`")
	addAddrFlag(cmd)
	return cmd
}
