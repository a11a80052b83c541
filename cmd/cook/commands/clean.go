package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cook/internal/app"
	"go.trai.ch/cook/internal/core/domain"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove cooked artifacts and manifests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, _ := cmd.Flags().GetStringSlice("platform")
			all, _ := cmd.Flags().GetBool("all")

			platforms := make([]domain.PlatformID, 0, len(names))
			for _, n := range names {
				platforms = append(platforms, domain.NewPlatformID(n))
			}
			return c.app.Clean(cmd.Context(), app.CleanOptions{
				Root:      rootFlag(cmd),
				Platforms: platforms,
				State:     all,
			})
		},
	}
	cmd.Flags().StringSliceP("platform", "p", nil, "Platform to clean (repeatable, defaults to the configured platforms)")
	cmd.Flags().BoolP("all", "a", false, "Also remove the internal state directory")
	return cmd
}
