package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cook/internal/adapters/process"
	"go.trai.ch/cook/internal/app"
)

func (c *CLI) newChildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    process.ChildCommand,
		Short:  "Cook a partition handed over by a parent cooker (internal use)",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			response, _ := cmd.Flags().GetString("response-file")
			result, _ := cmd.Flags().GetString("result-file")
			return c.app.Child(cmd.Context(), app.ChildOptions{
				Root:         rootFlag(cmd),
				ResponseFile: response,
				ResultFile:   result,
			})
		},
	}
	cmd.Flags().String("response-file", "", "Partition written by the parent")
	cmd.Flags().String("result-file", "", "Where to write the cook records")
	_ = cmd.MarkFlagRequired("response-file")
	_ = cmd.MarkFlagRequired("result-file")
	return cmd
}
