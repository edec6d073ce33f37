package cmd

import (
	"github.com/spf13/cobra"

	"tabanon.dev/pkg/tabanon/internal/domain"
	m "tabanon.dev/pkg/tabanon/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view MAPPING_FILE",
		Short: "View a saved value mapping file",
		Long:  "Display every column table of a value mapping file written by run --save-values.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Mapping: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
