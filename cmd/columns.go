package cmd

import (
	"github.com/spf13/cobra"

	"tabanon.dev/pkg/tabanon/internal/domain"
)

var columnsTableFlag string
var columnsDictionaryFlag string

// columnsCmd represents the columns command.
var columnsCmd = newColumnsCmd()

func newColumnsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns DATASET",
		Short: "List the columns of a dataset",
		Long:  columnsLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Columns(cmd.Context(), domain.ColumnsArgs{
				Dataset: datasetSpec(args[0], columnsTableFlag, columnsDictionaryFlag),
			})
		},
	}

	configureDatasetFlags(cmd, &columnsTableFlag, &columnsDictionaryFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}
