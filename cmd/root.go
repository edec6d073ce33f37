// Package cmd provides the root command and CLI setup for tabanon.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tabanon.dev/pkg/tabanon/internal/adapter"
	"tabanon.dev/pkg/tabanon/internal/controller"
	"tabanon.dev/pkg/tabanon/internal/domain"
)

var fileSystem adapter.FileSystem
var datasetOpener adapter.DatasetOpener
var mappingStore adapter.MappingStore
var workflow domain.Workflow
var ui controller.UI

// logFileFlag and verboseFlag are root-level flags shared by every command.
var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, viper.GetBool(uiTUIConfigKey) && controller.IsTTY(os.Stdout))
	fileSystem = adapter.NewLocalFileSystem()
	datasetOpener = adapter.NewLocalDatasetOpener(fileSystem)
	mappingStore = adapter.NewCSVMappingStore(fileSystem)
	workflow = domain.NewWorkflow(datasetOpener, mappingStore, ui)
}

const datasetHelp = `Supported datasets:
  - file.csv                          header row plus optional file.dict.yaml dictionary
  - file.db, file.sqlite, file.sqlite3 SQLite database, the table is chosen with --table`

const rootLongDescription = `Tabanon replaces the values of selected dataset columns with substitutes
(sequential ids, bounded random numbers or a linear transform), clears their
value labels, optionally renames them, and records every substitution in a
mapping file that later runs can reuse.

` + datasetHelp

const runLongDescription = `Anonymize the columns named by --vars in DATASET.

Values are replaced in place. Nothing is written to the dataset when the run
fails before it completes.

` + datasetHelp

const columnsLongDescription = `List the columns of DATASET with their kind, width, value labels and
missing-value declarations.

` + datasetHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "tabanon",
		Short:        "Tabular value anonymizer",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a root command with its persistent flags, without subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
