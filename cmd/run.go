package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tabanon.dev/pkg/tabanon/internal/domain"
	m "tabanon.dev/pkg/tabanon/internal/model"
)

var runVarsFlag []string
var runMethodFlag string
var runSeedFlag string
var runOffsetFlag float64
var runScaleFlag float64
var runMaxRandomFlag []string
var runOneToOneFlag []string
var runValueRootFlag string
var runNameRootFlag string
var runMappingFlag string
var runSaveNamesFlag string
var runSaveValuesFlag string
var runTableFlag string
var runDictionaryFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run DATASET",
		Short: "Anonymize dataset columns",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			anonymizeArgs, err := parseAnonymizeArgs(cmd, args[0])
			if err != nil {
				return err
			}

			_, err = workflow.Anonymize(cmd.Context(), anonymizeArgs)

			return err
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringSliceVar(&runVarsFlag, varsFlagName, nil, "columns to anonymize, in processing order")
	cobra.CheckErr(cmd.MarkFlagRequired(varsFlagName))

	flags.StringVarP(&runMethodFlag, methodFlagName, "m", viper.GetString(methodConfigKey), "substitution method: sequential, random or transform")
	bindFlagToConfig(flags.Lookup(methodFlagName), methodConfigKey)

	flags.StringVar(&runSeedFlag, seedFlagName, viper.GetString(seedConfigKey), "random seed for reproducible runs")
	bindFlagToConfig(flags.Lookup(seedFlagName), seedConfigKey)

	flags.StringSliceVar(&runMaxRandomFlag, maxRandomFlagName, viper.GetStringSlice(maxRandomConfigKey), "random bound, one for all columns or one per column")
	bindFlagToConfig(flags.Lookup(maxRandomFlagName), maxRandomConfigKey)

	flags.StringVar(&runValueRootFlag, valueRootFlagName, viper.GetString(valueRootConfigKey), "prefix for substituted text values")
	bindFlagToConfig(flags.Lookup(valueRootFlagName), valueRootConfigKey)

	flags.StringVar(&runNameRootFlag, nameRootFlagName, viper.GetString(nameRootConfigKey), "rename anonymized columns to ROOT1, ROOT2, ...")
	bindFlagToConfig(flags.Lookup(nameRootFlagName), nameRootConfigKey)

	flags.Float64Var(&runOffsetFlag, offsetFlagName, 0, "offset added by the transform method")
	flags.Float64Var(&runScaleFlag, scaleFlagName, 0, "factor applied by the transform method")
	flags.StringSliceVar(&runOneToOneFlag, oneToOneFlagName, nil, "random columns whose distinct values must stay distinct")
	flags.StringVar(&runMappingFlag, mappingFlagName, "", "value mapping file used to seed the substitutions")
	flags.StringVar(&runSaveNamesFlag, saveNamesFlagName, "", "write the column rename mapping to this file")
	flags.StringVar(&runSaveValuesFlag, saveValuesFlagName, "", "write the value mapping to this file")

	configureDatasetFlags(cmd, &runTableFlag, &runDictionaryFlag)
}

// configureDatasetFlags adds the flags selecting a table and a dictionary.
func configureDatasetFlags(cmd *cobra.Command, table, dictionary *string) {
	cmd.Flags().StringVar(table, tableFlagName, "", "table to use in a SQLite dataset")
	cmd.Flags().StringVar(dictionary, dictionaryFlagName, "", "dictionary file of a CSV dataset (default DATASET.dict.yaml)")
}

func parseAnonymizeArgs(cmd *cobra.Command, dataset string) (domain.AnonymizeArgs, error) {
	method, err := m.ParseMethod(viper.GetString(methodConfigKey))
	if err != nil {
		return domain.AnonymizeArgs{}, err
	}

	bounds, err := parseBounds(viper.GetStringSlice(maxRandomConfigKey))
	if err != nil {
		return domain.AnonymizeArgs{}, err
	}

	seed, err := parseSeed(viper.GetString(seedConfigKey))
	if err != nil {
		return domain.AnonymizeArgs{}, err
	}

	args := domain.AnonymizeArgs{
		Dataset:    datasetSpec(dataset, runTableFlag, runDictionaryFlag),
		Columns:    trimAll(runVarsFlag),
		Method:     method,
		MaxRandom:  bounds,
		OneToOne:   trimAll(runOneToOneFlag),
		ValueRoot:  viper.GetString(valueRootConfigKey),
		NameRoot:   viper.GetString(nameRootConfigKey),
		Seed:       seed,
		Mapping:    m.Path(runMappingFlag),
		SaveNames:  m.Path(runSaveNamesFlag),
		SaveValues: m.Path(runSaveValuesFlag),
	}

	if cmd.Flags().Changed(offsetFlagName) {
		args.Offset = &runOffsetFlag
	}

	if cmd.Flags().Changed(scaleFlagName) {
		args.Scale = &runScaleFlag
	}

	return args, nil
}

func parseBounds(values []string) ([]int64, error) {
	bounds := make([]int64, 0, len(values))

	for _, value := range trimAll(values) {
		bound, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s value %q: %w", maxRandomFlagName, value, err)
		}

		bounds = append(bounds, bound)
	}

	return bounds, nil
}

func parseSeed(value string) (*uint64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	seed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s value %q: %w", seedFlagName, value, err)
	}

	return &seed, nil
}

// trimAll trims every entry and drops the empty ones.
func trimAll(values []string) []string {
	trimmed := lo.Map(values, func(v string, _ int) string { return strings.TrimSpace(v) })

	return lo.Filter(trimmed, func(v string, _ int) bool { return v != "" })
}
