package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"tabanon.dev/pkg/tabanon/internal/adapter"
	m "tabanon.dev/pkg/tabanon/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "tabanon"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	varsFlagName       = "vars"
	methodFlagName     = "method"
	seedFlagName       = "seed"
	offsetFlagName     = "offset"
	scaleFlagName      = "scale"
	maxRandomFlagName  = "max-random"
	oneToOneFlagName   = "one-to-one"
	valueRootFlagName  = "value-root"
	nameRootFlagName   = "name-root"
	mappingFlagName    = "mapping"
	saveNamesFlagName  = "save-names"
	saveValuesFlagName = "save-values"
	tableFlagName      = "table"
	dictionaryFlagName = "dictionary"
	logFileFlagName    = "log-file"
	verboseFlagName    = "verbose"

	methodConfigKey        = "anonymize.method"
	maxRandomConfigKey     = "anonymize.max_random"
	valueRootConfigKey     = "anonymize.value_root"
	nameRootConfigKey      = "anonymize.name_root"
	seedConfigKey          = "anonymize.seed"
	textWidthConfigKey     = "dataset.text_width"
	maxNameLengthConfigKey = "dataset.max_name_length"
	uiTUIConfigKey         = "ui.tui"

	defaultMethod    = "sequential"
	defaultValueRoot = ""
	defaultNameRoot  = ""
	defaultSeed      = ""
	defaultUITUI     = true

	envPrefix = "TABANON"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".tabanon.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(methodConfigKey, defaultMethod)
	viper.SetDefault(maxRandomConfigKey, []string{})
	viper.SetDefault(valueRootConfigKey, defaultValueRoot)
	viper.SetDefault(nameRootConfigKey, defaultNameRoot)
	viper.SetDefault(seedConfigKey, defaultSeed)
	viper.SetDefault(textWidthConfigKey, adapter.DefaultTextWidth)
	viper.SetDefault(maxNameLengthConfigKey, adapter.DefaultMaxNameLength)
	viper.SetDefault(uiTUIConfigKey, defaultUITUI)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// datasetSpec builds the dataset selection from a path argument and the dataset.* settings.
func datasetSpec(path, table, dictionary string) adapter.DatasetSpec {
	return adapter.DatasetSpec{
		Path:          m.Path(path),
		Table:         table,
		Dictionary:    m.Path(dictionary),
		TextWidth:     viper.GetInt(textWidthConfigKey),
		MaxNameLength: viper.GetInt(maxNameLengthConfigKey),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
