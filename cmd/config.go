package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"gooze.dev/pkg/hardlit/internal/domain"
	"gooze.dev/pkg/hardlit/internal/domain/literals"
	m "gooze.dev/pkg/hardlit/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "hardlit"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	noCacheFlagName     = "no-cache"
	excludeFlagName     = "exclude"
	runParallelFlagName = "parallel"
	runShardFlagName    = "shard"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	runParallelConfigKey = "run.parallel"
	excludeConfigKey     = "paths.exclude"
	gitignoreConfigKey   = "paths.gitignore"
	ruleSeverityKey      = "rule.severity"
	whitelistExactKey    = "whitelist.exact"
	whitelistSuffixKey   = "whitelist.suffix"
	whitelistPrefixKey   = "whitelist.prefix"

	defaultReportsDir   = ".hardlit-reports"
	defaultNoCache      = false
	defaultRunParallel  = 1
	defaultGitignore    = true
	defaultRuleSeverity = string(m.SeverityWarning)

	envPrefix = "HARDLIT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".hardlit.log"
	defaultLogLevel      = "info"
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

	setDefaults()
	readConfigFile(os.Stderr)
}

// readConfigFile loads hardlit.yaml when present. Any other failure is reported
// on w and the defaults stay in effect.
func readConfigFile(w io.Writer) {
	err := viper.ReadInConfig()
	if err == nil {
		return
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return
	}

	slog.New(slog.NewTextHandler(w, nil)).
		Warn("ignoring config file, using defaults", "file", viper.ConfigFileUsed(), "error", err)
}

func setDefaults() {
	whitelist := literals.DefaultWhitelist()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(noCacheFlagName, defaultNoCache)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(gitignoreConfigKey, defaultGitignore)
	viper.SetDefault(ruleSeverityKey, defaultRuleSeverity)
	viper.SetDefault(whitelistExactKey, whitelist.Exact)
	viper.SetDefault(whitelistSuffixKey, whitelist.Suffix)
	viper.SetDefault(whitelistPrefixKey, whitelist.Prefix)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// lintConfig reads the rule settings from config and environment.
func lintConfig() domain.LintConfig {
	return domain.LintConfig{
		Whitelist: literals.Whitelist{
			Exact:  viper.GetStringSlice(whitelistExactKey),
			Suffix: viper.GetStringSlice(whitelistSuffixKey),
			Prefix: viper.GetStringSlice(whitelistPrefixKey),
		},
		Severity: ruleSeverity(),
	}
}

func ruleSeverity() m.Severity {
	return m.ParseSeverity(viper.GetString(ruleSeverityKey))
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
// By default it logs at the configured level; if verbose is true it logs at Debug.
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
