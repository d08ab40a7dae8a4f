package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"zipup.dev/pkg/zipup/internal/adapter"
	"zipup.dev/pkg/zipup/internal/domain"
	m "zipup.dev/pkg/zipup/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName = "config"
	configType     = "yaml"
	appDirName     = "zipup"

	outFlagName         = "out"
	filenameFlagName    = "filename"
	configFlagName      = "config"
	ignoreFlagName      = "ignore"
	licenseFlagName     = "license"
	compressionFlagName = "compression"
	quietFlagName       = "quiet"
	statsOutFlagName    = "stats-out"
	watchFlagName       = "watch"
	minifyFlagName      = "minify"
	sourceMapFlagName   = "source-map"
	externalFlagName    = "external"
	targetFlagName      = "target"
	noCacheFlagName     = "no-cache"

	filenameConfigKey    = "build.filename"
	compressionConfigKey = "build.compression"
	noCacheConfigKey     = "build.no_cache"
	cacheDirKey          = "cache.dir"
	interpreterKey       = "run.interpreter"

	envPrefix = "ZIPUP"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

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
	viper.SetConfigType(configType)

	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, appDirName))
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(filenameConfigKey, m.DefaultFilename)
	viper.SetDefault(compressionConfigKey, m.DefaultCompression)
	viper.SetDefault(noCacheConfigKey, false)
	viper.SetDefault(cacheDirKey, string(adapter.DefaultCacheDir()))
	viper.SetDefault(interpreterKey, domain.DefaultInterpreter)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename())
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	_ = readToolConfig(viper.GetViper())
}

// readToolConfig loads the tool config file. A missing file is not an error;
// an unreadable or malformed one is logged and returned, and defaults apply.
func readToolConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	slog.Warn("Failed to read tool config", "file", v.ConfigFileUsed(), "error", err)

	return err
}

func defaultLogFilename() string {
	return filepath.Join(os.TempDir(), appDirName, appDirName+".log")
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
		logPath = defaultLogFilename()
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
