package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".kiroku"
	envPrefix  = "KIROKU"

	KeyStorageDriver     = "storage.driver"
	KeyStoragePath       = "storage.path"
	KeyCodeforcesBaseURL = "judges.codeforces.base_url"
	KeyAtCoderBaseURL    = "judges.atcoder.base_url"
	KeyHTTPTimeout       = "http.timeout"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
	KeyWatchSchedule     = "watch.schedule"

	DefaultStorageDriver     = "diskv"
	DefaultCodeforcesBaseURL = "https://codeforces.com/api/"
	DefaultAtCoderBaseURL    = "https://kenkoooo.com/atcoder/atcoder-api/v3/"
	DefaultHTTPTimeout       = 30 * time.Second
	DefaultLogLevel          = "warn"
	DefaultLogFormat         = "console"
	DefaultWatchSchedule     = "@every 1h"
)

type Config struct {
	Storage StorageConfig
	Judges  JudgesConfig
	HTTP    HTTPConfig
	Log     LogConfig
	Watch   WatchConfig
}

type StorageConfig struct {
	Driver string
	Path   string
}

type JudgesConfig struct {
	CodeforcesBaseURL string
	AtCoderBaseURL    string
}

type HTTPConfig struct {
	Timeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type WatchConfig struct {
	Schedule string
}

// Load reads ~/.kiroku/config.toml when present and layers KIROKU_* environment
// variables on top of the defaults.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyStorageDriver, DefaultStorageDriver)
	v.SetDefault(KeyStoragePath, filepath.Join(homeDir, configDir, "data"))
	v.SetDefault(KeyCodeforcesBaseURL, DefaultCodeforcesBaseURL)
	v.SetDefault(KeyAtCoderBaseURL, DefaultAtCoderBaseURL)
	v.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
	v.SetDefault(KeyWatchSchedule, DefaultWatchSchedule)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	storagePath := v.GetString(KeyStoragePath)
	if storagePath == "" {
		return Config{}, errors.New("storage path is empty")
	}
	storagePath, err = filepath.Abs(storagePath)
	if err != nil {
		return Config{}, fmt.Errorf("resolve storage path: %w", err)
	}

	return Config{
		Storage: StorageConfig{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString(KeyStorageDriver))),
			Path:   filepath.Clean(storagePath),
		},
		Judges: JudgesConfig{
			CodeforcesBaseURL: v.GetString(KeyCodeforcesBaseURL),
			AtCoderBaseURL:    v.GetString(KeyAtCoderBaseURL),
		},
		HTTP: HTTPConfig{
			Timeout: v.GetDuration(KeyHTTPTimeout),
		},
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		Watch: WatchConfig{
			Schedule: v.GetString(KeyWatchSchedule),
		},
	}, nil
}
