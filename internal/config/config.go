package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "DAI"
	appDir     = ".doctorai"

	KeyAPIBaseURL      = "api.base_url"
	KeyAPITimeout      = "api.timeout"
	KeyStoreBackend    = "store.backend"
	KeyStoreDir        = "store.dir"
	KeyStorePassPrefix = "store.pass_prefix"
	KeyHistoryBackend  = "history.backend"
	KeyHistoryPath     = "history.path"
	KeyLogLevel        = "log.level"
)

const (
	StoreBackendChain = "chain"
	StoreBackendFile  = "file"
	StoreBackendPass  = "pass"

	HistoryBackendTOML   = "toml"
	HistoryBackendSQLite = "sqlite"
)

type Config struct {
	APIBaseURL     string
	APITimeout     time.Duration
	StoreBackend   string
	StoreDir       string
	PassPrefix     string
	HistoryBackend string
	HistoryPath    string
	LogLevel       string

	// Viper is handed to adapters that read their own keys.
	Viper *viper.Viper
}

// Load reads .env from the working directory, then ~/.doctorai/config.toml,
// then DAI_* environment variables.
func Load() (Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	return LoadFrom(homeDir, ".env")
}

func LoadFrom(homeDir string, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	configDir := filepath.Join(homeDir, appDir)

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyAPIBaseURL, "http://127.0.0.1:8001")
	v.SetDefault(KeyAPITimeout, 30*time.Second)
	v.SetDefault(KeyStoreBackend, StoreBackendChain)
	v.SetDefault(KeyStoreDir, filepath.Join(configDir, "store"))
	v.SetDefault(KeyStorePassPrefix, "doctorai")
	v.SetDefault(KeyHistoryBackend, HistoryBackendTOML)
	v.SetDefault(KeyLogLevel, "warn")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	historyBackend := strings.ToLower(strings.TrimSpace(v.GetString(KeyHistoryBackend)))
	switch historyBackend {
	case HistoryBackendTOML:
		v.SetDefault(KeyHistoryPath, filepath.Join(configDir, "history.toml"))
	case HistoryBackendSQLite:
		v.SetDefault(KeyHistoryPath, filepath.Join(configDir, "history.db"))
	default:
		return Config{}, fmt.Errorf("unsupported history backend %q", historyBackend)
	}

	storeBackend := strings.ToLower(strings.TrimSpace(v.GetString(KeyStoreBackend)))
	switch storeBackend {
	case StoreBackendChain, StoreBackendFile, StoreBackendPass:
	default:
		return Config{}, fmt.Errorf("unsupported store backend %q", storeBackend)
	}

	timeout := v.GetDuration(KeyAPITimeout)
	if timeout <= 0 {
		return Config{}, fmt.Errorf("%s must be positive", KeyAPITimeout)
	}

	return Config{
		APIBaseURL:     strings.TrimSpace(v.GetString(KeyAPIBaseURL)),
		APITimeout:     timeout,
		StoreBackend:   storeBackend,
		StoreDir:       v.GetString(KeyStoreDir),
		PassPrefix:     v.GetString(KeyStorePassPrefix),
		HistoryBackend: historyBackend,
		HistoryPath:    v.GetString(KeyHistoryPath),
		LogLevel:       v.GetString(KeyLogLevel),
		Viper:          v,
	}, nil
}

// ParseLevel maps a configured level name to a slog level. Unknown names fall
// back to warn.
func ParseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelWarn
	}
	return lvl
}

func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
