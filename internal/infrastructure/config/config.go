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

// Config is the full application configuration, read from frotafin.yaml
// (current dir or ~/.config/frotafin) with FROTAFIN_* environment
// overrides. Every field has a usable default: the application must start
// even with no config file at all.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Data     DataConfig     `mapstructure:"data"`
	Sync     SyncConfig     `mapstructure:"sync"`
	AI       AIConfig       `mapstructure:"ai"`
	Log      LogConfig      `mapstructure:"log"`
	Payments PaymentsConfig `mapstructure:"payments"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DataConfig selects the local persistence driver.
type DataConfig struct {
	Driver string `mapstructure:"driver"` // file, sqlite or memory
	Dir    string `mapstructure:"dir"`
}

// SyncConfig selects and parameterizes the remote blob backend. Backend is
// one of dynamo, redis, github, sheets, pantry, or empty to disable sync.
type SyncConfig struct {
	Backend string        `mapstructure:"backend"`
	Key     string        `mapstructure:"key"` // user-chosen sync key / blob name
	Timeout time.Duration `mapstructure:"timeout"`

	DynamoTable  string `mapstructure:"dynamo_table"`
	RedisAddr    string `mapstructure:"redis_addr"`
	GitHubOwner  string `mapstructure:"github_owner"`
	GitHubRepo   string `mapstructure:"github_repo"`
	GitHubBranch string `mapstructure:"github_branch"`
	GitHubPath   string `mapstructure:"github_path"`
	SheetURL     string `mapstructure:"sheet_url"`
	PantryID     string `mapstructure:"pantry_id"`
}

type AIConfig struct {
	Model string `mapstructure:"model"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type PaymentsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads the configuration. A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("frotafin")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "frotafin"))
	}

	v.SetEnvPrefix("FROTAFIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("data.driver", "file")
	v.SetDefault("data.dir", defaultDataDir())
	v.SetDefault("sync.backend", "")
	v.SetDefault("sync.key", "frotafin")
	v.SetDefault("sync.timeout", 15*time.Second)
	v.SetDefault("sync.dynamo_table", "frotafin_backups")
	v.SetDefault("sync.redis_addr", "localhost:6379")
	v.SetDefault("sync.github_owner", "eduardopaniago")
	v.SetDefault("sync.github_repo", "GestaoFrota")
	v.SetDefault("sync.github_branch", "main")
	v.SetDefault("sync.github_path", "database.json")
	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("payments.enabled", true)
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".frotafin"
	}
	return filepath.Join(home, ".frotafin")
}
