package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env          string `mapstructure:"env"`           // current application environment (local, dev, prod etc)
	DBPath       string `mapstructure:"db_path"`       // SQLite database path; empty means the default data dir
	CatalogPath  string `mapstructure:"catalog_path"`  // optional JSON catalog overriding the built-in one
	AudioDir     string `mapstructure:"audio_dir"`     // directory for synthesized audio clips
	SnapshotKeep int    `mapstructure:"snapshot_keep"` // how many state snapshots to retain
	TTS          TTS    `mapstructure:"tts"`           // text-to-speech section
}

// TTS contains the speech synthesis service parameters.
type TTS struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"-"` // loaded from environment
	Enabled bool   `mapstructure:"enabled"`
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "shiksha"))
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("snapshot_keep", 10)
	v.SetDefault("audio_dir", defaultAudioDir())
	v.SetDefault("tts.base_url", "https://api.dhruva.ai4bharat.org")
	v.SetDefault("tts.enabled", false)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.SetEnvPrefix("shiksha")
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("db_path", "SHIKSHA_DB")
	_ = v.BindEnv("env", "SHIKSHA_ENV")
	_ = v.BindEnv("tts.api_key", "AI4BHARAT_API_KEY")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TTS.APIKey = v.GetString("tts.api_key")

	return &cfg, nil
}

// defaultAudioDir places clips next to the rest of the app's data.
func defaultAudioDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "audio"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "shiksha", "audio")
}
