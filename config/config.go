package config

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/chessdroid108/TagArena/constants"
)

// Config holds everything the game reads at startup
type Config struct {
	LogLevel string `mapstructure:"logLevel"`
	LogFile  string `mapstructure:"logFile"`

	Level        string `mapstructure:"level"`
	Players      int    `mapstructure:"players"`
	RoundSeconds int    `mapstructure:"roundSeconds"`
	ScoreToWin   int    `mapstructure:"scoreToWin"`
	Seed         int64  `mapstructure:"seed"`

	Audio AudioConfig `mapstructure:"audio"`
}

// AudioConfig holds the sound settings
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration with defaults, an optional config file and
// TAGARENA_* environment overrides. A missing file is not an error.
func Load(configDir string) (Config, error) {
	v := viper.New()

	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "tagarena.log")

	v.SetDefault("level", "Classic")
	v.SetDefault("players", 2)
	v.SetDefault("roundSeconds", constants.RoundSeconds)
	v.SetDefault("scoreToWin", constants.ScoreToWin)
	v.SetDefault("seed", 0)

	v.SetDefault("audio.enabled", true)

	v.SetConfigName("tagarena")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("TAGARENA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Players < 2 {
		cfg.Players = 2
	}
	if cfg.Players > 4 {
		cfg.Players = 4
	}
	return cfg, nil
}
