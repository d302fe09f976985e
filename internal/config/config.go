package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Auction AuctionConfig `mapstructure:"auction"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type AuctionConfig struct {
	Validity     time.Duration `mapstructure:"validity"`
	Seed         bool          `mapstructure:"seed"`
	SeedInterval time.Duration `mapstructure:"seed_interval"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("auction.validity", 5*time.Minute)
	v.SetDefault("auction.seed", true)
	v.SetDefault("auction.seed_interval", 150*time.Second)
	v.SetDefault("log.level", "info")

	_ = v.BindEnv("server.host", "HOST")
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("auction.validity", "AUCTION_VALIDITY")
	_ = v.BindEnv("auction.seed", "AUCTION_SEED")
	_ = v.BindEnv("auction.seed_interval", "AUCTION_SEED_INTERVAL")
	_ = v.BindEnv("log.level", "LOG_LEVEL")

	return v
}

// Load reads an optional .env file, then config.yaml from the usual places,
// then the environment. Missing files are not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", configPath, err)
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the server cannot start with
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server.port %d", c.Server.Port)
	}
	if c.Auction.Validity <= 0 {
		return fmt.Errorf("config: auction.validity must be positive, got %s", c.Auction.Validity)
	}
	if c.Auction.Seed && c.Auction.SeedInterval <= 0 {
		return fmt.Errorf("config: auction.seed_interval must be positive, got %s", c.Auction.SeedInterval)
	}
	return nil
}

// Addr returns the listen address for http.Server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
