package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// DriverMetadata describes the driver to the host, read from the driver metadata file
type DriverMetadata struct {
	DriverID string            `mapstructure:"driver_id" json:"driver_id"`
	Name     map[string]string `mapstructure:"name" json:"name"`
	Version  struct {
		Driver string `mapstructure:"driver" json:"driver"`
		API    string `mapstructure:"api" json:"api"`
	} `mapstructure:"version" json:"version"`
	Developer struct {
		Name  string `mapstructure:"name" json:"name"`
		Email string `mapstructure:"email" json:"email"`
		URL   string `mapstructure:"url" json:"url"`
	} `mapstructure:"developer" json:"developer"`
	ReleaseDate string `mapstructure:"release_date" json:"release_date"`
}

type Config struct {
	DriverMetadata string `mapstructure:"driverMetadata"`
	ListenAddress  string `mapstructure:"listenAddress"`
	LogLevel       string `mapstructure:"logLevel"`
	LogFile        string `mapstructure:"logFile"`
}

const envPrefix = "LIGHT_DRIVER"

func setDefaults(v *viper.Viper) {
	v.SetDefault("driverMetadata", "light-driver.json")
	v.SetDefault("listenAddress", ":8080")
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "logs/light-driver.log")
}

// ReadConfig reads config.json from the given directories, or the default search
// paths when none are given. A missing config file is not an error, defaults apply.
func ReadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config") // name of config file (without extension)
	v.SetConfigType("json")
	if len(paths) == 0 {
		paths = []string{"/etc/light-driver/", "$HOME/.config/light-driver/", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("fatal error config file: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return &cfg, nil
}

// ReadDriverMetadata reads the driver metadata file at path
func ReadDriverMetadata(path string) (*DriverMetadata, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading driver metadata (%s): %w", path, err)
	}

	metadata := DriverMetadata{}
	if err := v.Unmarshal(&metadata); err != nil {
		return nil, fmt.Errorf("error parsing driver metadata (%s): %w", path, err)
	}
	if metadata.DriverID == "" {
		return nil, fmt.Errorf("error parsing driver metadata (%s): driver_id is required", path)
	}
	return &metadata, nil
}

// Level converts the configured log level, unknown values fall back to info
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
