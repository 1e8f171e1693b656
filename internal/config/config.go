package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"github.com/wheelibin/ringlight/internal/constants"
	"github.com/wheelibin/ringlight/internal/models"
)

type Config struct {
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`

	HTTP struct {
		Address string `mapstructure:"address"`
	} `mapstructure:"http"`

	Health struct {
		PollInterval time.Duration `mapstructure:"pollInterval"`
	} `mapstructure:"health"`

	Entities struct {
		ScanInterval time.Duration `mapstructure:"scanInterval"`
		// entity refreshes per second during a scan
		RefreshRate  float64       `mapstructure:"refreshRate"`
		WriteTimeout time.Duration `mapstructure:"writeTimeout"`
	} `mapstructure:"entities"`

	Simulator struct {
		WriteLatency     time.Duration            `mapstructure:"writeLatency"`
		WriteTimeout     time.Duration            `mapstructure:"writeTimeout"`
		PropagationDelay time.Duration            `mapstructure:"propagationDelay"`
		Devices          []models.SimulatedDevice `mapstructure:"devices"`
		Groups           []models.SimulatedGroup  `mapstructure:"groups"`
	} `mapstructure:"simulator"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("database.path", "ringlight.db")
	v.SetDefault("http.address", "127.0.0.1:8123")
	v.SetDefault("health.pollInterval", constants.DefaultHealthPollInterval)
	v.SetDefault("entities.scanInterval", constants.DefaultEntityScanInterval)
	v.SetDefault("entities.refreshRate", constants.DefaultEntityRefreshRate)
	v.SetDefault("entities.writeTimeout", constants.DefaultRemoteWriteTimeout)
	v.SetDefault("simulator.writeLatency", 200*time.Millisecond)
	v.SetDefault("simulator.writeTimeout", 5*time.Second)
	v.SetDefault("simulator.propagationDelay", 3*time.Second)
}

// InitialiseConfig reads the config file into the global viper instance. An
// explicit path is used as is, otherwise the usual locations are searched.
func InitialiseConfig(configFile string) error {
	v := viper.GetViper()
	setDefaults(v)

	v.SetEnvPrefix("ringlight")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")                   // name of config file (without extension)
		v.SetConfigType("yaml")                     // REQUIRED if the config file does not have the extension in the name
		v.AddConfigPath("/etc/ringlight/")          // path to look for the config file in
		v.AddConfigPath("$HOME/.config/ringlight/") // call multiple times to add many search paths
		v.AddConfigPath(".")                        // optionally look for config in the working directory
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound && configFile == "" {
			log.Warn("no config file found, using defaults")
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

// Load decodes the global viper config.
func Load() (*Config, error) {
	return decode(viper.GetViper())
}

// LoadFile reads a config file into a fresh viper instance.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &cfg, nil
}

func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
