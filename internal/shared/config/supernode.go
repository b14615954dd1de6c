package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SuperNodeConfig contains all configuration for a supernode worker process.
type SuperNodeConfig struct {
	SuperLink SuperLinkConnConfig `mapstructure:"superlink"`
	Apps      AppsConfig          `mapstructure:"apps"`
	Logging   LoggingConfig       `mapstructure:"logging"`
}

// SuperLinkConnConfig contains superlink connection configuration.
type SuperLinkConnConfig struct {
	Addr string           `mapstructure:"addr"`
	GRPC ClientGRPCConfig `mapstructure:"grpc"`
}

// ClientGRPCConfig contains gRPC client keepalive configuration.
type ClientGRPCConfig struct {
	KeepaliveTime    time.Duration `mapstructure:"keepalive_time"`
	KeepaliveTimeout time.Duration `mapstructure:"keepalive_timeout"`
}

// AppsConfig locates installed client application bundles.
type AppsConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoadSuperNode loads the supernode configuration from the given path.
// If configPath is empty, it looks for supernode.yaml in the config/ directory.
// Environment variables with FEDLINK_SUPERNODE_ prefix override config file values.
func LoadSuperNode(configPath string) (*SuperNodeConfig, error) {
	v := viper.New()

	v.SetDefault("superlink.addr", "localhost:9091")
	v.SetDefault("superlink.grpc.keepalive_time", 30*time.Second)
	v.SetDefault("superlink.grpc.keepalive_timeout", 5*time.Second)
	v.SetDefault("apps.dir", "./apps")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("supernode")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("FEDLINK_SUPERNODE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg SuperNodeConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}
