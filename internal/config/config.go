// Package config loads the hwinfod configuration from file, environment,
// and defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the hwinfod configuration.
type Config struct {
	HTTPListen    string        `mapstructure:"http_listen"`
	DatabasePath  string        `mapstructure:"database"`
	RetentionDays int           `mapstructure:"retention_days"`
	PurgeInterval time.Duration `mapstructure:"purge_interval"`
	APIKey        string        `mapstructure:"api_key"`
	Agent         AgentConfig   `mapstructure:"agent"`
}

// AgentConfig holds the agent-mode settings.
type AgentConfig struct {
	ServerAddr string        `mapstructure:"server_addr"`
	Interval   time.Duration `mapstructure:"interval"`
	Filtered   bool          `mapstructure:"filtered"`
}

// Load reads configuration from file and environment. Every key has a
// default so environment overrides work without a config file present.
func Load(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("hwinfo")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath("/etc/hwinfo")
	}

	viper.SetDefault("http_listen", ":9590")
	viper.SetDefault("database", "hwinfo.db")
	viper.SetDefault("retention_days", 0)
	viper.SetDefault("purge_interval", "24h")
	viper.SetDefault("api_key", "")
	viper.SetDefault("agent.server_addr", "127.0.0.1:9590")
	viper.SetDefault("agent.interval", "1h")
	viper.SetDefault("agent.filtered", false)

	viper.SetEnvPrefix("HWINFO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
