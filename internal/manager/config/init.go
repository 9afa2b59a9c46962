package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cutlineapp/cutline/pkg/logger"
)

type flagStruct struct {
	configFilePath string
}

var flags flagStruct

func init() {
	pflag.String("host", "127.0.0.1", "ip address for the host")
	pflag.Int("port", 7420, "port to serve from")
	pflag.StringVarP(&flags.configFilePath, "config", "c", "", "config file to use")
}

// Initialize loads configuration at startup: defaults, then the
// config file if one is found, then flag/environment overrides.
func Initialize() (*Config, error) {
	cfg := &Config{
		main:      viper.New(),
		overrides: viper.New(),
	}

	cfg.setDefaults()
	cfg.initOverrides()

	if err := cfg.initConfig(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// InitializeEmpty returns a config holding only defaults. Used by
// tests.
func InitializeEmpty() *Config {
	cfg := &Config{
		main:      viper.New(),
		overrides: viper.New(),
	}
	cfg.setDefaults()
	return cfg
}

func bindEnv(v *viper.Viper, key string) {
	if err := v.BindEnv(key); err != nil {
		panic(fmt.Sprintf("unable to set environment key (%v): %v", key, err))
	}
}

func (i *Config) initOverrides() {
	v := i.overrides

	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		logger.Infof("failed to bind flags: %v", err)
	}

	v.SetEnvPrefix("cutline") // will be uppercased automatically
	bindEnv(v, Host)          // CUTLINE_HOST
	bindEnv(v, Port)          // CUTLINE_PORT
	bindEnv(v, LogLevel)      // CUTLINE_LOG_LEVEL
}

func (i *Config) initConfig() error {
	v := i.main

	v.SetConfigType("yml")

	configFile := ""
	envConfigFile := os.Getenv("CUTLINE_CONFIG_FILE")

	switch {
	case flags.configFilePath != "":
		configFile = flags.configFilePath
	case envConfigFile != "":
		configFile = envConfigFile
	default:
		// no config file is a valid new system; defaults apply
		return nil
	}

	v.SetConfigFile(configFile)

	if _, err := os.Stat(configFile); err != nil {
		// a missing explicit config file is tolerated; defaults apply
		logger.Warnf("config file %s not found, using defaults", configFile)
		return nil
	}

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}

	return nil
}
