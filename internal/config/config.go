// Package config loads padframe settings from flags, the environment and an
// optional padframe.yaml file, in that order of precedence.
package config

import (
	"errors"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	// ListenAddr is the HTTP listen address of the state viewer.
	ListenAddr string
	// AxisSensitivity is the stick dead-zone threshold fixed on each pad at
	// registration time. Triggers are not affected.
	AxisSensitivity float64
	// Tray enables the system tray icon on Windows.
	Tray bool
}

// Load parses os.Args and returns the effective configuration.
func Load() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("padframe", pflag.ContinueOnError)
	fs.String("listen", ":8080", "HTTP listen address for the state viewer")
	fs.Float64("sensitivity", 0.25, "stick axis sensitivity for newly connected pads")
	fs.Bool("tray", true, "show the system tray icon (Windows only)")
	configPath := fs.String("config", "", "path to a config file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	v.SetEnvPrefix("PADFRAME")
	v.AutomaticEnv()

	if *configPath != "" {
		v.SetConfigFile(*configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("padframe")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	return &Config{
		ListenAddr:      v.GetString("listen"),
		AxisSensitivity: v.GetFloat64("sensitivity"),
		Tray:            v.GetBool("tray"),
	}, nil
}
