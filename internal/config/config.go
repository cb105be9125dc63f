// Package config loads viewer settings from an optional config file via
// Viper. A missing file is not an error: defaults apply, and command-line
// flags override whatever was loaded.
package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

// Config is the root settings struct for the viewer.
type Config struct {
	// Sensitivity scales drag-to-pan travel (columns per cell of pointer
	// movement).
	Sensitivity float64 `mapstructure:"sensitivity"`

	// NameColWidth is the fixed width of the sequence-name column.
	NameColWidth int `mapstructure:"name_col_width"`

	// LogFile receives logs while the TUI owns the terminal; empty
	// disables file logging.
	LogFile string `mapstructure:"log_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads the config at path, or searches the default locations when
// path is empty. A missing file returns defaults; a malformed file is an
// error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("sensitivity", 1.0)
	v.SetDefault("name_col_width", 20)
	v.SetDefault("log_level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("msaview")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/msaview")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var pathErr *fs.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
