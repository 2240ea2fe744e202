// seehuhn.de/go/rocon - rounded corners for HTML documents
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Package config reads the settings of the rocon command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"seehuhn.de/go/rocon"
)

// Config holds the settings of the rocon command.
type Config struct {
	// Backend is one of [rocon.BackendNames].
	Backend string

	// Native rounds the corners of regions without the force flag with
	// border-radius declarations.
	Native bool

	Capabilities CapabilitiesConfig
	Log          LogConfig
}

// CapabilitiesConfig describes the features of the target browser.
type CapabilitiesConfig struct {
	Canvas    bool
	InlineSVG bool `mapstructure:"inline_svg"`
	SVGImage  bool `mapstructure:"svg_image"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// Load reads the configuration from the TOML file at path and from the
// environment.  If path is empty, $ROCON_CONFIG is used, or else
// ~/.config/rocon/config.toml.  A missing default file is not an error.
// Environment variables use the prefix ROCON_, for example
// ROCON_LOG_LEVEL=debug.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("backend", "auto")
	v.SetDefault("native", false)
	v.SetDefault("capabilities.canvas", true)
	v.SetDefault("capabilities.inline_svg", true)
	v.SetDefault("capabilities.svg_image", true)
	v.SetDefault("log.level", "warn")

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("ROCON_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "rocon"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ROCON")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Level returns the configured log level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return l, nil
}

// Caps returns the browser capabilities for backend selection.
func (c Config) Caps() rocon.Capabilities {
	return rocon.Capabilities{
		Canvas:    c.Capabilities.Canvas,
		InlineSVG: c.Capabilities.InlineSVG,
		SVGImage:  c.Capabilities.SVGImage,
	}
}

// NewEngine returns an engine configured according to c.
func (c Config) NewEngine(sheet rocon.Stylesheet) (*rocon.Engine, error) {
	b, err := rocon.BackendByName(c.Backend, c.Caps())
	if err != nil {
		return nil, err
	}
	e := rocon.NewEngine(b, sheet)
	if c.Native {
		e.Native = rocon.NativeProperties[:]
	}
	return e, nil
}
