// Copyright 2017-2018 DigitalOcean.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config resolves the settings of the dmidecode command from its
// flags and the environment.
package config

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/yywing/go-dmi/internal/sysfs"
	"github.com/yywing/go-dmi/smbios"
)

// Flag names bound to configuration keys.
const (
	FlagDebug     = "debug"
	FlagOutput    = "output"
	FlagSysfsRoot = "sysfs-root"
)

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config is the resolved configuration.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogStyle  string `mapstructure:"log_style"`
	Debug     bool   `mapstructure:"debug"`
	Output    string `mapstructure:"output"`
	SysfsRoot string `mapstructure:"sysfs_root"`
}

// Load reads the configuration from flags and the environment.  Flags set
// on the command line take precedence over the environment.
func Load(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_style", "never")
	v.SetDefault("debug", false)
	v.SetDefault("output", OutputText)
	v.SetDefault("sysfs_root", "/")

	for key, env := range map[string]string{
		"log_level":  "LOG_LEVEL",
		"log_style":  "LOG_STYLE",
		"output":     "DMI_OUTPUT",
		"sysfs_root": "DMI_SYSFS_ROOT",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.Wrapf(err, "bind %s", env)
		}
	}

	for key, name := range map[string]string{
		"debug":      FlagDebug,
		"output":     FlagOutput,
		"sysfs_root": FlagSysfsRoot,
	} {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, errors.Wrapf(err, "bind --%s", name)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decode configuration")
	}

	c.Output = strings.ToLower(c.Output)
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return nil, errors.Errorf("unknown output format %q", c.Output)
	}

	if c.SysfsRoot == "" {
		c.SysfsRoot = "/"
	}

	return &c, nil
}

// path places an absolute sysfs path below SysfsRoot.
func (c *Config) path(p string) string {
	return filepath.Join(c.SysfsRoot, p)
}

// EntryPointPath is the location of the SMBIOS entry point.
func (c *Config) EntryPointPath() string { return c.path(smbios.SysfsEntryPoint) }

// TablePath is the location of the SMBIOS structure table.
func (c *Config) TablePath() string { return c.path(smbios.SysfsTable) }

// EntriesPath is the directory of per-structure entries.
func (c *Config) EntriesPath() string { return c.path(smbios.SysfsEntries) }

// IDPath is the directory of DMI id attributes.
func (c *Config) IDPath() string { return c.path(sysfs.IDRoot) }
