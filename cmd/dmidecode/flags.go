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

package main

import (
	flag "github.com/spf13/pflag"
	"github.com/yywing/go-dmi/internal/config"
)

// Flags holds the command flags.
type Flags struct {
	Zero       bool
	Table      uint8
	EntryPoint bool
	Raw        bool
	Debug      bool
	Output     string
	SysfsRoot  string
}

// SetFlags applies the command flags
func SetFlags(flags *flag.FlagSet) *Flags {
	f := &Flags{}

	flags.BoolVarP(&f.Zero, "zero", "0", false, "Print table 0 via the /sys/firmware/dmi/entries interface")
	flags.Uint8VarP(&f.Table, "table", "t", 0, "Print the given table via /sys/firmware/dmi/tables")
	flags.BoolVarP(&f.EntryPoint, "entrypoint", "e", false, "Read the SMBIOS entry point")
	flags.BoolVarP(&f.Raw, "raw", "r", false, "Print the type, length and strings of the first table record")
	flags.BoolVarP(&f.Debug, config.FlagDebug, "d", false, "Enable debug output. You can also use LOG_LEVEL to set the log level")
	flags.StringVarP(&f.Output, config.FlagOutput, "o", config.OutputText, "The output format to use. Can be either text or yaml. You can also use DMI_OUTPUT to set this")

	flags.StringVar(&f.SysfsRoot, config.FlagSysfsRoot, "/", "Directory sysfs paths are resolved against. You can also use DMI_SYSFS_ROOT to set this")
	_ = flags.MarkHidden(config.FlagSysfsRoot)

	return f
}
