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
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/yywing/go-dmi/smbios"
)

// entryPoint is the output of the entry point listing.
type entryPoint struct {
	Anchor  string `yaml:"anchor"`
	Variant string `yaml:"variant"`
	Version string `yaml:"version"`
	Address string `yaml:"address"`
	Size    int    `yaml:"size"`
}

func (cmd *RootCmd) runEntryPoint() error {
	ep, err := smbios.ReadEntryPoint(cmd.fs, cmd.cfg.EntryPointPath())
	if err != nil {
		return errors.Wrap(err, "unable to read entry point")
	}

	major, minor, rev := ep.Version()
	addr, size := ep.Table()
	out := entryPoint{
		Version: fmt.Sprintf("%d.%d.%d", major, minor, rev),
		Address: fmt.Sprintf("0x%x", addr),
		Size:    size,
	}

	switch ep := ep.(type) {
	case *smbios.EntryPoint32Bit:
		out.Anchor, out.Variant = ep.Anchor, "SMBIOS 2.1"
	case *smbios.EntryPoint64Bit:
		out.Anchor, out.Variant = ep.Anchor, "SMBIOS 3.0"
	}
	cmd.log.Infof("Found a %s entrypoint!", out.Variant)

	return cmd.print(out, func(w io.Writer) error {
		_, err := fmt.Fprintf(w,
			"SMBIOS spec version: %s\nUsing %s entrypoint\nTable is at location %s\nTable size is %d bytes\n",
			out.Version, out.Variant, out.Address, out.Size)
		return err
	})
}
