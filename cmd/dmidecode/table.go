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
	"os"

	"github.com/pkg/errors"
	"github.com/yywing/go-dmi/smbios"
)

// zeroEntry is the sysfs entry of the first BIOS Information structure.
const zeroEntry = "0-0"

func (cmd *RootCmd) runZero() error {
	cmd.log.Info("Getting table zero")

	s, err := smbios.ReadEntry(cmd.fs, cmd.cfg.EntriesPath(), zeroEntry)
	if err != nil {
		return errors.Wrapf(err, "reading table %s", zeroEntry)
	}

	r := smbios.Decode(s)
	return cmd.print(r, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "Table %s\n", zeroEntry); err != nil {
			return err
		}

		return r.WriteText(w)
	})
}

// openTable opens the structure table from sysfs.  Kernels without the sysfs
// tables fall back to scanning system memory, but only for the host root.
func (cmd *RootCmd) openTable() (io.ReadSeekCloser, smbios.EntryPoint, error) {
	path := cmd.cfg.EntryPointPath()
	if _, err := cmd.fs.Stat(path); os.IsNotExist(err) && cmd.cfg.SysfsRoot == "/" {
		cmd.log.Debugf("No entry point at %s, scanning system memory", path)
		return cmd.stream()
	}

	return smbios.SysfsStream(cmd.fs, path, cmd.cfg.TablePath())
}

func (cmd *RootCmd) runTable(typ uint8) error {
	rc, ep, err := cmd.openTable()
	if err != nil {
		return errors.Wrap(err, "unable to read table")
	}
	defer rc.Close()

	_, size := ep.Table()
	s, err := smbios.NewWalker(rc, int64(size), smbios.WithLogger(cmd.log)).Find(typ)
	if err != nil {
		return errors.Wrapf(err, "unable to read table %d", typ)
	}

	cmd.log.Debugf("Got a table with ID 0x%02x and handle 0x%04x", s.Header.Type, s.Header.Handle)
	for _, str := range s.Strings {
		cmd.log.Debugf("Table has string [%s]", str)
	}

	r := smbios.Decode(s)
	return cmd.print(r, r.WriteText)
}

// rawRecord is the output of the raw record listing.
type rawRecord struct {
	Type    uint8          `yaml:"type"`
	Length  uint8          `yaml:"length"`
	Strings []string       `yaml:"strings,omitempty"`
	Record  *smbios.Record `yaml:"record,omitempty"`
}

func (cmd *RootCmd) runRaw() error {
	path := cmd.cfg.TablePath()
	f, err := cmd.fs.Open(path)
	if err != nil {
		return &smbios.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	rr, err := smbios.ReadRawRecord(f)
	if err != nil {
		return errors.Wrap(err, "unable to read raw record")
	}
	if rr.Type != 0 {
		cmd.log.Debugf("Skipping table with ID %02x", rr.Type)
	}

	out := rawRecord{
		Type:    rr.Type,
		Length:  rr.Length,
		Strings: rr.Strings,
	}
	if rr.Structure != nil {
		out.Record = smbios.Decode(rr.Structure)
	}

	return cmd.print(out, func(w io.Writer) error {
		fmt.Fprintf(w, "Header bytes 1 and 2 are: %02x %02x\n", out.Type, out.Length)
		for i, s := range out.Strings {
			fmt.Fprintf(w, "String %d: %s\n", i+1, s)
		}
		if out.Record == nil {
			return nil
		}

		return out.Record.WriteText(w)
	})
}
