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

package smbios

import (
	"bytes"
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	// devMem is the UNIX-like system memory device location used to
	// find SMBIOS information.
	devMem = "/dev/mem"

	// SMBIOS specification indicates that the entry point should exist
	// between these two memory addresses.
	startAddr = 0x000f0000
	endAddr   = 0x000fffff
)

// memoryStream reads the SMBIOS entry point and structure stream from
// an io.ReadSeeker (usually system memory).
//
// memoryStream is an entry point for tests.
func memoryStream(rs io.ReadSeeker, startAddr, endAddr int) (io.ReadSeekCloser, EntryPoint, error) {
	// Try to find the entry point.
	addr, err := findEntryPoint(rs, startAddr, endAddr)
	if err != nil {
		return nil, nil, err
	}

	// Found it; seek to the location of the entry point.
	if _, err := rs.Seek(int64(addr), io.SeekStart); err != nil {
		return nil, nil, ioErr("seek entry point", err)
	}

	// Read the entry point and determine where the SMBIOS table is.
	ep, err := ParseEntryPoint(rs)
	if err != nil {
		return nil, nil, err
	}

	// Seek to the start of the SMBIOS table.
	tableAddr, tableSize := ep.Table()
	if tableAddr > math.MaxInt64 {
		return nil, nil, errors.Wrapf(ErrHeaderData, "table address 0x%x is not addressable", tableAddr)
	}
	if _, err := rs.Seek(int64(tableAddr), io.SeekStart); err != nil {
		return nil, nil, ioErr("seek table", err)
	}

	// Make a copy of the memory so we don't return a handle to system memory
	// to the caller.
	out := make([]byte, tableSize)
	if _, err := io.ReadFull(rs, out); err != nil {
		return nil, nil, ioErr("read table", err)
	}

	return nopCloser{bytes.NewReader(out)}, ep, nil
}

// findEntryPoint attempts to locate the entry point structure in the io.ReadSeeker
// using the start and end bound as hints for its location.
func findEntryPoint(rs io.ReadSeeker, start, end int) (int, error) {
	// Begin searching at the start bound.
	if _, err := rs.Seek(int64(start), io.SeekStart); err != nil {
		return 0, ioErr("seek", err)
	}

	// Iterate one "paragraph" of memory at a time until we either find the entry point
	// or reach the end bound.
	const paragraph = 16
	b := make([]byte, paragraph)

	for addr := start; addr < end; addr += paragraph {
		if _, err := io.ReadFull(rs, b); err != nil {
			return 0, ioErr("scan memory", err)
		}

		// Both the 32-bit and 64-bit entry point have a similar prefix.
		if bytes.HasPrefix(b, magicPrefix) {
			return addr, nil
		}
	}

	return 0, errors.Wrap(ErrHeaderData, "no SMBIOS entry point found in memory")
}

// devMemStream reads the SMBIOS entry point and structure stream from
// the UNIX-like system /dev/mem device.
func devMemStream(fs afero.Fs) (io.ReadSeekCloser, EntryPoint, error) {
	mem, err := fs.Open(devMem)
	if err != nil {
		return nil, nil, &IOError{Op: "open", Path: devMem, Err: err}
	}
	defer mem.Close()

	return memoryStream(mem, startAddr, endAddr)
}

// nopCloser adds a no-op Close to an in-memory table copy.
type nopCloser struct {
	io.ReadSeeker
}

func (nopCloser) Close() error { return nil }
