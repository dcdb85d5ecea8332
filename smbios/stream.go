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
	"io"

	"github.com/spf13/afero"
)

// Locations of the SMBIOS data exposed by Linux sysfs.
const (
	SysfsEntryPoint = "/sys/firmware/dmi/tables/smbios_entry_point"
	SysfsTable      = "/sys/firmware/dmi/tables/DMI"
	SysfsEntries    = "/sys/firmware/dmi/entries"
)

// Stream locates and opens a stream of SMBIOS data and the SMBIOS entry
// point from an operating system-specific location.  The stream must be
// closed after decoding to free its resources.
//
// If no suitable location is found, an error is returned.
func Stream() (io.ReadSeekCloser, EntryPoint, error) {
	rc, ep, err := stream()
	if err != nil {
		return nil, nil, err
	}

	// The io.ReadSeekCloser from stream could be any one of a number of
	// types depending on the source of the SMBIOS stream information.
	//
	// To prevent the caller from potentially tampering with something dangerous
	// like mmap'd memory by using a type assertion, we make the io.ReadSeekCloser
	// into an opaque and unexported type to prevent type assertion.
	return &opaqueReadSeekCloser{rc: rc}, ep, nil
}

// SysfsStream opens the entry point file and the table file on fs.
func SysfsStream(fs afero.Fs, entryPoint, table string) (io.ReadSeekCloser, EntryPoint, error) {
	ep, err := ReadEntryPoint(fs, entryPoint)
	if err != nil {
		return nil, nil, err
	}

	f, err := fs.Open(table)
	if err != nil {
		return nil, nil, &IOError{Op: "open", Path: table, Err: err}
	}

	return &opaqueReadSeekCloser{rc: f}, ep, nil
}

var _ io.ReadSeekCloser = &opaqueReadSeekCloser{}

// An opaqueReadSeekCloser masks the type of the underlying io.ReadSeekCloser
// to prevent type assertions.
type opaqueReadSeekCloser struct {
	rc io.ReadSeekCloser
}

func (rc *opaqueReadSeekCloser) Read(b []byte) (int, error) { return rc.rc.Read(b) }
func (rc *opaqueReadSeekCloser) Seek(off int64, whence int) (int64, error) {
	return rc.rc.Seek(off, whence)
}
func (rc *opaqueReadSeekCloser) Close() error { return rc.rc.Close() }
