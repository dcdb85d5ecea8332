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
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// A RawRecord is the prefix of a raw structure record: its type and length
// bytes followed by its strings.
type RawRecord struct {
	Type    uint8
	Length  uint8
	Strings []string

	// Structure is set for BIOS records, which are decoded in full.
	Structure *Structure
}

// ReadRawRecord reads the record at the start of rs.  For any type other
// than BIOS Information the formatted area is skipped by seeking to the
// declared length.
func ReadRawRecord(rs io.ReadSeeker) (*RawRecord, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, ioErr("seek", err)
	}

	var b [2]byte
	if _, err := io.ReadFull(rs, b[:]); err != nil {
		return nil, ioErr("read record prefix", err)
	}
	r := &RawRecord{Type: b[0], Length: b[1]}

	if r.Type == 0 {
		s, err := ReadStructureAt(rs, 0)
		if err != nil {
			return nil, err
		}
		r.Structure = s
		r.Strings = s.Strings

		return r, nil
	}

	if r.Length < headerLen {
		return nil, errors.Errorf("smbios: record type %d declares length %d", r.Type, r.Length)
	}

	d, err := NewDecoderAt(rs, int64(r.Length))
	if err != nil {
		return nil, err
	}
	ss, err := d.parseStrings()
	if err != nil {
		return nil, err
	}
	r.Strings = ss

	return r, nil
}

// ReadEntry reads the structure exposed at <root>/<id>/raw, where id is a
// "<type>-<instance>" name such as "0-0".
func ReadEntry(fs afero.Fs, root, id string) (*Structure, error) {
	path := filepath.Join(root, id, "raw")

	f, err := fs.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	s, err := ReadStructureAt(f, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "entry %s", id)
	}

	return s, nil
}
