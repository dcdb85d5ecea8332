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
	"encoding/binary"
)

// Unrecognized is rendered for an enumerated byte missing from its table.
const Unrecognized = "Unrecognized value. Probably a bug."

// A Flag names one bit (or group of bits) of a flag byte.
type Flag struct {
	Mask  uint8
	Label string
}

// DecodeFlags returns the labels of every flag whose mask is set in b,
// in the order the flags are declared.
func DecodeFlags(b uint8, flags []Flag) []string {
	var out []string
	for _, f := range flags {
		if b&f.Mask != 0 {
			out = append(out, f.Label)
		}
	}

	return out
}

// lookup renders the enumerated value v using table.
func lookup(v uint8, table map[uint8]string) string {
	if s, ok := table[v]; ok {
		return s
	}

	return Unrecognized
}

// has reports whether the formatted area covers n bytes at offset off.
func (s *Structure) has(off, n int) bool {
	return off >= 0 && n >= 0 && off+n <= len(s.Formatted) && off+n <= int(s.Header.Length)
}

// Fields wider than a byte are little-endian; callers check has first.

func (s *Structure) u8(off int) uint8 { return s.Formatted[off] }

func (s *Structure) u16(off int) uint16 {
	return binary.LittleEndian.Uint16(s.Formatted[off : off+2])
}

func (s *Structure) u32(off int) uint32 {
	return binary.LittleEndian.Uint32(s.Formatted[off : off+4])
}
