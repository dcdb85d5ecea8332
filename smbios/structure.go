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
	"fmt"
)

const (
	// headerLen is the length of the Header structure.
	headerLen = 4

	// typeEndOfTable indicates the end of a stream of Structures.
	typeEndOfTable = 127
)

// A Header is a Structure's header.
type Header struct {
	Type   uint8
	Length uint8
	Handle uint16
}

// A Kind classifies a Structure by its type byte.
type Kind int

// Structure kinds decoded by this package.  Every other type is KindOther.
const (
	KindOther Kind = iota
	KindBIOS
	KindSystem
	KindBaseboard
	KindChassis
	KindEndOfTable
)

// kindOf classifies a structure type byte.
func kindOf(t uint8) Kind {
	switch t {
	case 0:
		return KindBIOS
	case 1:
		return KindSystem
	case 2:
		return KindBaseboard
	case 3:
		return KindChassis
	case typeEndOfTable:
		return KindEndOfTable
	default:
		return KindOther
	}
}

func (k Kind) String() string {
	switch k {
	case KindBIOS:
		return "BIOS Information"
	case KindSystem:
		return "System Information"
	case KindBaseboard:
		return "Baseboard Information"
	case KindChassis:
		return "System Enclosure or Chassis"
	case KindEndOfTable:
		return "End of Table"
	default:
		return "Other"
	}
}

// A Structure is an SMBIOS structure.
//
// Formatted holds the whole formatted area including the four header bytes,
// so offsets from the SMBIOS specification index it directly.  When
// Header.Length is shorter than a header, Formatted holds only the header.
type Structure struct {
	Header    Header
	Kind      Kind
	Formatted []byte
	Strings   []string

	// Offset is the location of the structure in its table and Next the
	// location of the structure following it.
	Offset int64
	Next   int64
}

// Malformed reports whether the declared length cannot even cover the header.
func (s *Structure) Malformed() bool {
	return s.Header.Length < headerLen
}

func (s *Structure) String() string {
	return fmt.Sprintf("Handle 0x%04X, DMI type %d, %d bytes", s.Header.Handle, s.Header.Type, s.Header.Length)
}
