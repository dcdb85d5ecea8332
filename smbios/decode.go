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

// A decodeFunc fills in a Record for one kind of structure.
type decodeFunc func(s *Structure, r *Record)

// decoders holds the per-kind decoding of structure fields.
var decoders = map[Kind]decodeFunc{
	KindBIOS:      decodeBIOS,
	KindSystem:    decodeSystem,
	KindBaseboard: decodeBaseboard,
	KindChassis:   decodeChassis,
}

// Decode decodes the fields of s into a Record.  Decode never fails:
// malformed structures and dangling string references are rendered as
// placeholder text.
func Decode(s *Structure) *Record {
	r := &Record{
		Type:   s.Header.Type,
		Handle: s.Header.Handle,
	}

	if s.Malformed() {
		r.Malformed = true
		r.Title = fmt.Sprintf("Malformed structure type %d: length %d is shorter than its header",
			s.Header.Type, s.Header.Length)
		return r
	}

	switch s.Kind {
	case KindEndOfTable:
		r.Title = "End of table"
		return r
	case KindOther:
		r.Title = fmt.Sprintf("Unhandled structure type %d", s.Header.Type)
		return r
	}

	r.Title = fmt.Sprintf("Table %d (%s)", s.Header.Type, s.Kind)
	decoders[s.Kind](s, r)

	return r
}

// addString appends the string referenced at offset off.
func (r *Record) addString(s *Structure, label string, off int) {
	r.add(label, s.StringAt(off))
}

// addHandle appends the structure handle.
func (r *Record) addHandle(s *Structure) {
	r.addf("Handle", "0x%04X", s.Header.Handle)
}
