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

package smbios_test

import (
	"bytes"
	"testing"

	"github.com/yywing/go-dmi/smbios"
)

// area builds a formatted area, header included, for a structure of type
// typ whose declared length covers exactly fields.
func area(typ uint8, handle uint16, fields ...byte) []byte {
	b := []byte{typ, uint8(4 + len(fields)), uint8(handle), uint8(handle >> 8)}
	return append(b, fields...)
}

// raw appends the string-set for strs to the formatted area b.
func raw(b []byte, strs ...string) []byte {
	out := append([]byte(nil), b...)
	if len(strs) == 0 {
		return append(out, 0x00, 0x00)
	}

	for _, s := range strs {
		out = append(out, s...)
		out = append(out, 0x00)
	}

	return append(out, 0x00)
}

// table concatenates raw structures.
func table(ss ...[]byte) []byte {
	return bytes.Join(ss, nil)
}

// mustStructure reads a Structure from its formatted area and strings.
func mustStructure(t *testing.T, b []byte, strs ...string) *smbios.Structure {
	t.Helper()

	s, err := smbios.ReadStructureAt(bytes.NewReader(raw(b, strs...)), 0)
	if err != nil {
		t.Fatalf("failed to read structure: %v", err)
	}

	return s
}
