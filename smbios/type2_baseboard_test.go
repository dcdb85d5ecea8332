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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yywing/go-dmi/smbios"
)

func TestDecodeBaseboard(t *testing.T) {
	strs := []string{"ACME", "X99", "Rev 2", "BB-1", "Tag", "Slot 1"}

	tests := []struct {
		name   string
		b      []byte
		fields []smbios.Field
	}{
		{
			name: "SMBIOS 2.0",
			b:    area(2, 0x0002, 1, 2, 3, 4),
			fields: []smbios.Field{
				{Label: "Handle", Value: "0x0002"},
				{Label: "Manufacturer", Value: "ACME"},
				{Label: "Product", Value: "X99"},
				{Label: "Version", Value: "Rev 2"},
				{Label: "Serial", Value: "BB-1"},
				{Label: "Asset tag", Value: smbios.OutOfRange},
			},
		},
		{
			name: "features and board type",
			b: area(2, 0x0002,
				1, 2, 3, 4, 5,
				0x09,       // features
				6,          // location
				0x03, 0x00, // chassis handle
				0x0a,       // board type
				0x00,       // no contained objects
			),
			fields: []smbios.Field{
				{Label: "Handle", Value: "0x0002"},
				{Label: "Manufacturer", Value: "ACME"},
				{Label: "Product", Value: "X99"},
				{Label: "Version", Value: "Rev 2"},
				{Label: "Serial", Value: "BB-1"},
				{Label: "Asset tag", Value: "Tag"},
				{Label: "Baseboard features", Flags: []string{"Board is a hosting board", "Board is replaceable"}},
				{Label: "Location in chassis", Value: "Slot 1"},
				{Label: "Chassis handle", Value: "0x0003"},
				{Label: "Board type", Value: "Motherboard (includes processor, memory, and I/O)"},
				{Label: "Contained object handles", Value: "0"},
			},
		},
		{
			name: "contained objects",
			b: area(2, 0x0002,
				1, 2, 3, 4, 0,
				0x00,
				0,
				0x03, 0x00,
				0x20,
				0x02,
				0x04, 0x00,
				0x05, 0x00,
			),
			fields: []smbios.Field{
				{Label: "Handle", Value: "0x0002"},
				{Label: "Manufacturer", Value: "ACME"},
				{Label: "Product", Value: "X99"},
				{Label: "Version", Value: "Rev 2"},
				{Label: "Serial", Value: "BB-1"},
				{Label: "Asset tag", Value: smbios.Unspecified},
				{Label: "Baseboard features"},
				{Label: "Location in chassis", Value: smbios.Unspecified},
				{Label: "Chassis handle", Value: "0x0003"},
				{Label: "Board type", Value: smbios.Unrecognized},
				{Label: "Contained object handles", Value: "2", Flags: []string{"0x0004", "0x0005"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := smbios.Decode(mustStructure(t, tt.b, strs...))

			if diff := cmp.Diff("Table 2 (Baseboard Information)", r.Title); diff != "" {
				t.Fatalf("unexpected title (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.fields, r.Fields); diff != "" {
				t.Fatalf("unexpected fields (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeBaseboardShortText(t *testing.T) {
	out := smbios.Decode(mustStructure(t, area(2, 0x0002, 1, 2, 3, 4), "ACME", "X99", "Rev 2", "BB-1")).Text()

	for _, label := range []string{"Manufacturer:", "Product:", "Version:", "Serial:", "Asset tag:"} {
		if !strings.Contains(out, label) {
			t.Fatalf("expected %q in output:\n%s", label, out)
		}
	}
	for _, label := range []string{"Baseboard features", "Board type"} {
		if strings.Contains(out, label) {
			t.Fatalf("unexpected %q in output:\n%s", label, out)
		}
	}
}
