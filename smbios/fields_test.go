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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yywing/go-dmi/smbios"
)

func TestDecodeFlags(t *testing.T) {
	// Declared out of bit order, with overlapping masks.
	flags := []smbios.Flag{
		{Mask: 1 << 7, Label: "high"},
		{Mask: 1 << 0, Label: "low"},
		{Mask: 0x03, Label: "low pair"},
		{Mask: 1 << 4, Label: "middle"},
	}

	tests := []struct {
		name string
		b    uint8
		want []string
	}{
		{
			name: "none",
			b:    0x00,
		},
		{
			name: "unlisted bits",
			b:    0x64,
		},
		{
			name: "overlap",
			b:    0x01,
			want: []string{"low", "low pair"},
		},
		{
			name: "declared order",
			b:    0x92,
			want: []string{"high", "low pair", "middle"},
		},
		{
			name: "all",
			b:    0xff,
			want: []string{"high", "low", "low pair", "middle"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, smbios.DecodeFlags(tt.b, flags)); diff != "" {
				t.Fatalf("unexpected flags (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeFlagsOrderStable(t *testing.T) {
	flags := []smbios.Flag{
		{Mask: 1 << 5, Label: "five"},
		{Mask: 1 << 1, Label: "one"},
		{Mask: 1 << 6, Label: "six"},
		{Mask: 1 << 0, Label: "zero"},
	}

	for b := 0; b <= 0xff; b++ {
		var want []string
		for _, f := range flags {
			if uint8(b)&f.Mask != 0 {
				want = append(want, f.Label)
			}
		}

		if diff := cmp.Diff(want, smbios.DecodeFlags(uint8(b), flags)); diff != "" {
			t.Fatalf("byte %#02x: unexpected flags (-want +got):\n%s", b, diff)
		}
	}
}
