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

// Baseboard Information (type 2) offsets.
const (
	boardManufacturer = 0x04
	boardProduct      = 0x05
	boardVersion      = 0x06
	boardSerial       = 0x07
	boardAssetTag     = 0x08
	boardFeatures     = 0x09
	boardLocation     = 0x0a
	boardChassis      = 0x0b
	boardType         = 0x0d
	boardObjectCount  = 0x0e
	boardObjects      = 0x0f
)

var boardFeatureFlags = []Flag{
	{1 << 0, "Board is a hosting board"},
	{1 << 1, "At least one daughterboard is required"},
	{1 << 2, "Board is removable"},
	{1 << 3, "Board is replaceable"},
	{1 << 4, "Board is hot swappable"},
}

var boardTypes = map[uint8]string{
	0x01: "Unknown",
	0x02: "Other",
	0x03: "Server Blade",
	0x04: "Connectivity Switch",
	0x05: "System Management Module",
	0x06: "Processor Module",
	0x07: "I/O Module",
	0x08: "Memory Module",
	0x09: "Daughter board",
	0x0a: "Motherboard (includes processor, memory, and I/O)",
	0x0b: "Processor/Memory Module",
	0x0c: "Processor/IO Module",
	0x0d: "Interconnect board",
}

func decodeBaseboard(s *Structure, r *Record) {
	r.addHandle(s)

	// The string references are printed for every length; one falling
	// outside the formatted area renders as out of range.
	r.addString(s, "Manufacturer", boardManufacturer)
	r.addString(s, "Product", boardProduct)
	r.addString(s, "Version", boardVersion)
	r.addString(s, "Serial", boardSerial)
	r.addString(s, "Asset tag", boardAssetTag)

	if s.has(boardFeatures, 1) {
		r.addFlags("Baseboard features", DecodeFlags(s.u8(boardFeatures), boardFeatureFlags))
	}
	if s.has(boardLocation, 1) {
		r.addString(s, "Location in chassis", boardLocation)
	}
	if s.has(boardChassis, 2) {
		r.addf("Chassis handle", "0x%04X", s.u16(boardChassis))
	}
	if s.has(boardType, 1) {
		r.add("Board type", lookup(s.u8(boardType), boardTypes))
	}

	if !s.has(boardObjectCount, 1) {
		return
	}

	n := int(s.u8(boardObjectCount))
	var handles []string
	for i := 0; i < n; i++ {
		off := boardObjects + 2*i
		if !s.has(off, 2) {
			break
		}
		handles = append(handles, fmt.Sprintf("0x%04X", s.u16(off)))
	}
	r.Fields = append(r.Fields, Field{
		Label: "Contained object handles",
		Value: fmt.Sprint(n),
		Flags: handles,
	})
}
