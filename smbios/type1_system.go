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

// System Information (type 1) offsets.
const (
	systemManufacturer = 0x04
	systemProductName  = 0x05
	systemVersion      = 0x06
	systemSerial       = 0x07
	systemUUID         = 0x08
	systemWakeUpType   = 0x18
	systemSKU          = 0x19
	systemFamily       = 0x1a
)

// SMBIOS 2.0 uses length 0x08, 2.1 to 2.3.4 use 0x19, 2.4 and later 0x1b.
const (
	systemLength20 = 0x08
	systemLength21 = 0x19
	systemLength24 = 0x1b
)

var wakeUpTypes = map[uint8]string{
	0x00: "Reserved",
	0x01: "Other",
	0x02: "Unknown",
	0x03: "APM Timer",
	0x04: "Modem Ring",
	0x05: "LAN Remote",
	0x06: "Power Switch",
	0x07: "PCI PME#",
	0x08: "AC Power Restored",
}

func decodeSystem(s *Structure, r *Record) {
	r.addHandle(s)

	l := s.Header.Length
	if l >= systemLength20 {
		r.addString(s, "System Manufacturer", systemManufacturer)
		r.addString(s, "Product Name", systemProductName)
		r.addString(s, "Product Version", systemVersion)
		r.addString(s, "Product Serial", systemSerial)
	}

	if l >= systemLength21 {
		r.add("UUID", systemUUIDString(s.Formatted[systemUUID:systemUUID+16]))
		r.add("Wake-up Type", lookup(s.u8(systemWakeUpType), wakeUpTypes))
	}

	if l >= systemLength24 {
		r.addString(s, "Product SKU", systemSKU)
		r.addString(s, "Product Family", systemFamily)
	}
}

// systemUUIDString renders a system UUID.  The first three fields are stored
// little-endian as of SMBIOS 2.6.
func systemUUIDString(u []byte) string {
	only0xFF, only0x00 := true, true
	for _, b := range u {
		if b != 0xff {
			only0xFF = false
		}
		if b != 0x00 {
			only0x00 = false
		}
	}

	switch {
	case only0xFF:
		return "Not Present"
	case only0x00:
		return "Not Settable"
	}

	return fmt.Sprintf("%02x%02x%02x%02x-%02x%02x-%02x%02x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		u[3], u[2], u[1], u[0], u[5], u[4], u[7], u[6],
		u[8], u[9], u[10], u[11], u[12], u[13], u[14], u[15])
}
