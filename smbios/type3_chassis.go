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

// System Enclosure or Chassis (type 3) offsets.
const (
	chassisManufacturer  = 0x04
	chassisType          = 0x05
	chassisVersion       = 0x06
	chassisSerial        = 0x07
	chassisAssetTag      = 0x08
	chassisBootUpState   = 0x09
	chassisPowerState    = 0x0a
	chassisThermalState  = 0x0b
	chassisSecurity      = 0x0c
	chassisOEM           = 0x0d
	chassisHeight        = 0x11
	chassisPowerCords    = 0x12
	chassisElementCount  = 0x13
	chassisElementLength = 0x14
	chassisElements      = 0x15

	chassisLock = 1 << 7

	// chassisMinElementLength is the smallest record describing an element.
	chassisMinElementLength = 3
)

var chassisTypes = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Desktop",
	0x04: "Low Profile Desktop",
	0x05: "Pizza Box",
	0x06: "Mini Tower",
	0x07: "Tower",
	0x08: "Portable",
	0x09: "Laptop",
	0x0a: "Notebook",
	0x0b: "Handheld",
	0x0c: "Docking Station",
	0x0d: "All-in-one",
	0x0e: "Sub-notebook",
	0x0f: "Space-saving",
	0x10: "Lunch box",
	0x11: "Main server chassis",
	0x12: "Expansion chassis",
	0x13: "SubChassis",
	0x14: "Bus expansion chassis",
	0x15: "Peripheral chassis",
	0x16: "RAID chassis",
	0x17: "Rack Mount Chassis",
	0x18: "Sealed-case PC",
	0x19: "Multi-system chassis",
	0x1a: "Compact PCI",
	0x1b: "Advanced TCA",
	0x1c: "Blade",
	0x1d: "Blade Enclosure",
	0x1e: "Tablet",
	0x1f: "Convertible",
	0x20: "Detachable",
	0x21: "IoT Gateway",
	0x22: "Embedded PC",
	0x23: "Mini PC",
	0x24: "Stick PC",
}

var chassisStates = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "Safe",
	0x04: "Warning",
	0x05: "Critical",
	0x06: "Non-recoverable",
}

var chassisSecurityStatuses = map[uint8]string{
	0x01: "Other",
	0x02: "Unknown",
	0x03: "None",
	0x04: "External interface locked out",
	0x05: "External interface enabled",
}

func decodeChassis(s *Structure, r *Record) {
	r.addHandle(s)
	r.addString(s, "Manufacturer", chassisManufacturer)

	if s.has(chassisType, 1) {
		t := s.u8(chassisType)
		if t&chassisLock != 0 {
			r.add("Chassis lock", "Present")
		} else {
			r.add("Chassis lock", "Not known to be present")
		}
		r.add("System Enclosure or Chassis Type", lookup(t&^chassisLock, chassisTypes))
	}

	r.addString(s, "Version", chassisVersion)
	r.addString(s, "Serial Number", chassisSerial)
	r.addString(s, "Asset Tag", chassisAssetTag)

	if s.has(chassisSecurity, 1) {
		r.add("System Enclosure or Chassis State", lookup(s.u8(chassisBootUpState), chassisStates))
		r.add("Power supply State", lookup(s.u8(chassisPowerState), chassisStates))
		r.add("Thermal State", lookup(s.u8(chassisThermalState), chassisStates))
		r.add("Chassis security status", lookup(s.u8(chassisSecurity), chassisSecurityStatuses))
	}
	if s.has(chassisOEM, 4) {
		r.addf("OEM Information", "0x%08X", s.u32(chassisOEM))
	}
	if s.has(chassisHeight, 1) {
		r.add("Chassis rack height", unspecifiedOr(s.u8(chassisHeight), "%d U"))
	}
	if s.has(chassisPowerCords, 1) {
		r.add("Number of power cords", unspecifiedOr(s.u8(chassisPowerCords), "%d"))
	}

	if !s.has(chassisElementLength, 1) {
		return
	}

	n := int(s.u8(chassisElementCount))
	m := int(s.u8(chassisElementLength))
	decodeContainedElements(s, r, n, m)

	if off := chassisElements + n*m; s.has(off, 1) {
		r.addString(s, "SKU", off)
	}
}

// decodeContainedElements describes each contained element record.  The
// records themselves are not decoded yet.
func decodeContainedElements(s *Structure, r *Record, n, m int) {
	if n == 0 || m < chassisMinElementLength {
		r.add("Contained elements", "0")
		return
	}

	var elems []string
	for i := 0; i < n; i++ {
		off := chassisElements + i*m
		if !s.has(off, m) {
			break
		}

		t := s.u8(off)
		if t&0x80 != 0 {
			elems = append(elems, fmt.Sprintf(
				"Contained element %d is an SMBIOS structure type %d. Decoding not yet implemented.", i, t&0x7f))
		} else {
			elems = append(elems, fmt.Sprintf(
				"Contained element %d is an SMBIOS Baseboard type enumeration. Decoding not yet implemented.", i))
		}
	}

	r.Fields = append(r.Fields, Field{Label: "Contained elements", Value: fmt.Sprint(n), Flags: elems})
	r.addf("Element length", "%d", m)
}

// unspecifiedOr renders zero as Unspecified and any other value with format.
func unspecifiedOr(v uint8, format string) string {
	if v == 0 {
		return Unspecified
	}

	return fmt.Sprintf(format, v)
}
