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

// BIOS Information (type 0) offsets.
const (
	biosVendor          = 0x04
	biosVersion         = 0x05
	biosSegment         = 0x06
	biosReleaseDate     = 0x08
	biosROMSize         = 0x09
	biosCharacteristics = 0x0a
	biosExtension1      = 0x12
	biosExtension2      = 0x13
	biosMajorRelease    = 0x14
	biosMinorRelease    = 0x15
	biosECMajorRelease  = 0x16
	biosECMinorRelease  = 0x17
	biosExtendedROMSize = 0x18

	// biosMinLength is the length of an SMBIOS 2.0 BIOS structure.
	biosMinLength = 0x12

	// biosNotSupported is bit 3 of the characteristics.
	biosNotSupported = 1 << 3
)

// BIOS characteristics, one table per byte of the characteristics field.
var biosCharacteristicFlags = [4][]Flag{
	{
		{1 << 4, "ISA is supported"},
		{1 << 5, "MCA is supported"},
		{1 << 6, "EISA is supported"},
		{1 << 7, "PCI is supported"},
	},
	{
		{1 << 0, "PCMCIA is supported"},
		{1 << 1, "PnP is supported"},
		{1 << 2, "APM is supported"},
		{1 << 3, "BIOS upgrades are supported"},
		{1 << 4, "BIOS shadowing is allowed"},
		{1 << 5, "VL-VESA is supported"},
		{1 << 6, "ESCD support is available"},
		{1 << 7, "Boot from CD is supported"},
	},
	{
		{1 << 0, "Selectable boot is supported"},
		{1 << 1, "BIOS ROM is socketed"},
		{1 << 2, "Boot from PCMCIA (PC Card) is supported"},
		{1 << 3, "EDD Specification is supported"},
		{1 << 4, "Int 13h: NEC 9800 1.2 MB floppy is supported"},
		{1 << 5, "Int 13h: Toshiba 1.2 MB floppy is supported"},
		{1 << 6, "Int 13h: 5.25\" 360 KB floppy is supported"},
		{1 << 7, "Int 13h: 5.25\" 1.2 MB floppy is supported"},
	},
	{
		{1 << 0, "Int 13h: 3.5\" / 720 KB floppy services are supported"},
		{1 << 1, "Int 13h: 3.5\" / 2.88 MB floppy services are supported"},
		{1 << 2, "Int 5h: print screen Service is supported"},
		{1 << 3, "Int 9h: 8042 keyboard services are supported"},
		{1 << 4, "Int 14h: serial services are supported"},
		{1 << 5, "Int 17h: printer services are supported"},
		{1 << 6, "Int 10h: CGA/Mono Video Services are supported"},
		{1 << 7, "NEC PC-98"},
	},
}

var biosExtension1Flags = []Flag{
	{1 << 0, "ACPI is supported"},
	{1 << 1, "USB Legacy is supported"},
	{1 << 2, "AGP is supported"},
	{1 << 3, "I2O boot is supported"},
	{1 << 4, "LS-120 SuperDisk boot is supported"},
	{1 << 5, "ATAPI ZIP drive boot is supported"},
	{1 << 6, "1394 boot is supported"},
	{1 << 7, "Smart battery is supported"},
}

// Remaining bits are reserved for future use.
var biosExtension2Flags = []Flag{
	{1 << 0, "BIOS Boot Specification is supported"},
	{1 << 1, "F-Key initiated network boot is supported"},
	{1 << 2, "Enable targeted content distribution"},
	{1 << 3, "UEFI Specification is supported"},
	{1 << 4, "SMBIOS table describes a virtual machine"},
}

func decodeBIOS(s *Structure, r *Record) {
	if s.Header.Length < biosMinLength {
		r.Malformed = true
		r.Title = fmt.Sprintf("Invalid BIOS characteristics table length %d", s.Header.Length)
		return
	}

	// TODO: bit 3 only says the characteristics bits are meaningless; decide
	// whether the vendor/version/date strings should still be printed.
	if s.u8(biosCharacteristics)&biosNotSupported != 0 {
		r.Title = "BIOS Characteristics not supported on this system"
		return
	}

	r.addHandle(s)
	r.addString(s, "BIOS Vendor", biosVendor)
	r.addString(s, "BIOS Version", biosVersion)
	r.addString(s, "BIOS Release Date", biosReleaseDate)

	if seg := s.u16(biosSegment); seg != 0 {
		r.addf("Address", "0x%04X0", seg)
		r.addf("Runtime Size", "%d bytes", (0x10000-uint32(seg))<<4)
	}
	r.add("ROM Size", biosROMSizeString(s))

	var chars []string
	for i, flags := range biosCharacteristicFlags {
		chars = append(chars, DecodeFlags(s.u8(biosCharacteristics+i), flags)...)
	}
	r.addFlags("BIOS Characteristics", chars)

	if s.has(biosExtension1, 1) {
		r.addFlags("BIOS Characteristics Extension byte 1", DecodeFlags(s.u8(biosExtension1), biosExtension1Flags))
	}
	if s.has(biosExtension2, 1) {
		r.addFlags("BIOS Characteristics Extension byte 2", DecodeFlags(s.u8(biosExtension2), biosExtension2Flags))
	}

	if s.has(biosMinorRelease, 1) && s.u8(biosMajorRelease) != 0xff {
		r.addf("BIOS Revision", "%d.%d", s.u8(biosMajorRelease), s.u8(biosMinorRelease))
	}
	if s.has(biosECMinorRelease, 1) && s.u8(biosECMajorRelease) != 0xff {
		r.addf("Firmware Revision", "%d.%d", s.u8(biosECMajorRelease), s.u8(biosECMinorRelease))
	}
}

// biosROMSizeString renders the BIOS ROM size, switching to the extended
// size field when the legacy byte is saturated.
func biosROMSizeString(s *Structure) string {
	size := s.u8(biosROMSize)
	if size != 0xff || !s.has(biosExtendedROMSize, 2) {
		return fmt.Sprintf("%d kB", (int(size)+1)*64)
	}

	ext := s.u16(biosExtendedROMSize)
	switch ext >> 14 {
	case 0:
		return fmt.Sprintf("%d MB", ext&0x3fff)
	case 1:
		return fmt.Sprintf("%d GB", ext&0x3fff)
	default:
		return Unrecognized
	}
}
