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

const (
	// Unspecified is rendered for a string reference of zero.
	Unspecified = "Unspecified"

	// OutOfRange is rendered for a string reference that does not resolve
	// to a non-empty string of the structure.
	OutOfRange = "String index out of range. Buggy firmware?"
)

// ResolveString returns the string referenced by the 1-based index i in ss.
// It never indexes out of bounds: firmware is not trusted to keep its
// references consistent.
func ResolveString(ss []string, i uint8) string {
	if i == 0 {
		return Unspecified
	}
	if int(i) > len(ss) || ss[i-1] == "" {
		return OutOfRange
	}

	return ss[i-1]
}

// StringAt resolves the string referenced by the index byte at offset off of
// the formatted area.  A reference beyond the formatted area is treated as
// out of range.
func (s *Structure) StringAt(off int) string {
	if !s.has(off, 1) {
		return OutOfRange
	}

	return ResolveString(s.Strings, s.Formatted[off])
}
