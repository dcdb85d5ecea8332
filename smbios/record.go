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
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A Field is one decoded, labeled value of a structure.  A Field with Flags
// renders one line per set flag below its label.
type Field struct {
	Label string   `yaml:"label"`
	Value string   `yaml:"value,omitempty"`
	Flags []string `yaml:"flags,omitempty"`
}

// A Record is the human-readable decoding of a Structure.
type Record struct {
	Title     string  `yaml:"title"`
	Type      uint8   `yaml:"type"`
	Handle    uint16  `yaml:"handle"`
	Malformed bool    `yaml:"malformed,omitempty"`
	Fields    []Field `yaml:"fields,omitempty"`
}

// add appends a labeled value.
func (r *Record) add(label, value string) {
	r.Fields = append(r.Fields, Field{Label: label, Value: value})
}

// addf appends a labeled, formatted value.
func (r *Record) addf(label, format string, args ...interface{}) {
	r.add(label, fmt.Sprintf(format, args...))
}

// addFlags appends a flag group.  Groups with no flags set are kept so that
// the label documents which byte was decoded.
func (r *Record) addFlags(label string, flags []string) {
	r.Fields = append(r.Fields, Field{Label: label, Flags: flags})
}

// WriteText writes r as line-oriented text: the title, then one line per
// field and one indented line per set flag.
func (r *Record) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, r.Title)
	for _, f := range r.Fields {
		switch {
		case f.Value != "":
			fmt.Fprintf(bw, "%s: %s\n", f.Label, f.Value)
		default:
			fmt.Fprintf(bw, "%s:\n", f.Label)
		}

		for _, fl := range f.Flags {
			fmt.Fprintf(bw, "  + %s\n", fl)
		}
	}

	return bw.Flush()
}

// Text returns the text rendering of r.
func (r *Record) Text() string {
	var sb strings.Builder
	_ = r.WriteText(&sb)
	return sb.String()
}
