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

// Package sysfs reads the DMI attributes the Linux kernel exports below
// /sys/class/dmi/id.
package sysfs

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// IDRoot is the directory of DMI id attributes.
const IDRoot = "/sys/class/dmi/id"

// A DMI reads attributes from a DMI id directory, caching every value read.
type DMI struct {
	fs    afero.Fs
	root  string
	cache map[string]string
}

// NewDMI creates a DMI reading the attributes in root on fs.
func NewDMI(fs afero.Fs, root string) *DMI {
	return &DMI{
		fs:    fs,
		root:  root,
		cache: make(map[string]string),
	}
}

// Read returns the value of the attribute key with surrounding whitespace
// removed.
func (d *DMI) Read(key string) (string, error) {
	if v, ok := d.cache[key]; ok {
		return v, nil
	}

	b, err := afero.ReadFile(d.fs, filepath.Join(d.root, key))
	if err != nil {
		return "", err
	}

	v := strings.TrimSpace(string(b))
	d.cache[key] = v

	return v, nil
}

// An Attribute is a named DMI id attribute.
type Attribute struct {
	Name string
	Key  string
}

// A Group is a titled list of attributes.
type Group struct {
	Title      string
	Attributes []Attribute
}

// Groups are the attribute groups listed by default.
var Groups = []Group{
	{
		Title: "Vendor information",
		Attributes: []Attribute{
			{"System", "sys_vendor"},
			{"BIOS", "bios_vendor"},
			{"Chassis", "chassis_vendor"},
			{"Board", "board_vendor"},
		},
	},
	{
		Title: "Product information",
		Attributes: []Attribute{
			{"Family", "product_family"},
			{"Name", "product_name"},
			{"Serial", "product_serial"},
			{"SKU", "product_sku"},
			{"UUID", "product_uuid"},
			{"Version", "product_version"},
		},
	},
	{
		Title: "System data",
		Attributes: []Attribute{
			{"Vendor", "sys_vendor"},
		},
	},
	{
		Title: "BIOS Information",
		Attributes: []Attribute{
			{"Date", "bios_date"},
			{"Release", "bios_release"},
			{"Vendor", "bios_vendor"},
			{"Version", "bios_version"},
		},
	},
}

// A Value is the outcome of reading one Attribute.
type Value struct {
	Attribute
	Value string
	Err   error
}

// ReadGroup reads every attribute of g.  A failed read is reported in its
// Value and does not stop the others.
func (d *DMI) ReadGroup(g Group) []Value {
	vs := make([]Value, 0, len(g.Attributes))
	for _, a := range g.Attributes {
		v, err := d.Read(a.Key)
		vs = append(vs, Value{Attribute: a, Value: v, Err: err})
	}

	return vs
}
