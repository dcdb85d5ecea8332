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

package main

import (
	"fmt"
	"io"

	"github.com/yywing/go-dmi/internal/sysfs"
)

type idValue struct {
	Name  string `yaml:"name"`
	Key   string `yaml:"key"`
	Value string `yaml:"value,omitempty"`
	Error string `yaml:"error,omitempty"`
}

type idGroup struct {
	Title  string    `yaml:"title"`
	Values []idValue `yaml:"values"`
}

// runIDs lists the DMI id attributes.  Attributes that cannot be read are
// reported in place.
func (cmd *RootCmd) runIDs() error {
	d := sysfs.NewDMI(cmd.fs, cmd.cfg.IDPath())

	var groups []idGroup
	for _, g := range sysfs.Groups {
		cmd.log.Debugf("Reading %s", g.Title)

		ig := idGroup{Title: g.Title}
		for _, v := range d.ReadGroup(g) {
			iv := idValue{Name: v.Name, Key: v.Key, Value: v.Value}
			if v.Err != nil {
				cmd.log.WithError(v.Err).Warnf("Error reading %s", v.Key)
				iv.Error = v.Err.Error()
			}
			ig.Values = append(ig.Values, iv)
		}
		groups = append(groups, ig)
	}

	return cmd.print(groups, func(w io.Writer) error {
		for _, g := range groups {
			fmt.Fprintf(w, "%s:\n", g.Title)
			for _, v := range g.Values {
				if v.Error != "" {
					fmt.Fprintf(w, "  * Error reading %s: %s\n", v.Name, v.Error)
					continue
				}
				fmt.Fprintf(w, "  - %s is %s\n", v.Name, v.Value)
			}
		}

		return nil
	})
}
