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

//go:build linux
// +build linux

package smbios

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

func stream() (io.ReadSeekCloser, EntryPoint, error) {
	fs := afero.NewOsFs()

	// First, check for the sysfs location present in modern kernels.
	_, err := fs.Stat(SysfsEntryPoint)
	switch {
	case err == nil:
		return SysfsStream(fs, SysfsEntryPoint, SysfsTable)
	case os.IsNotExist(err):
		return devMemStream(fs)
	default:
		return nil, nil, &IOError{Op: "stat", Path: SysfsEntryPoint, Err: err}
	}
}
