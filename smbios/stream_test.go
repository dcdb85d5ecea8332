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
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func TestSysfsStream(t *testing.T) {
	fsys := afero.NewMemMapFs()

	epb := mustMarshalEntryPoint(&EntryPoint64Bit{
		Major:                 3,
		Minor:                 2,
		EntryPointRevision:    expRevision64,
		StructureTableMaxSize: uint32(len(memoryTable)),
	})
	if err := afero.WriteFile(fsys, SysfsEntryPoint, epb, 0o400); err != nil {
		t.Fatalf("failed to write entry point: %v", err)
	}
	if err := afero.WriteFile(fsys, SysfsTable, memoryTable, 0o400); err != nil {
		t.Fatalf("failed to write table: %v", err)
	}

	t.Run("OK", func(t *testing.T) {
		rc, ep, err := SysfsStream(fsys, SysfsEntryPoint, SysfsTable)
		if err != nil {
			t.Fatalf("failed to open stream: %v", err)
		}
		defer rc.Close()

		if major, minor, _ := ep.Version(); major != 3 || minor != 2 {
			t.Fatalf("unexpected version: %d.%d", major, minor)
		}

		_, size := ep.Table()
		var ss []*Structure
		err = NewWalker(rc, int64(size)).Walk(func(s *Structure) error {
			ss = append(ss, s)
			return nil
		})
		if err != nil {
			t.Fatalf("failed to walk table: %v", err)
		}

		if diff := cmp.Diff(memoryStructures, ss); diff != "" {
			t.Fatalf("unexpected structures (-want +got):\n%s", diff)
		}

		// The stream is rewound by every walk.
		bios, err := NewWalker(rc, int64(size)).Find(0)
		if err != nil {
			t.Fatalf("failed to find BIOS: %v", err)
		}
		if diff := cmp.Diff(memoryStructures[0], bios); diff != "" {
			t.Fatalf("unexpected structure (-want +got):\n%s", diff)
		}
	})

	t.Run("no table", func(t *testing.T) {
		_, _, err := SysfsStream(fsys, SysfsEntryPoint, "/nonexistent")

		var ioe *IOError
		if !errors.As(err, &ioe) || ioe.Path != "/nonexistent" {
			t.Fatalf("expected I/O error for table, but got: %v", err)
		}
	})

	t.Run("no entry point", func(t *testing.T) {
		_, _, err := SysfsStream(fsys, "/nonexistent", SysfsTable)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("expected not exist error, but got: %v", err)
		}
	})
}

func TestStreamOpaque(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, SysfsTable, memoryTable, 0o400); err != nil {
		t.Fatalf("failed to write table: %v", err)
	}
	f, err := fsys.Open(SysfsTable)
	if err != nil {
		t.Fatalf("failed to open table: %v", err)
	}

	var rc io.ReadSeekCloser = &opaqueReadSeekCloser{rc: f}
	defer rc.Close()

	if _, ok := rc.(afero.File); ok {
		t.Fatal("stream exposes its underlying file")
	}
}
