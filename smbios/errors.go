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
	"github.com/pkg/errors"
)

var (
	// ErrHeaderData indicates an entry point with an unrecognized anchor,
	// an unexpected header length or an unsupported entry point revision.
	ErrHeaderData = errors.New("smbios: header data error")

	// ErrNotImplemented indicates a recognized but unhandled variant.
	ErrNotImplemented = errors.New("smbios: not implemented")

	// ErrNotFound is returned by a Walker when the table is exhausted
	// without finding the requested structure type.
	ErrNotFound = errors.New("smbios: table exhausted, structure not found")

	// ErrWalkExceeded is returned by a Walker which read MaxStructures
	// structures without reaching a stop condition.
	ErrWalkExceeded = errors.New("smbios: structure walk exceeded")
)

// An IOError is an I/O failure while reading an entry point or a table.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return "smbios: " + e.Op + ": " + e.Err.Error()
	}

	return "smbios: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error { return e.Err }

// ioErr wraps err in an IOError unless it already is one.
func ioErr(op string, err error) error {
	if err == nil {
		return nil
	}

	var ioe *IOError
	if errors.As(err, &ioe) {
		return err
	}

	return &IOError{Op: op, Err: err}
}
