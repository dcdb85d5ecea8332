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
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// A Walker follows the structures of a table from a base offset.  A Walker
// owns its io.ReadSeeker for the duration of a walk and is not safe for
// concurrent use.
type Walker struct {
	rs    io.ReadSeeker
	size  int64
	limit int
	log   logrus.FieldLogger
}

// A WalkerOption configures a Walker.
type WalkerOption func(*Walker)

// WithLogger sets the logger used to report walk progress.
func WithLogger(l logrus.FieldLogger) WalkerOption {
	return func(w *Walker) { w.log = l }
}

// WithLimit overrides MaxStructures for a Walker.
func WithLimit(n int) WalkerOption {
	return func(w *Walker) { w.limit = n }
}

// NewWalker creates a Walker over the table in rs.  size is the table size
// declared by the entry point; zero disables the size bound.
func NewWalker(rs io.ReadSeeker, size int64, opts ...WalkerOption) *Walker {
	w := &Walker{
		rs:    rs,
		size:  size,
		limit: MaxStructures,
		log:   logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(w)
	}

	return w
}

// Find walks the table from its start and returns the first structure of
// type typ.  ErrNotFound is returned when the end of the table is reached
// first and ErrWalkExceeded when the structure limit is.
func (w *Walker) Find(typ uint8) (*Structure, error) {
	return w.FindFrom(0, typ)
}

// FindFrom is like Find, but starts the walk at offset, which must be the
// start of a structure.
func (w *Walker) FindFrom(offset int64, typ uint8) (*Structure, error) {
	var found *Structure
	err := w.walk(offset, func(s *Structure) (bool, error) {
		if s.Header.Type == typeEndOfTable {
			w.log.Warn("Found End-of-table structure")
			return true, nil
		}
		if s.Header.Type == typ {
			w.log.Debugf("Found table %d", typ)
			found = s
			return true, nil
		}

		return false, nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.Wrapf(ErrNotFound, "structure type %d", typ)
	}

	return found, nil
}

// Walk calls fn for every structure of the table, up to and including the
// End-of-table structure.  Walk stops early when fn returns an error.
func (w *Walker) Walk(fn func(*Structure) error) error {
	return w.walk(0, func(s *Structure) (bool, error) {
		if err := fn(s); err != nil {
			return true, err
		}

		return s.Header.Type == typeEndOfTable, nil
	})
}

// walk reads structures from offset, calling visit for each until visit
// asks to stop, the table size is exceeded, the table ends or the limit
// is reached.
func (w *Walker) walk(offset int64, visit func(*Structure) (bool, error)) error {
	d, err := NewDecoderAt(w.rs, offset)
	if err != nil {
		return err
	}

	for i := 0; i < w.limit; i++ {
		s, err := d.Next()
		switch {
		case errors.Is(err, io.EOF):
			w.log.WithField("offset", d.Offset()).Warn("Reached end of data without End-of-table structure")
			return nil
		case err != nil:
			return err
		}

		w.log.WithFields(logrus.Fields{
			"offset": s.Offset,
			"type":   s.Header.Type,
			"handle": s.Header.Handle,
			"length": s.Header.Length,
		}).Debug("Read structure")
		if s.Malformed() {
			w.log.WithField("offset", s.Offset).Warnf("Structure type %d declares length %d", s.Header.Type, s.Header.Length)
		}

		stop, err := visit(s)
		if err != nil || stop {
			return err
		}

		if w.size > 0 && s.Next > w.size {
			w.log.WithField("offset", s.Next).Warn("Reached end of table")
			return nil
		}
	}

	return errors.Wrapf(ErrWalkExceeded, "read %d structures", w.limit)
}
