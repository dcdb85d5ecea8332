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
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// MaxStructures bounds the number of structures read from a single table.
// Tables lacking an End-of-table structure are still walked to completion.
const MaxStructures = 1000

var (
	// Byte slices used to help parsing string-sets.
	null = []byte{0x00}
)

// A Decoder decodes Structures from a stream.
type Decoder struct {
	br  *bufio.Reader
	b   []byte
	off int64
}

// NewDecoder creates a Decoder which decodes Structures from the input stream,
// which is assumed to start at the beginning of a structure table.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		br: bufio.NewReader(r),
		b:  make([]byte, headerLen),
	}
}

// NewDecoderAt seeks rs to offset and creates a Decoder reading from there.
func NewDecoderAt(rs io.ReadSeeker, offset int64) (*Decoder, error) {
	if _, err := rs.Seek(offset, io.SeekStart); err != nil {
		return nil, ioErr("seek", err)
	}

	d := NewDecoder(rs)
	d.off = offset

	return d, nil
}

// ReadStructureAt reads exactly one Structure located at offset in rs.
func ReadStructureAt(rs io.ReadSeeker, offset int64) (*Structure, error) {
	d, err := NewDecoderAt(rs, offset)
	if err != nil {
		return nil, err
	}

	return d.Next()
}

// Offset returns the table offset of the next structure to be decoded.
func (d *Decoder) Offset() int64 { return d.off }

// Decode decodes Structures from the Decoder's stream until an End-of-table
// structure is found.
func (d *Decoder) Decode() ([]*Structure, error) {
	var ss []*Structure

	for i := 0; i < MaxStructures; i++ {
		s, err := d.Next()
		if err != nil {
			return nil, err
		}

		// End-of-table structure indicates end of stream.
		ss = append(ss, s)
		if s.Header.Type == typeEndOfTable {
			return ss, nil
		}
	}

	return nil, errors.Wrapf(ErrWalkExceeded, "no end-of-table structure in %d structures", MaxStructures)
}

// Next decodes the next Structure from the stream.
func (d *Decoder) Next() (*Structure, error) {
	start := d.off

	h, err := d.parseHeader()
	if err != nil {
		return nil, err
	}

	fb, err := d.parseFormatted(h)
	if err != nil {
		return nil, err
	}

	ss, err := d.parseStrings()
	if err != nil {
		return nil, err
	}

	return &Structure{
		Header:    *h,
		Kind:      kindOf(h.Type),
		Formatted: fb,
		Strings:   ss,
		Offset:    start,
		Next:      d.off,
	}, nil
}

// parseHeader parses a Structure's Header from the stream.
func (d *Decoder) parseHeader() (*Header, error) {
	if _, err := io.ReadFull(d.br, d.b[:headerLen]); err != nil {
		return nil, ioErr("read structure header", err)
	}
	d.off += headerLen

	return &Header{
		Type:   d.b[0],
		Length: d.b[1],
		Handle: binary.LittleEndian.Uint16(d.b[2:4]),
	}, nil
}

// parseFormatted parses a Structure's formatted area from the stream.  The
// returned slice starts with the header bytes.
func (d *Decoder) parseFormatted(h *Header) ([]byte, error) {
	l := int(h.Length)
	if l < headerLen {
		// Malformed length: keep what was read and let the string-set
		// parsing resynchronize on the next structure.
		l = headerLen
	}

	fb := make([]byte, l)
	copy(fb, d.b[:headerLen])

	if _, err := io.ReadFull(d.br, fb[headerLen:]); err != nil {
		return nil, midStructure("read formatted area", err)
	}
	d.off += int64(l - headerLen)

	return fb, nil
}

// parseStrings parses a Structure's strings from the stream, if they
// are present.
func (d *Decoder) parseStrings() ([]string, error) {
	term, err := d.br.Peek(2)
	if err != nil {
		return nil, midStructure("read strings", err)
	}

	// A leading null means no string-set is present. The terminator is
	// two bytes wide even when firmware puts garbage in the second one.
	if term[0] == 0x00 {
		if _, err := d.br.Discard(2); err != nil {
			return nil, midStructure("read strings", err)
		}
		d.off += 2

		return nil, nil
	}

	var ss []string
	for {
		s, more, err := d.parseString()
		if err != nil {
			return nil, err
		}

		// When final string is received, end parse loop.
		ss = append(ss, s)
		if !more {
			break
		}
	}

	return ss, nil
}

// parseString parses a single string from the stream, and returns if
// any more strings are present.
func (d *Decoder) parseString() (str string, more bool, err error) {
	// We initially read bytes because it's more efficient to manipulate bytes
	// and allocate a string once we're all done.
	//
	// Strings are null-terminated.
	raw, err := d.br.ReadBytes(0x00)
	if err != nil {
		return "", false, midStructure("read string", err)
	}
	d.off += int64(len(raw))

	b := bytes.TrimRight(raw, "\x00")

	peek, err := d.br.Peek(1)
	if err != nil {
		return "", false, midStructure("read string", err)
	}

	if !bytes.Equal(peek, null) {
		// Next byte isn't null; more strings to come.
		return string(b), true, nil
	}

	// If two null bytes appear in a row, end of string-set.
	// Discard the null and indicate no more strings.
	if _, err := d.br.Discard(1); err != nil {
		return "", false, midStructure("read string", err)
	}
	d.off++

	return string(b), false, nil
}

// midStructure wraps an error met inside a structure.  A clean EOF there
// means a truncated table, so it is reported as io.ErrUnexpectedEOF; only
// a header read may end with io.EOF.
func midStructure(op string, err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}

	return ioErr(op, err)
}
