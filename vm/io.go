// This file is part of Whitespace - https://github.com/kasnil/Whitespace
//
// Copyright 2018 The Whitespace Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

type flusher interface {
	Flush() error
}

// byteWriter is the output side of the VM. Writes go out one byte at a time
// and are flushed before the next instruction executes, so observable output
// ordering matches execution order even if the process is interrupted.
type byteWriter interface {
	WriteByte(c byte) error
	Flush() error
}

type byteWriterWrapper struct {
	io.Writer
}

func (w *byteWriterWrapper) WriteByte(c byte) (err error) {
	_, err = w.Writer.Write([]byte{c})
	return
}

func (w *byteWriterWrapper) Flush() error {
	if f, ok := w.Writer.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// newWriter wraps w into a byteWriter unless it already is one.
func newWriter(w io.Writer) byteWriter {
	switch ww := w.(type) {
	case nil:
		return nil
	case byteWriter:
		return ww
	default:
		return &byteWriterWrapper{w}
	}
}

// byteReaderWrapper turns a plain io.Reader into an io.ByteReader and
// io.Closer.
type byteReaderWrapper struct {
	io.Reader
}

func (r *byteReaderWrapper) ReadByte() (byte, error) {
	var b [1]byte
	for {
		n, err := r.Reader.Read(b[:])
		if n > 0 {
			return b[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (r *byteReaderWrapper) Close() error {
	if c, ok := r.Reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func newByteReader(r io.Reader) io.ByteReader {
	switch rr := r.(type) {
	case nil:
		return nil
	case io.ByteReader:
		return rr
	default:
		return &byteReaderWrapper{r}
	}
}

type multiByteReader struct {
	readers []io.ByteReader
}

func (mr *multiByteReader) ReadByte() (c byte, err error) {
	for len(mr.readers) > 0 {
		c, err = mr.readers[0].ReadByte()
		if err != io.EOF {
			return c, err
		}
		// discard the exhausted reader and optionally close it
		if cl, ok := mr.readers[0].(io.Closer); ok {
			cl.Close()
		}
		mr.readers = mr.readers[1:]
	}
	return 0, io.EOF
}

func (mr *multiByteReader) pushReader(r io.Reader) {
	mr.readers = append([]io.ByteReader{newByteReader(r)}, mr.readers...)
}

// PushInput sets r as the current input for the VM. When this reader reaches
// EOF, the previously pushed reader will be used.
func (i *Instance) PushInput(r io.Reader) {
	// dont use a multi reader unless necessary
	switch in := i.input.(type) {
	case nil: // no input yet, single assign
		i.input = newByteReader(r)
	case *multiByteReader:
		in.pushReader(r)
	default:
		i.input = &multiByteReader{[]io.ByteReader{newByteReader(r), i.input}}
	}
}

func (i *Instance) putc(c byte) error {
	if i.output == nil {
		return nil
	}
	if err := i.output.WriteByte(c); err != nil {
		return errors.Wrap(err, "putc")
	}
	return errors.Wrap(i.output.Flush(), "putc")
}

// putn writes the decimal representation of v one byte at a time through the
// putc path.
func (i *Instance) putn(v Cell) error {
	for _, c := range []byte(strconv.Itoa(int(v))) {
		if err := i.putc(c); err != nil {
			return err
		}
	}
	return nil
}

func (i *Instance) getc() (Cell, error) {
	if i.input == nil {
		return 0, errors.New("getc: no input")
	}
	c, err := i.input.ReadByte()
	if err != nil {
		return 0, errors.Wrap(err, "getc")
	}
	return Cell(c), nil
}

// getn reads bytes up to and including a linefeed and parses them as a
// decimal integer with an optional leading '-'. The linefeed is consumed but
// not part of the number.
func (i *Instance) getn() (Cell, error) {
	if i.input == nil {
		return 0, errors.New("getn: no input")
	}
	var buf []byte
	for {
		c, err := i.input.ReadByte()
		if err != nil {
			return 0, errors.Wrap(err, "getn")
		}
		if c == '\n' {
			break
		}
		buf = append(buf, c)
	}
	n, err := strconv.ParseInt(string(buf), 10, strconv.IntSize)
	if err != nil {
		return 0, errors.Errorf("getn: invalid number %q", buf)
	}
	return Cell(n), nil
}
