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

package ws

import (
	"io"

	"github.com/pkg/errors"

	"github.com/kasnil/Whitespace/internal/wsi"
	"github.com/kasnil/Whitespace/vm"
)

// Encode writes the whitespace encoding of the program to w. The output
// parses back to an identical program: Encode is the exact inverse of Parse
// up to comment characters, which Encode never emits.
func Encode(w io.Writer, p vm.Program) error {
	ew := wsi.NewErrWriter(w)
	for _, in := range p {
		pat, ok := instrPattern[in.Op]
		if !ok {
			return errors.Errorf("encode: invalid opcode %d", int(in.Op))
		}
		io.WriteString(ew, pat)
		switch {
		case in.Op.HasNumber():
			EncodeNumber(ew, in.N)
		case in.Op.HasLabel():
			if err := EncodeLabel(ew, in.L); err != nil {
				return err
			}
		}
		if ew.Err != nil {
			return ew.Err
		}
	}
	return ew.Err
}

// EncodeNumber writes the operand encoding of v: sign token, magnitude bits
// most significant first, linefeed terminator. Zero encodes as a bare sign
// token.
func EncodeNumber(w io.Writer, v vm.Cell) error {
	ew := wsi.NewErrWriter(w)
	m := uint64(v)
	if v < 0 {
		ew.Write([]byte{tokTab})
		m = uint64(-v)
	} else {
		ew.Write([]byte{tokSpace})
	}
	if m > 0 {
		bit := uint(63)
		for m>>bit == 0 {
			bit--
		}
		for ; ; bit-- {
			if m>>bit&1 == 1 {
				ew.Write([]byte{tokTab})
			} else {
				ew.Write([]byte{tokSpace})
			}
			if bit == 0 {
				break
			}
		}
	}
	ew.Write([]byte{tokLF})
	return ew.Err
}

// EncodeLabel writes the operand encoding of a label plus the linefeed
// terminator. A label previously decoded by Parse maps back exactly: '0' to
// a space token, '1' to a tab. Any other label (e.g. an identifier from the
// asm package) is encoded as the bits of its bytes, most significant first,
// which keeps label equality intact across a round trip even though the
// decoded spelling differs.
func EncodeLabel(w io.Writer, label string) error {
	ew := wsi.NewErrWriter(w)
	if isBitString(label) {
		for i := 0; i < len(label); i++ {
			if label[i] == '1' {
				ew.Write([]byte{tokTab})
			} else {
				ew.Write([]byte{tokSpace})
			}
		}
		ew.Write([]byte{tokLF})
		return ew.Err
	}
	for i := 0; i < len(label); i++ {
		for bit := 7; bit >= 0; bit-- {
			if label[i]>>uint(bit)&1 == 1 {
				ew.Write([]byte{tokTab})
			} else {
				ew.Write([]byte{tokSpace})
			}
		}
	}
	ew.Write([]byte{tokLF})
	return ew.Err
}

func isBitString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}
