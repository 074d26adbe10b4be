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

// The token alphabet. Tokens keep their source byte value, which makes the
// instruction patterns in parse.go readable as plain Go strings.
const (
	tokSpace = ' '
	tokTab   = '\t'
	tokLF    = '\n'
)

type position struct {
	line, col int
}

// scan extracts the significant characters from src. Every byte that is not
// a space, tab or linefeed is a comment and is dropped. The returned chars
// and pos slices are parallel: pos[i] is the source position of chars[i].
// Scanning cannot fail; empty input yields empty slices.
func scan(src []byte) (chars []byte, pos []position) {
	line, col := 1, 1
	for _, c := range src {
		switch c {
		case tokSpace, tokTab:
			chars = append(chars, c)
			pos = append(pos, position{line, col})
			col++
		case tokLF:
			chars = append(chars, c)
			pos = append(pos, position{line, col})
			line, col = line+1, 1
		default:
			col++
		}
	}
	return chars, pos
}
