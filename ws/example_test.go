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

package ws_test

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/kasnil/Whitespace/asm"
	"github.com/kasnil/Whitespace/vm"
	"github.com/kasnil/Whitespace/ws"
)

// The full pipeline: assemble readable source, translate it to whitespace,
// parse the translation back and run it.
func ExampleParse() {
	p, err := asm.Assemble("hi", strings.NewReader("'H' putc 'i' putc '\\n' putc end"))
	if err != nil {
		panic(err)
	}

	var wire bytes.Buffer
	if err = ws.Encode(&wire, p); err != nil {
		panic(err)
	}
	fmt.Printf("%d bytes of whitespace: %q...\n", wire.Len(), wire.String()[:8])

	p, err = ws.Parse("hi.ws", &wire)
	if err != nil {
		panic(err)
	}
	i, err := vm.New(p, vm.Output(os.Stdout))
	if err != nil {
		panic(err)
	}
	if err = i.Run(); err != nil {
		panic(err)
	}

	// Output:
	// 45 bytes of whitespace: "   \t  \t "...
	// Hi
}
