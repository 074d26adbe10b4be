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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/kasnil/Whitespace/asm"
	"github.com/kasnil/Whitespace/vm"
)

const (
	historyFile = ".ws_history"
	prompt      = "ws> "
	banner      = "Whitespace assembler REPL. Ctrl+C cancels input, Ctrl+D or bye exits."
)

// runRepl reads assembly one line at a time, extends the running instance
// with the new instructions and executes them. Labels may reference any
// line entered so far; the whole session is re-assembled on each input so
// forward checks stay consistent, but only the new instructions run.
func runRepl() error {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	i, err := vm.New(nil, vm.Input(os.Stdin), vm.Output(os.Stdout))
	if err != nil {
		return err
	}

	var src strings.Builder
	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil { // io.EOF
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.TrimSpace(line) == "bye" {
			return nil
		}
		ln.AppendHistory(line)

		// re-assemble the whole session: the previously accepted source
		// assembles to the exact same prefix, so everything past the old
		// program length is this line's code.
		candidate := src.String() + line + "\n"
		prog, err := asm.Assemble("repl", strings.NewReader(candidate))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		src.Reset()
		src.WriteString(candidate)

		i.Extend(prog[len(i.Program()):])
		if err = i.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			// skip whatever is left of the failed line and keep the session
			i.PC = len(i.Program())
			continue
		}
		fmt.Println(i.Data())
	}
}
