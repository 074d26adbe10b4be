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
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kasnil/Whitespace/asm"
	"github.com/kasnil/Whitespace/vm"
	"github.com/kasnil/Whitespace/ws"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

var (
	useAsm      bool
	dump        bool
	repl        bool
	noRawIO     bool
	debug       bool
	outFileName string
	withFiles   fileList
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [options] <program file>\n", os.Args[0])
	flag.PrintDefaults()
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		p := i.Program()
		if i.PC < len(p) {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), Stack: %v, Calls: %v, Heap: %d cells\n",
				i.PC, p[i.PC].Op, i.Data(), i.Calls(), len(i.Heap()))
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, Stack: %v, Calls: %v, Heap: %d cells\n",
				i.PC, i.Data(), i.Calls(), len(i.Heap()))
		}
	}
	os.Exit(1)
}

// loadProgram translates the given source file with the front end selected
// by the -asm flag.
func loadProgram(name string) (vm.Program, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if useAsm || strings.HasSuffix(name, ".wsa") {
		return asm.Assemble(name, bufio.NewReader(f))
	}
	return ws.Parse(name, bufio.NewReader(f))
}

func translate(p vm.Program, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err = ws.Encode(w, p); err != nil {
		f.Close()
		os.Remove(name)
		return err
	}
	if err = w.Flush(); err != nil {
		f.Close()
		os.Remove(name)
		return err
	}
	return f.Close()
}

func setupIO() (tearDown func()) {
	if noRawIO {
		return nil
	}
	tearDown, err := setRawIO()
	if err != nil {
		// not a terminal, or raw mode unsupported: keep going cooked
		return nil
	}
	return tearDown
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		atExit(i, err)
	}()

	flag.BoolVar(&useAsm, "asm", false, "treat the program file as assembly source")
	flag.BoolVar(&dump, "dump", false, "disassemble the program instead of running it")
	flag.BoolVar(&repl, "repl", false, "start an interactive assembler session")
	flag.Var(&withFiles, "with", "add `filename` to the input list (can be specified multiple times)")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.StringVar(&outFileName, "o", "", "translate to whitespace into `filename` and exit")
	flag.Usage = usage

	flag.Parse()

	if repl {
		err = runRepl()
		return
	}

	if flag.NArg() != 1 {
		usage()
		return
	}

	var prog vm.Program
	prog, err = loadProgram(flag.Arg(0))
	if err != nil {
		return
	}

	if dump {
		err = asm.DisassembleAll(prog, stdout)
		return
	}
	if outFileName != "" {
		err = translate(prog, outFileName)
		return
	}

	// try to switch the terminal to raw mode so that getc reads single
	// bytes without waiting for a full line.
	if tearDown := setupIO(); tearDown != nil {
		defer tearDown()
	}

	opts := []vm.Option{
		vm.Output(stdout),
		vm.Input(os.Stdin),
	}

	// append -with files to the input stack in reverse order so that they
	// are consumed in order of appearance on the command line, before stdin.
	for n := len(withFiles) - 1; n >= 0; n-- {
		var f *os.File
		f, err = os.Open(withFiles[n])
		if err != nil {
			return
		}
		defer f.Close()
		opts = append(opts, vm.Input(bufio.NewReader(f)))
	}

	i, err = vm.New(prog, opts...)
	if err != nil {
		return
	}
	// unlike an interactive forth, a closed input stream mid-read is a
	// genuine failure here, so io.EOF is not special cased.
	err = i.Run()
}
