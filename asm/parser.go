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

package asm

import (
	"io"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/pkg/errors"

	"github.com/kasnil/Whitespace/vm"
)

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos scanner.Position
}

type label struct {
	def  *labelSite
	uses []labelSite
}

// parser states
const (
	stAny    = iota // accept anything
	stNumber        // need a numeric argument (push, copy, slide)
	stLabel         // need a label argument (mark, call, jump, jz, jn)
	stConst         // need a constant value (.equ)
)

type parser struct {
	prog    vm.Program
	s       scanner.Scanner
	labels  map[string]*label
	consts  map[string]vm.Cell
	pending vm.Instr
	cstName string
	err     error
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]vm.Cell)
	return p
}

func (p *parser) scanError(msg string) error {
	pos := p.s.Position
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	return errors.Errorf("%s: %s", pos, msg)
}

func (p *parser) defineLabel(name string) {
	l := p.labels[name]
	if l == nil {
		l = new(label)
		p.labels[name] = l
	}
	if l.def != nil {
		p.err = p.scanError("label redefinition: " + name + ", previous definition here: " + l.def.pos.String())
		return
	}
	l.def = &labelSite{p.s.Pos()}
	p.prog = append(p.prog, vm.Instr{Op: vm.OpMark, L: name})
}

func (p *parser) useLabel(name string) {
	l := p.labels[name]
	if l == nil {
		l = new(label)
		p.labels[name] = l
	}
	l.uses = append(l.uses, labelSite{p.s.Pos()})
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (vm.Program, error) {
	state := stAny

	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.err = p.scanError(msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); p.err == nil && tok != scanner.EOF; tok = p.s.Scan() {
		var v int64
		s := p.s.TokenText()

		// The syntax is forth like: words can start with and contain digits,
		// symbols, punctuation and so on. The stdlib scanner only returns
		// idents in this mode, so convert back to Ints when required. Chars
		// are only a special case of ints.
		switch tok {
		case scanner.Ident:
			n, err := strconv.ParseInt(s, 0, strconv.IntSize)
			if err == nil {
				tok = scanner.Int
				v = n
				break
			}
			if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
				r, _, _, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
				if err != nil {
					p.err = p.scanError(err.Error())
					break
				}
				v = int64(r)
				tok = scanner.Int
				break
			}
			if c, ok := p.consts[s]; ok {
				v = int64(c)
				tok = scanner.Int
			}
		default:
			p.err = p.scanError("unexpected character " + strconv.QuoteRune(tok))
		}

		if p.err != nil {
			return nil, p.err
		}

	S: // now we only have ints or idents
		switch tok {
		case scanner.Int:
			switch state {
			case stConst:
				p.consts[p.cstName] = vm.Cell(v)
			case stNumber:
				p.pending.N = vm.Cell(v)
				p.prog = append(p.prog, p.pending)
			case stAny:
				// implicit push
				p.prog = append(p.prog, vm.Instr{Op: vm.OpPush, N: vm.Cell(v)})
			default: // stLabel
				p.err = p.scanError("expected label, got number: " + s)
			}
			if state != stLabel {
				state = stAny
			}
		case scanner.Ident:
			switch s[0] {
			case ':':
				if state != stAny {
					p.err = p.scanError("unexpected label definition as argument: " + s)
					break S
				}
				n := s[1:]
				if len(n) == 0 {
					p.err = p.scanError("empty label name")
					break S
				}
				p.defineLabel(n)
			case '.':
				if state != stAny {
					p.err = p.scanError("unexpected directive as argument: " + s)
					break S
				}
				if s != ".equ" {
					p.err = p.scanError("unknown dot directive: " + s)
					break S
				}
				if t := p.s.Scan(); t != scanner.Ident {
					p.err = p.scanError(".equ: expected identifier, got " + p.s.TokenText())
					break S
				}
				p.cstName = p.s.TokenText()
				state = stConst
			default:
				if s == "(" {
					// skip comments
					for tok = p.s.Scan(); p.err == nil && tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
					}
					break S
				}
				if state == stLabel {
					if p.pending.Op == vm.OpMark {
						p.defineLabel(s)
					} else {
						p.useLabel(s)
						p.pending.L = s
						p.prog = append(p.prog, p.pending)
					}
					state = stAny
					break S
				}
				op, ok := opcodeIndex[s]
				if !ok {
					p.err = p.scanError("unknown instruction: " + s)
					break S
				}
				if state != stAny {
					p.err = p.scanError("unexpected instruction as argument: " + s)
					break S
				}
				switch {
				case op.HasNumber():
					p.pending = vm.Instr{Op: op}
					state = stNumber
				case op.HasLabel():
					p.pending = vm.Instr{Op: op}
					state = stLabel
				default:
					p.prog = append(p.prog, vm.Instr{Op: op})
				}
			}
		}
	}

	if p.err == nil && state != stAny {
		p.err = p.scanError("unexpected end of input")
	}

	// check that every referenced label has a definition
	if p.err == nil {
		for n, l := range p.labels {
			if l.def == nil {
				p.err = errors.Errorf("missing label definition for %s, first use here: %s", n, l.uses[0].pos)
				break
			}
		}
	}

	if p.err != nil {
		return nil, p.err
	}
	return p.prog, nil
}
