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

package vm_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/kasnil/Whitespace/asm"
	"github.com/kasnil/Whitespace/vm"
	"github.com/kasnil/Whitespace/ws"
)

// whole program fixtures, assembled and run against captured IO.
type script struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
	In   string `yaml:"in"`
	Out  string `yaml:"out"`
}

func loadScripts(t *testing.T) []script {
	t.Helper()
	src, err := os.ReadFile("testdata/programs.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var scripts []script
	if err = yaml.Unmarshal(src, &scripts); err != nil {
		t.Fatal(err)
	}
	return scripts
}

func TestScripts(t *testing.T) {
	for _, sc := range loadScripts(t) {
		t.Run(sc.Name, func(t *testing.T) {
			p, err := asm.Assemble(sc.Name, strings.NewReader(sc.Code))
			if err != nil {
				t.Fatal(err)
			}
			var out bytes.Buffer
			i, err := vm.New(p,
				vm.Input(strings.NewReader(sc.In)),
				vm.Output(&out))
			if err != nil {
				t.Fatal(err)
			}
			if err = i.Run(); err != nil {
				t.Fatalf("%+v", err)
			}
			if got := out.String(); got != sc.Out {
				t.Errorf("expected output %q, got %q", sc.Out, got)
			}
		})
	}
}

// every fixture must behave identically after a round trip through the
// whitespace wire format.
func TestScripts_encoded(t *testing.T) {
	for _, sc := range loadScripts(t) {
		t.Run(sc.Name, func(t *testing.T) {
			p, err := asm.Assemble(sc.Name, strings.NewReader(sc.Code))
			if err != nil {
				t.Fatal(err)
			}
			var enc bytes.Buffer
			if err = ws.Encode(&enc, p); err != nil {
				t.Fatal(err)
			}
			p, err = ws.Parse(sc.Name, &enc)
			if err != nil {
				t.Fatal(err)
			}
			var out bytes.Buffer
			i, err := vm.New(p,
				vm.Input(strings.NewReader(sc.In)),
				vm.Output(&out))
			if err != nil {
				t.Fatal(err)
			}
			if err = i.Run(); err != nil {
				t.Fatalf("%+v", err)
			}
			if got := out.String(); got != sc.Out {
				t.Errorf("expected output %q, got %q", sc.Out, got)
			}
		})
	}
}
