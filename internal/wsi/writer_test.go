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

package wsi

import (
	"io"
	"strings"
	"testing"
)

type failAfter struct {
	n int
}

func (w *failAfter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, io.ErrClosedPipe
	}
	w.n--
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	u := &failAfter{n: 2}
	ew := NewErrWriter(u)
	for i := 0; i < 5; i++ {
		ew.Write([]byte{'x'})
	}
	if ew.Err == nil || !strings.Contains(ew.Err.Error(), io.ErrClosedPipe.Error()) {
		t.Fatalf("expected latched pipe error, got %v", ew.Err)
	}
	// writes after the failure must not reach the underlying writer
	u.n = 10
	if n, err := ew.Write([]byte{'x'}); n != 0 || err != ew.Err {
		t.Errorf("write after failure: n=%d err=%v", n, err)
	}
	if u.n != 10 {
		t.Error("underlying writer reached after latched error")
	}

	if NewErrWriter(ew) != ew {
		t.Error("wrapping an ErrWriter must hand it back unwrapped")
	}
}
