// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterStackSpills(t *testing.T) {
	var s iterStack[int, int]
	const N = 3 * iterStackDepth
	for i := 0; i < N; i++ {
		s.push(iterFrame[int, int]{depth: i})
		require.Equal(t, i+1, s.len())
	}
	for i := N - 1; i >= 0; i-- {
		require.Equal(t, i, s.pop().depth)
	}
	require.Zero(t, s.len())
}

func TestDump(t *testing.T) {
	m := ascendingEight()
	require.Equal(t, []Entry[int, int]{
		{Key: 3, Value: 3, Color: Black, Depth: 0},
		{Key: 1, Value: 1, Color: Red, Depth: 1},
		{Key: 0, Value: 0, Color: Black, Depth: 2},
		{Key: 2, Value: 2, Color: Black, Depth: 2},
		{Key: 5, Value: 5, Color: Red, Depth: 1},
		{Key: 4, Value: 4, Color: Black, Depth: 2},
		{Key: 6, Value: 6, Color: Black, Depth: 2},
		{Key: 7, Value: 7, Color: Red, Depth: 3},
	}, m.Dump())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, m.Keys())
	require.Equal(t, 4, m.Height())
}

func TestFprint(t *testing.T) {
	m := MakeMap[string, int](strings.Compare)
	for _, k := range []string{"foo", "bar", "baz"} {
		m.Insert(k, len(k))
	}
	var b strings.Builder
	require.NoError(t, m.Fprint(&b))
	require.Equal(t, ""+
		"baz:BLACK:3\n"+
		"    bar:RED:3\n"+
		"    foo:RED:3\n", b.String())

	m.Remove("bar")
	b.Reset()
	require.NoError(t, m.Fprint(&b))
	require.Equal(t, ""+
		"baz:BLACK:3\n"+
		"    nil\n"+
		"    foo:RED:3\n", b.String())
}

type failingWriter struct{ n int }

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return len(p), nil
}

func TestFprintWriteError(t *testing.T) {
	m := ascendingEight()
	require.ErrorIs(t, m.Fprint(&failingWriter{n: 3}), errWrite)
	require.ErrorIs(t, m.Fprint(&failingWriter{}), errWrite)
}

func TestString(t *testing.T) {
	m := ascendingEight()
	require.Equal(t, "((0:0)1:1(2:2))3:3((4:4)5:5(()6:6(7:7)))", m.String())
	m.Reset()
	require.Equal(t, ";", m.String())
}
