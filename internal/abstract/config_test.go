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
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	m := makeIntMap()
	require.Same(t, logrus.StandardLogger(), m.td.Logger)
	require.False(t, m.td.CheckInvariants)
	require.Equal(t, -1, m.td.cmp(1, 2))
}

func steps(hook *logtest.Hook) (out []string) {
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.TraceLevel {
			out = append(out, e.Data["op"].(string)+":"+e.Data["step"].(string))
		}
	}
	return out
}

func TestTraceRebalance(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	m := makeIntMap(WithLogger(logger))

	m.Insert(0, 0)
	m.Insert(1, 1)
	require.Empty(t, steps(hook))

	// 0 -> 1 -> 2 is a right-leaning red edge fixed by flipping at 0.
	m.Insert(2, 2)
	require.Equal(t, []string{"insert:flip-left"}, steps(hook))
	require.Equal(t, 0, hook.LastEntry().Data["key"])
	require.Equal(t, "rbtree", hook.LastEntry().Data["component"])

	// Updating a key never rebalances.
	hook.Reset()
	m.Insert(2, 20)
	require.Empty(t, steps(hook))

	// Removing the black leaf 0 leaves a deficiency repaired at 1.
	m.Insert(3, 3)
	hook.Reset()
	m.Remove(0)
	require.Equal(t, []string{"remove:splice-black-leaf", "remove:pull-black", "remove:flip-left-push-black"}, steps(hook))
	requireValid(t, &m)
}

func TestTraceDisabled(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	m := makeIntMap(WithLogger(logger))
	for i := 0; i < 100; i++ {
		m.Insert(i, i)
	}
	for i := 0; i < 100; i += 3 {
		m.Remove(i)
	}
	require.Empty(t, hook.AllEntries())

	logger.SetLevel(logrus.DebugLevel)
	m.Reset()
	require.Len(t, hook.AllEntries(), 1)
	require.Equal(t, "reset", hook.LastEntry().Message)
	require.Equal(t, 66, hook.LastEntry().Data["len"])
}
