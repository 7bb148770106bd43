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

import "github.com/sirupsen/logrus"

// Config is used to configure the tree. The comparison function for keys is
// not part of it; it is supplied to MakeMap directly.
type Config struct {

	// Logger receives trace output from the rebalancing code and warnings
	// about violations found by Validate. Defaults to logrus.StandardLogger.
	Logger *logrus.Logger

	// CheckInvariants makes every mutation validate the whole tree and
	// panic on the first violation. It turns O(log n) operations into O(n)
	// ones and is intended for tests.
	CheckInvariants bool
}

// Option mutates a Config.
type Option func(*Config)

// WithLogger sets the logger used by the tree.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithInvariantChecks enables validation after every Insert and Remove.
func WithInvariantChecks() Option {
	return func(c *Config) { c.CheckInvariants = true }
}

type treeData[K, V any] struct {
	Config
	cmp func(K, K) int
	log *logrus.Entry
	np  *nodePool[K, V]
}

func makeTreeData[K, V any](cmp func(K, K) int, opts ...Option) (td treeData[K, V]) {
	for _, o := range opts {
		o(&td.Config)
	}
	if td.Logger == nil {
		td.Logger = logrus.StandardLogger()
	}
	td.cmp = cmp
	td.log = td.Logger.WithField("component", "rbtree")
	td.np = getNodePool[K, V]()
	return td
}

// trace records a single rebalancing step. The level check keeps the cost
// to a branch when tracing is off.
func (td *treeData[K, V]) trace(op, step string, key K) {
	if !td.Logger.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	td.log.WithFields(logrus.Fields{
		"op": op, "step": step, "key": key,
	}).Trace("rebalance")
}
