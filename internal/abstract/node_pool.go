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

import "sync"

type nodePool[K, V any] struct {
	pool sync.Pool
}

var syncPoolMap sync.Map

// getNodePool returns the pool shared by every tree with the same key and
// value types.
func getNodePool[K, V any]() *nodePool[K, V] {
	var nilNode *node[K, V]
	v, ok := syncPoolMap.Load(nilNode)
	if !ok {
		v, _ = syncPoolMap.LoadOrStore(nilNode, newNodePool[K, V]())
	}
	return v.(*nodePool[K, V])
}

func newNodePool[K, V any]() *nodePool[K, V] {
	np := nodePool[K, V]{}
	np.pool = sync.Pool{
		New: func() interface{} {
			return new(node[K, V])
		},
	}
	return &np
}

// getNode returns a red node with no children holding key and value.
func (np *nodePool[K, V]) getNode(key K, value V) *node[K, V] {
	n := np.pool.Get().(*node[K, V])
	n.key = key
	n.value = value
	n.color = Red
	return n
}

// putNode clears n so the pool does not retain its key, value, or children.
func (np *nodePool[K, V]) putNode(n *node[K, V]) {
	*n = node[K, V]{}
	np.pool.Put(n)
}
