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
	"fmt"
)

// ErrInvariantViolated is wrapped by every structural failure, whether it is
// returned from Validate or raised as a panic by the rebalancing code.
var ErrInvariantViolated = errors.New("rbtree: invariant violated")

// assertf panics with an error wrapping ErrInvariantViolated if cond is
// false. Failures indicate a bug in the tree, never a caller mistake.
func assertf(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	panic(fmt.Errorf("%w: %s", ErrInvariantViolated, fmt.Sprintf(format, args...)))
}
