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

import "fmt"

// Color is the tag carried by every node. The three colors form a scale of
// "blackness" along which removal moves units up and down the tree.
type Color uint8

const (
	Red Color = iota
	Black
	// DoubleBlack only exists while Remove is repairing the tree. No node
	// carries it once Remove returns.
	DoubleBlack
)

func (c Color) String() string {
	switch c {
	case Red:
		return "RED"
	case Black:
		return "BLACK"
	case DoubleBlack:
		return "DOUBLE_BLACK"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

type colorStep struct {
	to Color
	ok bool
}

// colorSteps is the transition table for adding (up) or removing (down) one
// unit of blackness.
var colorSteps = [...]struct{ up, down colorStep }{
	Red:         {up: colorStep{Black, true}},
	Black:       {up: colorStep{DoubleBlack, true}, down: colorStep{Red, true}},
	DoubleBlack: {down: colorStep{Black, true}},
}

func (c Color) valid() bool { return int(c) < len(colorSteps) }

func (c Color) increment() Color {
	assertf(c.valid() && colorSteps[c].up.ok, "cannot increment %v", c)
	return colorSteps[c].up.to
}

func (c Color) decrement() Color {
	assertf(c.valid() && colorSteps[c].down.ok, "cannot decrement %v", c)
	return colorSteps[c].down.to
}
