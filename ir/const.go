/*
 *	Copyright 2025 The TensorIR Authors
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package ir

import (
	"fmt"
	"strconv"

	"github.com/gomlx/exceptions"
	"github.com/tensorir/tensorir/types/device"
)

// Const is a statically known value held by a constant-materialization node.
//
// The interface is closed: only the Const* implementations in this package
// exist. Use Value.Static to resolve an input to its Const, if any.
type (
	Const interface {
		fmt.Stringer

		// constVal prevents implementations of Const outside this package.
		constVal()
	}

	// ConstNone is the absent value, e.g. an optional argument left unset.
	ConstNone struct{}

	// ConstDevice is a device value, e.g. the target of a transfer operation.
	ConstDevice device.Device

	// ConstInt is an integer value.
	ConstInt int64

	// ConstFloat is a float value.
	ConstFloat float64

	// ConstBool is a boolean value.
	ConstBool bool

	// ConstStr is a string value.
	ConstStr string
)

func (ConstNone) constVal()   {}
func (ConstDevice) constVal() {}
func (ConstInt) constVal()    {}
func (ConstFloat) constVal()  {}
func (ConstBool) constVal()   {}
func (ConstStr) constVal()    {}

func (ConstNone) String() string     { return "None" }
func (c ConstDevice) String() string { return device.Device(c).String() }
func (c ConstInt) String() string    { return strconv.FormatInt(int64(c), 10) }
func (c ConstFloat) String() string  { return strconv.FormatFloat(float64(c), 'g', -1, 64) }
func (c ConstBool) String() string   { return strconv.FormatBool(bool(c)) }
func (c ConstStr) String() string    { return strconv.Quote(string(c)) }

// TypeOf returns the Type of a constant value.
func TypeOf(c Const) Type {
	switch c.(type) {
	case ConstNone:
		return NoneType
	case ConstDevice:
		return DeviceObj
	case ConstInt:
		return Int
	case ConstFloat:
		return Float
	case ConstBool:
		return Bool
	case ConstStr:
		return Str
	}
	exceptions.Panicf("ir.TypeOf: unknown constant %v (%T)", c, c)
	return nil
}
