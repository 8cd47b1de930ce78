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
	"strings"

	"github.com/tensorir/tensorir/types/device"
	"github.com/tensorir/tensorir/types/shapes"
)

// Type of a Value or of a formal argument in a Schema.
//
// The interface is closed: only the implementations in this package exist.
// Type trees are finite and acyclic by construction.
type (
	Type interface {
		fmt.Stringer

		// Contained returns the types directly contained in this type, e.g.
		// the alternatives of a union. It returns nil for leaf types.
		Contained() []Type

		// typ prevents implementations of Type outside this package.
		typ()
	}

	// TensorType is the type of a tensor-valued Value. Both the shape and
	// the device are optional refinements: the zero values mean "not known".
	//
	// TensorType values are treated as immutable once attached to a Value,
	// use WithDevice to derive a refined copy.
	TensorType struct {
		Shape  shapes.Shape
		Device device.Device
	}

	// PrimitiveType is a leaf, non-tensor type.
	PrimitiveType uint8

	// OptionalType wraps a type that may also be None.
	OptionalType struct {
		Elem Type
	}

	// UnionType is a type that is any one of its alternatives.
	UnionType struct {
		Alts []Type
	}

	// ListType is a homogeneous list of Elem.
	ListType struct {
		Elem Type
	}
)

const (
	// Int is a 64-bit integer.
	Int PrimitiveType = iota
	// Float is a 64-bit float.
	Float
	// Bool is a boolean.
	Bool
	// Str is a string.
	Str
	// NoneType is the type of the absent value None.
	NoneType
	// DeviceObj is the type of a device value appearing as an operation
	// argument (e.g. the target-device parameter of a transfer operation).
	DeviceObj
)

var primitiveNames = [...]string{"int", "float", "bool", "str", "None", "Device"}

func (t *TensorType) typ()   {}
func (t PrimitiveType) typ() {}
func (t *OptionalType) typ() {}
func (t *UnionType) typ()    {}
func (t *ListType) typ()     {}

func (t *TensorType) Contained() []Type   { return nil }
func (t PrimitiveType) Contained() []Type { return nil }

// Contained of an optional is its element and None: an optional is the union
// of the two.
func (t *OptionalType) Contained() []Type { return []Type{t.Elem, NoneType} }

func (t *UnionType) Contained() []Type { return t.Alts }
func (t *ListType) Contained() []Type  { return []Type{t.Elem} }

// HasDevice returns whether the tensor's device is known.
func (t *TensorType) HasDevice() bool { return t.Device.IsValid() }

// WithDevice returns a copy of the tensor type with the device set to d. The
// receiver is never mutated.
func (t *TensorType) WithDevice(d device.Device) *TensorType {
	return &TensorType{Shape: t.Shape.Clone(), Device: d}
}

func (t *TensorType) String() string {
	var b strings.Builder
	b.WriteString("Tensor")
	if t.Shape.Ok() {
		b.WriteString(t.Shape.String())
	}
	if t.HasDevice() {
		b.WriteString("@")
		b.WriteString(t.Device.String())
	}
	return b.String()
}

func (t PrimitiveType) String() string {
	if int(t) >= len(primitiveNames) {
		return fmt.Sprintf("PrimitiveType(%d)", t)
	}
	return primitiveNames[t]
}

func (t *OptionalType) String() string { return t.Elem.String() + "?" }

func (t *UnionType) String() string {
	parts := make([]string, len(t.Alts))
	for ii, alt := range t.Alts {
		parts[ii] = alt.String()
	}
	return strings.Join(parts, "|")
}

func (t *ListType) String() string { return t.Elem.String() + "[]" }

// Optional wraps t as an optional type.
func Optional(t Type) *OptionalType { return &OptionalType{Elem: t} }

// Union returns the union of the given alternatives.
func Union(alts ...Type) *UnionType { return &UnionType{Alts: alts} }

// List returns the type of lists of elem.
func List(elem Type) *ListType { return &ListType{Elem: elem} }

// Tensor returns a tensor type with unknown shape and device.
func Tensor() *TensorType { return &TensorType{} }

// TensorOn returns a tensor type with unknown shape on the given device.
func TensorOn(d device.Device) *TensorType { return &TensorType{Device: d} }

// AsTensor returns t as a *TensorType, or nil if t is not a tensor type.
func AsTensor(t Type) *TensorType {
	tt, _ := t.(*TensorType)
	return tt
}
