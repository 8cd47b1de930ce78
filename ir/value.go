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
	"github.com/gomlx/exceptions"
)

// Value is a typed edge of the graph: produced by exactly one node (or by the
// graph itself, for parameters) and consumed by zero or more nodes.
//
// Values are shared by reference between their producer and all consumers.
// Passes refine a value's type in place with SetType; they never change which
// node a value belongs to.
type Value struct {
	def   *Node // nil for graph parameters.
	index int   // output index within def.
	name  string
	typ   Type
	uses  []*Node
}

// Def returns the node that produces this value, or nil for a graph
// parameter.
func (v *Value) Def() *Node { return v.def }

// Index returns the value's output index within its defining node, 0 for
// graph parameters.
func (v *Value) Index() int { return v.index }

// Name returns the value's name, used in dumps. Auto-generated ("%3") unless
// given at construction.
func (v *Value) Name() string { return v.name }

// Type returns the value's current type.
func (v *Value) Type() Type { return v.typ }

// SetType refines the value's type in place.
func (v *Value) SetType(t Type) {
	if t == nil {
		exceptions.Panicf("ir: SetType(nil) on value %s", v.name)
	}
	v.typ = t
}

// TensorType returns the value's type as a *TensorType, or nil if the value
// is not tensor-typed.
func (v *Value) TensorType() *TensorType { return AsTensor(v.typ) }

// Uses returns the nodes consuming this value, in insertion order. A node
// consuming the value through several inputs appears once per input.
func (v *Value) Uses() []*Node { return v.uses }

// Static resolves the value to a statically known constant: it returns the
// constant held by the value's defining node if that node is a
// constant-materialization node. ok is false for anything dynamic, including
// graph parameters and tensor constants whose payload is not tracked here.
func (v *Value) Static() (c Const, ok bool) {
	if v.def == nil || v.def.kind != KindConstant || v.def.constVal == nil {
		return nil, false
	}
	return v.def.constVal, true
}
