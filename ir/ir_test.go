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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tensorir/tensorir/types/device"
)

var testAddSchema = &Schema{
	Name: "add",
	Args: []Argument{
		{Name: "self", Type: Tensor()},
		{Name: "other", Type: Tensor()},
	},
	Returns: []Type{Tensor()},
}

func TestBuilder(t *testing.T) {
	g := New("main")
	a := g.Parameter(TensorOn(device.MustParse("cpu")), "a")
	b := g.Parameter(Tensor(), "b")
	n := g.Block().Compute(testAddSchema, a, b)

	require.Len(t, g.Block().Nodes(), 1)
	assert.Equal(t, KindCompute, n.Kind())
	assert.Equal(t, "add", n.OpName())
	assert.Equal(t, []*Value{a, b}, n.Inputs())
	require.Len(t, n.Outputs(), 1)

	out := n.Outputs()[0]
	assert.Same(t, n, out.Def())
	assert.Equal(t, []*Node{n}, a.Uses())
	require.NotNil(t, out.TensorType())
	assert.False(t, out.TensorType().HasDevice())

	// Outputs are minted fresh, never aliased with the schema's return type.
	assert.NotSame(t, testAddSchema.Returns[0], out.Type())

	require.Panics(t, func() { g.Block().Compute(testAddSchema, a) })      // arity
	require.Panics(t, func() { g.Block().Compute(nil, a, b) })            // nil schema
	require.Panics(t, func() { g.Parameter(nil, "x") })                   // nil type
}

func TestStatic(t *testing.T) {
	g := New("consts")
	dev := g.Block().Constant(ConstDevice(device.MustParse("cuda:0")))
	none := g.Block().Constant(ConstNone{})
	weight := g.Block().TensorConstant(TensorOn(device.MustParse("cpu")))
	param := g.Parameter(Tensor(), "p")

	c, ok := dev.Static()
	require.True(t, ok)
	assert.Equal(t, ConstDevice(device.MustParse("cuda:0")), c)
	assert.Equal(t, DeviceObj, dev.Type())

	c, ok = none.Static()
	require.True(t, ok)
	assert.Equal(t, ConstNone{}, c)

	_, ok = weight.Static() // payload not tracked
	assert.False(t, ok)
	_, ok = param.Static() // dynamic
	assert.False(t, ok)
}

func TestTypes(t *testing.T) {
	assert.Equal(t, "Device?", Optional(DeviceObj).String())
	assert.Equal(t, "Device|str", Union(DeviceObj, Str).String())
	assert.Equal(t, "Tensor[]", List(Tensor()).String())
	assert.Equal(t, "int", Int.String())
	assert.Equal(t, "None", NoneType.String())

	// An optional contains its element and None.
	assert.Equal(t, []Type{DeviceObj, NoneType}, Optional(DeviceObj).Contained())
	assert.Nil(t, Tensor().Contained())

	cpu := device.MustParse("cpu")
	tt := Tensor()
	refined := tt.WithDevice(cpu)
	assert.False(t, tt.HasDevice(), "WithDevice must not mutate the receiver")
	assert.True(t, refined.HasDevice())
	assert.Equal(t, cpu, refined.Device)
	assert.Equal(t, "Tensor@cpu", refined.String())

	assert.Nil(t, AsTensor(DeviceObj))
	assert.NotNil(t, AsTensor(tt))
}

func TestSchemaString(t *testing.T) {
	s := &Schema{
		Name: "to_device",
		Args: []Argument{
			{Name: "self", Type: Tensor()},
			{Name: "device", Type: Optional(DeviceObj)},
		},
		Returns: []Type{Tensor()},
	}
	assert.Equal(t, "to_device(Tensor self, Device? device) -> Tensor", s.String())

	multi := &Schema{
		Name:    "split",
		Args:    []Argument{{Name: "self", Type: Tensor()}},
		Returns: []Type{Tensor(), Tensor()},
	}
	assert.Equal(t, "split(Tensor self) -> (Tensor, Tensor)", multi.String())
}

func TestValidate(t *testing.T) {
	g := New("ok")
	a := g.Parameter(Tensor(), "a")
	g.Block().Compute(testAddSchema, a, a)
	require.NoError(t, g.Validate())

	// Break the bookkeeping behind the builder's back.
	bad := New("bad")
	b := bad.Parameter(Tensor(), "b")
	n := bad.Block().Compute(testAddSchema, b, b)
	n.inputs = n.inputs[:1]
	n.schema = nil
	err := bad.Validate()
	require.Error(t, err)
}

func TestGraphString(t *testing.T) {
	g := New("main")
	a := g.Parameter(TensorOn(device.MustParse("cpu")), "%a")
	b := g.Parameter(Tensor(), "%b")
	g.Block().Compute(testAddSchema, a, b)
	got := g.String()
	assert.Contains(t, got, "graph main(%a : Tensor@cpu, %b : Tensor):")
	assert.Contains(t, got, "= add(%a, %b)")
}

func TestNodeKindStrings(t *testing.T) {
	assert.Equal(t, "compute", KindCompute.String())
	assert.Equal(t, "list_unpack", KindListUnpack.String())
	assert.Equal(t, "call_method", KindCallMethod.String())
	kind, err := NodeKindString("loop")
	require.NoError(t, err)
	assert.Equal(t, KindLoop, kind)
}
