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

// Package ir is the tensor SSA intermediate representation analysis passes
// run over.
//
// A Graph owns one or more top-level Blocks, each an ordered sequence of
// Nodes. A Node applies one operation to ordered input Values and produces
// ordered output Values. Values are typed edges shared by reference between
// producer and consumers; passes refine value types in place and never change
// the topology.
//
// The main elements in the package are:
//
//   - Graph/Block/Node/Value: the graph structure, built once (see the
//     builder methods on Graph and Block) and immutable in topology
//     afterwards.
//   - Type: the closed type lattice of values -- TensorType with optional
//     shape and device refinements, primitive types, optionals, unions and
//     lists.
//   - Schema: the signature of a computational operation, carried by every
//     KindCompute node.
//   - Const: statically known values held by constant nodes, resolved from
//     inputs with Value.Static.
//
// Misuse of the builder (wrong arity, nil types) panics: graphs are built by
// front ends that are expected to hold these contracts, not by end users.
package ir

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Graph is the ownership root of the IR: it holds the graph parameters and
// the top-level block(s).
type Graph struct {
	name       string
	params     []*Value
	blocks     []*Block
	nextNodeId NodeId
	nextValue  int
}

// Block is an ordered sequence of nodes, owned by the Graph.
type Block struct {
	graph *Graph
	nodes []*Node
}

// New creates an empty graph with a single top-level block.
func New(name string) *Graph {
	g := &Graph{name: name}
	g.blocks = []*Block{{graph: g}}
	return g
}

// Name of the graph.
func (g *Graph) Name() string { return g.name }

// Blocks returns the top-level blocks in order. Do not modify.
func (g *Graph) Blocks() []*Block { return g.blocks }

// Block returns the first top-level block, where nodes are appended by
// default.
func (g *Graph) Block() *Block { return g.blocks[0] }

// Parameters returns the graph's input values in order.
func (g *Graph) Parameters() []*Value { return g.params }

// Parameter adds a graph input with the given type. If name is empty an
// auto-generated one is used.
func (g *Graph) Parameter(t Type, name string) *Value {
	if t == nil {
		exceptions.Panicf("ir: Parameter with nil type on graph %q", g.name)
	}
	v := g.newValue(nil, 0, t, name)
	g.params = append(g.params, v)
	return v
}

func (g *Graph) newValue(def *Node, index int, t Type, name string) *Value {
	if name == "" {
		name = fmt.Sprintf("%%%d", g.nextValue)
	}
	g.nextValue++
	return &Value{def: def, index: index, typ: t, name: name}
}

// Nodes returns the block's nodes in order. Do not modify.
func (b *Block) Nodes() []*Node { return b.nodes }

// Graph holding this block.
func (b *Block) Graph() *Graph { return b.graph }

func (b *Block) newNode(kind NodeKind, inputs []*Value, outputTypes []Type) *Node {
	g := b.graph
	n := &Node{block: b, id: g.nextNodeId, kind: kind, inputs: inputs}
	g.nextNodeId++
	for _, in := range inputs {
		if in == nil {
			exceptions.Panicf("ir: nil input to %s node in graph %q", kind, g.name)
		}
		in.uses = append(in.uses, n)
	}
	n.outputs = make([]*Value, len(outputTypes))
	for ii, t := range outputTypes {
		n.outputs[ii] = g.newValue(n, ii, freshType(t), "")
	}
	b.nodes = append(b.nodes, n)
	return n
}

// freshType copies tensor types so that output values minted from a shared
// schema never alias each other's type object. Every other type is immutable.
func freshType(t Type) Type {
	if tt := AsTensor(t); tt != nil {
		return &TensorType{Shape: tt.Shape.Clone(), Device: tt.Device}
	}
	return t
}

// Compute appends a computational node applying schema to the given inputs.
// One output value is minted per schema return. The number of inputs must
// match the number of formal arguments: optional arguments left unset must be
// bound to a None constant by the caller.
func (b *Block) Compute(schema *Schema, inputs ...*Value) *Node {
	if schema == nil {
		exceptions.Panicf("ir: Compute with nil schema in graph %q", b.graph.name)
	}
	if len(inputs) != len(schema.Args) {
		exceptions.Panicf("ir: %s expects %d arguments, got %d", schema.Name, len(schema.Args), len(inputs))
	}
	n := b.newNode(KindCompute, inputs, schema.Returns)
	n.schema = schema
	return n
}

// Constant appends a constant-materialization node holding c and returns its
// single output value, typed after c.
func (b *Block) Constant(c Const) *Value {
	if c == nil {
		exceptions.Panicf("ir: Constant(nil) in graph %q", b.graph.name)
	}
	n := b.newNode(KindConstant, nil, []Type{TypeOf(c)})
	n.constVal = c
	return n.outputs[0]
}

// TensorConstant appends a constant node whose output is a tensor of type t,
// e.g. a weight frozen into the graph. The tensor payload itself is not
// tracked in the IR, so Value.Static does not resolve it.
func (b *Block) TensorConstant(t *TensorType) *Value {
	if t == nil {
		exceptions.Panicf("ir: TensorConstant(nil) in graph %q", b.graph.name)
	}
	n := b.newNode(KindConstant, nil, []Type{t})
	return n.outputs[0]
}

// If appends a conditional-branch node on cond with the given result types.
// Nested branch blocks are not modeled: analyses that would need them must
// reject the node.
func (b *Block) If(cond *Value, results ...Type) *Node {
	return b.newNode(KindIf, []*Value{cond}, results)
}

// Loop appends a loop node carrying the given values. Outputs mirror the
// carried types.
func (b *Block) Loop(tripCount *Value, carried ...*Value) *Node {
	inputs := append([]*Value{tripCount}, carried...)
	outputTypes := make([]Type, len(carried))
	for ii, v := range carried {
		outputTypes[ii] = v.Type()
	}
	return b.newNode(KindLoop, inputs, outputTypes)
}

// CallFunction appends a call to a function subgraph.
func (b *Block) CallFunction(results []Type, inputs ...*Value) *Node {
	return b.newNode(KindCallFunction, inputs, results)
}

// CallMethod appends a call to a method subgraph.
func (b *Block) CallMethod(results []Type, inputs ...*Value) *Node {
	return b.newNode(KindCallMethod, inputs, results)
}

// ListConstruct appends a node packing inputs into a list of elem.
func (b *Block) ListConstruct(elem Type, inputs ...*Value) *Node {
	return b.newNode(KindListConstruct, inputs, []Type{List(elem)})
}

// ListUnpack appends a node unpacking list into values of the given types.
func (b *Block) ListUnpack(list *Value, results ...Type) *Node {
	return b.newNode(KindListUnpack, []*Value{list}, results)
}

// Validate checks the graph's internal bookkeeping: compute nodes have a
// schema with matching arity, constant nodes have a payload or a tensor
// output, and every value is typed. All problems found are aggregated into
// the returned error.
func (g *Graph) Validate() (err error) {
	for _, b := range g.blocks {
		for _, n := range b.nodes {
			switch n.kind {
			case KindCompute:
				if n.schema == nil {
					err = multierr.Append(err, errors.Errorf("node %d: compute node without schema", n.id))
				} else if len(n.inputs) != len(n.schema.Args) {
					err = multierr.Append(err, errors.Errorf("node %d: %s expects %d arguments, has %d inputs",
						n.id, n.schema.Name, len(n.schema.Args), len(n.inputs)))
				}
			case KindConstant:
				if n.constVal == nil && (len(n.outputs) != 1 || n.outputs[0].TensorType() == nil) {
					err = multierr.Append(err, errors.Errorf("node %d: constant node without payload or tensor output", n.id))
				}
			}
			for _, out := range n.outputs {
				if out.Type() == nil {
					err = multierr.Append(err, errors.Errorf("node %d: untyped output %s", n.id, out.Name()))
				}
			}
		}
	}
	return err
}

// String prints the graph in dump form, one node per line.
func (g *Graph) String() string {
	var b strings.Builder
	b.WriteString("graph ")
	b.WriteString(g.name)
	b.WriteString("(")
	for ii, p := range g.params {
		if ii > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name())
		b.WriteString(" : ")
		b.WriteString(p.Type().String())
	}
	b.WriteString("):\n")
	for _, blk := range g.blocks {
		for _, n := range blk.nodes {
			b.WriteString("  ")
			b.WriteString(n.String())
			b.WriteString("\n")
		}
	}
	return b.String()
}
