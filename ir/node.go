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
	"strings"
)

// NodeId is the unique id of a Node within its Graph.
type NodeId int

// NodeKind distinguishes the built-in meta operations from ordinary
// computational operations. It is a closed enumeration: passes dispatch on it
// with exhaustive switches.
type NodeKind uint8

//go:generate enumer -type=NodeKind -trimprefix=Kind -transform=snake -output=gen_nodekind_enumer.go node.go
const (
	// KindInvalid is the zero NodeKind.
	KindInvalid NodeKind = iota
	// KindCompute applies a computational operation described by a Schema.
	KindCompute
	// KindConstant materializes a statically known value.
	KindConstant
	// KindListConstruct packs its inputs into a list.
	KindListConstruct
	// KindListUnpack unpacks a list into its elements.
	KindListUnpack
	// KindIf is a conditional branch with nested blocks.
	KindIf
	// KindLoop is a loop with a nested body block.
	KindLoop
	// KindCallFunction calls a free function subgraph.
	KindCallFunction
	// KindCallMethod calls a method subgraph.
	KindCallMethod
)

// Node is one operation application in a Block: a kind, ordered input values
// and ordered output values. KindCompute nodes additionally carry the Schema
// of their operation; KindConstant nodes carry their Const payload.
//
// Node topology is immutable after construction. Only the types of its values
// are refined by passes.
type Node struct {
	block    *Block
	id       NodeId
	kind     NodeKind
	schema   *Schema // KindCompute only.
	constVal Const   // KindConstant only; nil for tensor constants.
	inputs   []*Value
	outputs  []*Value
}

// Kind of the node.
func (n *Node) Kind() NodeKind {
	if n == nil {
		return KindInvalid
	}
	return n.kind
}

// Id of the node within its graph.
func (n *Node) Id() NodeId { return n.id }

// Block holding this node.
func (n *Node) Block() *Block { return n.block }

// Graph holding this node.
func (n *Node) Graph() *Graph { return n.block.graph }

// Schema of the operation applied by a KindCompute node, nil for every other
// kind.
func (n *Node) Schema() *Schema { return n.schema }

// Inputs returns the node's input values in order. Do not modify.
func (n *Node) Inputs() []*Value { return n.inputs }

// Outputs returns the node's output values in order. Do not modify.
func (n *Node) Outputs() []*Value { return n.outputs }

// ConstValue returns the payload of a KindConstant node. ok is false for
// other kinds and for tensor constants, whose payload is not tracked in the
// IR.
func (n *Node) ConstValue() (c Const, ok bool) {
	if n.kind != KindConstant || n.constVal == nil {
		return nil, false
	}
	return n.constVal, true
}

// OpName returns the operation name of a KindCompute node and the kind name
// for every other kind.
func (n *Node) OpName() string {
	if n.kind == KindCompute {
		return n.schema.Name
	}
	return n.kind.String()
}

// String prints the node in dump form, e.g.
// "%2 : Tensor@cpu = add(%0, %1)".
func (n *Node) String() string {
	var b strings.Builder
	for ii, out := range n.outputs {
		if ii > 0 {
			b.WriteString(", ")
		}
		b.WriteString(out.Name())
		b.WriteString(" : ")
		b.WriteString(out.Type().String())
	}
	if len(n.outputs) > 0 {
		b.WriteString(" = ")
	}
	b.WriteString(n.OpName())
	if c, ok := n.ConstValue(); ok {
		b.WriteString("[")
		b.WriteString(c.String())
		b.WriteString("]")
	}
	b.WriteString("(")
	for ii, in := range n.inputs {
		if ii > 0 {
			b.WriteString(", ")
		}
		b.WriteString(in.Name())
	}
	b.WriteString(")")
	return b.String()
}
