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

// Argument is one formal argument of an operation: a name and a declared
// type. The declared type may be an optional or union wrapping a device type,
// see Schema.
type Argument struct {
	Name string
	Type Type
}

// Schema is the signature of a computational operation: its name, ordered
// formal arguments and ordered return types.
//
// Every KindCompute node carries the Schema of the operation it applies. The
// number of node inputs always equals the number of formal arguments --
// optional arguments left unset by the caller are bound to a None constant by
// the graph builder.
//
// Schemas are built either directly or from schema strings, see the ops
// package.
type Schema struct {
	Name    string
	Args    []Argument
	Returns []Type
}

// String reconstructs the schema-string form, e.g.
// "to_device(Tensor self, Device? device) -> Tensor".
func (s *Schema) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteString("(")
	for ii, arg := range s.Args {
		if ii > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.Type.String())
		b.WriteString(" ")
		b.WriteString(arg.Name)
	}
	b.WriteString(") -> ")
	if len(s.Returns) == 1 {
		b.WriteString(s.Returns[0].String())
		return b.String()
	}
	b.WriteString("(")
	for ii, ret := range s.Returns {
		if ii > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ret.String())
	}
	b.WriteString(")")
	return b.String()
}
