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

package ops

import (
	"github.com/gomlx/exceptions"
)

// standardSchemas is the compiled-in operation set. Front ends with their own
// operation inventory load it from a manifest instead, see LoadYAML.
var standardSchemas = []string{
	"add(Tensor self, Tensor other) -> Tensor",
	"mul(Tensor self, Tensor other) -> Tensor",
	"matmul(Tensor self, Tensor other) -> Tensor",
	"relu(Tensor self) -> Tensor",
	"sum(Tensor self) -> Tensor",
	"split(Tensor self, int chunks) -> (Tensor, Tensor)",
	"to_device(Tensor self, Device? device) -> Tensor",
	"device_of(Tensor self) -> Device",
	"size(Tensor self, int dim) -> int",
}

// Standard returns a fresh library with the compiled-in operation set.
func Standard() *Library {
	l := NewLibrary()
	if err := l.RegisterAll(standardSchemas...); err != nil {
		// The table is compiled in, a failure here is a programming error.
		exceptions.Panicf("ops.Standard: invalid compiled-in schema table: %+v", err)
	}
	return l
}
