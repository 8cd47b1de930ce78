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

package shapes

import (
	"testing"

	. "github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	invalidShape := Invalid()
	require.False(t, invalidShape.Ok())
	require.False(t, Shape{}.Ok())

	shape0 := Scalar(Float64)
	require.True(t, shape0.Ok())
	require.True(t, shape0.IsScalar())
	require.Equal(t, 0, shape0.Rank())
	require.Len(t, shape0.Dimensions, 0)
	require.Equal(t, 1, shape0.Size())

	shape1 := Make(Float32, 4, 3, 2)
	require.True(t, shape1.Ok())
	require.False(t, shape1.IsScalar())
	require.Equal(t, 3, shape1.Rank())
	require.Equal(t, 4*3*2, shape1.Size())
	require.Equal(t, 4, shape1.Dim(0))
	require.Equal(t, 2, shape1.Dim(-1))
	require.Panics(t, func() { shape1.Dim(3) })

	require.Panics(t, func() { Make(Float32, 2, 0) })
}

func TestCloneAndEqual(t *testing.T) {
	shape := Make(Int32, 2, 3)
	clone := shape.Clone()
	require.True(t, shape.Equal(clone))
	clone.Dimensions[0] = 7
	require.False(t, shape.Equal(clone))
	require.Equal(t, 2, shape.Dimensions[0])

	require.False(t, Make(Int32, 2, 3).Equal(Make(Int64, 2, 3)))
	require.False(t, Make(Int32, 2, 3).Equal(Make(Int32, 2)))
	require.True(t, Invalid().Equal(Shape{}))
}

func TestString(t *testing.T) {
	require.Equal(t, "(float32)[4 3 2]", Make(Float32, 4, 3, 2).String())
	require.Equal(t, "(float64)", Scalar(Float64).String())
	require.Equal(t, "(invalid)", Invalid().String())
}
