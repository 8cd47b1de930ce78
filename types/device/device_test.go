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

package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("cpu")
	require.NoError(t, err)
	assert.Equal(t, ByKind(CPU), d)
	assert.Equal(t, "cpu", d.String())

	d, err = Parse("cuda:1")
	require.NoError(t, err)
	assert.Equal(t, New(CUDA, 1), d)
	assert.Equal(t, "cuda:1", d.String())

	d, err = Parse("tpu:0")
	require.NoError(t, err)
	assert.Equal(t, New(TPU, 0), d)

	for _, bad := range []string{"", "gpu", "cuda:", "cuda:x", "cuda:-1", "invalid", "cpu:999"} {
		_, err := Parse(bad)
		assert.Errorf(t, err, "Parse(%q) should have failed", bad)
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, New(Metal, 0), MustParse("metal:0"))
	require.Panics(t, func() { MustParse("not-a-device") })
}

func TestEquality(t *testing.T) {
	assert.True(t, MustParse("cuda:0") == MustParse("cuda:0"))
	assert.False(t, MustParse("cuda:0") == MustParse("cuda:1"))
	assert.False(t, MustParse("cuda:0") == MustParse("cpu"))
	assert.False(t, ByKind(CUDA) == New(CUDA, 0)) // kind-only is not ordinal 0
}

func TestZeroValue(t *testing.T) {
	var d Device
	assert.False(t, d.IsValid())
	assert.True(t, MustParse("cpu").IsValid())
	assert.Equal(t, "device(invalid)", d.String())
}
