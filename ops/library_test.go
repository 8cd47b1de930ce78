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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestLibrary(t *testing.T) {
	l := NewLibrary()
	require.NoError(t, l.Register(MustParse("add(Tensor self, Tensor other) -> Tensor")))

	s, found := l.Lookup("add")
	require.True(t, found)
	assert.Equal(t, "add", s.Name)

	_, found = l.Lookup("sub")
	assert.False(t, found)

	// Duplicate registration.
	err := l.Register(MustParse("add(Tensor a, Tensor b) -> Tensor"))
	require.Error(t, err)

	assert.Error(t, l.Register(nil))
	assert.Equal(t, 1, l.Len())
}

func TestRegisterAll(t *testing.T) {
	l := NewLibrary()
	err := l.RegisterAll(
		"relu(Tensor self) -> Tensor",
		"broken(",
		"sum(Tensor self) -> Tensor",
		"relu(Tensor self) -> Tensor", // duplicate
	)
	require.Error(t, err)
	// Failures don't mask each other, nor block the valid entries.
	assert.Len(t, multierr.Errors(err), 2)
	assert.Equal(t, []string{"relu", "sum"}, l.Names())
}

func TestLoadYAML(t *testing.T) {
	const good = `
ops:
  - schema: "add(Tensor self, Tensor other) -> Tensor"
  - schema: "to_device(Tensor self, Device? device) -> Tensor"
`
	l, err := LoadYAML(strings.NewReader(good))
	require.NoError(t, err)
	assert.Equal(t, []string{"add", "to_device"}, l.Names())

	_, err = LoadYAML(strings.NewReader("ops:\n  - schema: \"broken(\"\n"))
	require.Error(t, err)

	_, err = LoadYAML(strings.NewReader("unknown_key: 1\n"))
	require.Error(t, err)

	_, err = LoadYAML(strings.NewReader(":::"))
	require.Error(t, err)
}

func TestStandard(t *testing.T) {
	l := Standard()
	require.Equal(t, len(standardSchemas), l.Len())
	toDevice, found := l.Lookup("to_device")
	require.True(t, found)
	assert.Equal(t, "to_device(Tensor self, Device? device) -> Tensor", toDevice.String())
}
