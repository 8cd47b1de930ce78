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

// Package ops manages operation signatures: parsing schema strings
// ("add(Tensor self, Tensor other) -> Tensor") and looking them up by
// operation name through a Library.
//
// A Library is an explicit value, not a process-global: front ends construct
// one (from compiled-in tables, see Standard, or from a YAML manifest, see
// LoadYAML) and hand the schemas to the graph builder.
package ops

import (
	"io"
	"slices"

	"github.com/pkg/errors"
	"github.com/tensorir/tensorir/ir"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Library is a registry of operation schemas keyed by operation name.
type Library struct {
	byName map[string]*ir.Schema
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{byName: make(map[string]*ir.Schema)}
}

// Register adds a schema to the library. Registering a second schema under
// the same operation name is an error.
func (l *Library) Register(s *ir.Schema) error {
	if s == nil || s.Name == "" {
		return errors.New("cannot register a nil or unnamed schema")
	}
	if _, found := l.byName[s.Name]; found {
		return errors.Errorf("operation %q is already registered", s.Name)
	}
	l.byName[s.Name] = s
	return nil
}

// RegisterAll parses and registers each schema string. It keeps going past
// individual failures and returns all of them aggregated.
func (l *Library) RegisterAll(schemas ...string) (err error) {
	for _, schemaStr := range schemas {
		s, parseErr := Parse(schemaStr)
		if parseErr != nil {
			err = multierr.Append(err, parseErr)
			continue
		}
		err = multierr.Append(err, l.Register(s))
	}
	return err
}

// Lookup returns the schema registered under the operation name.
func (l *Library) Lookup(name string) (s *ir.Schema, found bool) {
	s, found = l.byName[name]
	return
}

// Names returns the registered operation names, sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.byName))
	for name := range l.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered operations.
func (l *Library) Len() int { return len(l.byName) }

type manifest struct {
	Ops []struct {
		Schema string `yaml:"schema"`
	} `yaml:"ops"`
}

// LoadYAML builds a library from a YAML manifest of the form:
//
//	ops:
//	  - schema: "add(Tensor self, Tensor other) -> Tensor"
//	  - schema: "to_device(Tensor self, Device? device) -> Tensor"
//
// Schema parse failures are aggregated, so a single bad entry reports
// alongside the others rather than masking them.
func LoadYAML(r io.Reader) (*Library, error) {
	var m manifest
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		return nil, errors.Wrap(err, "decoding ops manifest")
	}
	l := NewLibrary()
	var err error
	for _, entry := range m.Ops {
		s, parseErr := Parse(entry.Schema)
		if parseErr != nil {
			err = multierr.Append(err, parseErr)
			continue
		}
		err = multierr.Append(err, l.Register(s))
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}
