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

// Package device defines Device, the tag identifying the execution locale of
// a tensor -- which processing unit owns its data.
//
// A Device pairs a Kind ("cpu", "cuda", ...) with an optional ordinal for
// kinds that can have several units attached ("cuda:1"). Devices are plain
// comparable values: two devices are either identical or different, there is
// no ordering and no merging of distinct devices.
//
// The zero Device is invalid and doubles as "device not (yet) known" wherever
// a device is optional, e.g. in ir.TensorType.
package device

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind of device: the family of processing unit, without an ordinal.
type Kind uint8

//go:generate enumer -type=Kind -transform=snake -output=gen_kind_enumer.go device.go
const (
	// Invalid is the zero Kind, it matches no hardware.
	Invalid Kind = iota
	CPU
	CUDA
	Metal
	TPU
)

// NoIndex is the Index of devices that only name a Kind, like plain "cpu".
const NoIndex = int8(-1)

// Device is an opaque, comparable execution-locale tag.
//
// Compare devices with ==. Use the zero value for "unknown".
type Device struct {
	Kind  Kind
	Index int8 // ordinal within the kind, or NoIndex.
}

// New returns the device with the given kind and ordinal.
func New(kind Kind, index int8) Device {
	return Device{Kind: kind, Index: index}
}

// ByKind returns the device naming only a kind, without an ordinal.
func ByKind(kind Kind) Device {
	return Device{Kind: kind, Index: NoIndex}
}

// Parse converts a device string like "cpu", "cuda" or "cuda:1" to a Device.
func Parse(s string) (Device, error) {
	kindStr, indexStr, hasIndex := strings.Cut(s, ":")
	kind, err := KindString(kindStr)
	if err != nil || kind == Invalid {
		return Device{}, errors.Errorf("unknown device kind %q in device string %q", kindStr, s)
	}
	if !hasIndex {
		return ByKind(kind), nil
	}
	index, err := strconv.ParseInt(indexStr, 10, 8)
	if err != nil || index < 0 {
		return Device{}, errors.Errorf("invalid device ordinal %q in device string %q", indexStr, s)
	}
	return New(kind, int8(index)), nil
}

// MustParse is like Parse but panics on a malformed device string. It is
// meant for compiled-in constants and tests.
func MustParse(s string) Device {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsValid reports whether d names an actual device. The zero Device is not
// valid and stands for "unknown".
func (d Device) IsValid() bool {
	return d.Kind != Invalid
}

// String implements fmt.Stringer. It round-trips with Parse for valid
// devices.
func (d Device) String() string {
	if !d.IsValid() {
		return "device(invalid)"
	}
	if d.Index == NoIndex {
		return d.Kind.String()
	}
	return fmt.Sprintf("%s:%d", d.Kind, d.Index)
}
