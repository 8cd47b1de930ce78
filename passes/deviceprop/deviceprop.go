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

// Package deviceprop propagates device types through a graph: it installs a
// device into the tensor types of values that lack one, inferring it from the
// node's inputs -- or from an explicit device-typed operation argument, which
// takes precedence since it expresses the program's intent directly.
//
// The pass performs a single forward sweep over the graph's top-level blocks
// and returns whether any value's type was refined. It never loops to a
// fixpoint internally; callers may re-run it, and a second run on an
// unchanged graph reports no change.
//
// Graphs containing control flow (if/loop), calls or list construct/unpack of
// tensors are rejected with a panic: silently skipping them would yield an
// under-propagated graph that looks complete. Likewise, two inputs of one
// node carrying different known devices is an upstream contract violation and
// panics. Expected "cannot infer" situations -- a dynamic device argument, an
// unset optional device, no input device known -- are not errors, the node is
// simply left alone.
package deviceprop

import (
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/tensorir/tensorir/ir"
	"github.com/tensorir/tensorir/types/device"
	"k8s.io/klog/v2"
)

// Rule is a custom propagation rule for one operation: it applies the
// relevant device to the tensor outputs of the node and returns whether
// anything was changed. Rules are attached to a Pass with WithRule and take
// the place of the default propagation for their operation.
type Rule func(n *ir.Node) bool

// SetDevice installs dev into the tensor type of value, in place.
//
// It returns whether the type changed: false if the value already carried
// dev. A value carrying a *different* device panics unless canOverwrite is
// set -- the default propagation never overwrites, the flag exists for custom
// rules that deliberately move data across devices. Panics if value is not
// tensor-typed.
func SetDevice(value *ir.Value, dev device.Device, canOverwrite bool) bool {
	tensorType := value.TensorType()
	if tensorType == nil {
		exceptions.Panicf("deviceprop: expecting a tensor type on %s, got %s", value.Name(), value.Type())
	}
	if !tensorType.HasDevice() {
		value.SetType(tensorType.WithDevice(dev))
		return true
	}
	if tensorType.Device != dev {
		if !canOverwrite {
			exceptions.Panicf("deviceprop: expected device %s on %s but found %s",
				dev, value.Name(), tensorType.Device)
		}
		value.SetType(tensorType.WithDevice(dev))
		return true
	}
	return false
}

// SetOutputsToDevice applies dev to every tensor-typed output of n, skipping
// the others. Returns whether anything was changed.
func SetOutputsToDevice(n *ir.Node, dev device.Device) bool {
	changed := false
	for _, out := range n.Outputs() {
		if out.TensorType() == nil {
			continue
		}
		changed = SetDevice(out, dev, false) || changed
	}
	return changed
}

// isDeviceArgType reports whether a formal argument's declared type accepts a
// device: either the device type itself or, recursively, an optional/union
// containing one.
func isDeviceArgType(t ir.Type) bool {
	for _, sub := range t.Contained() {
		if isDeviceArgType(sub) {
			return true
		}
	}
	return t == ir.DeviceObj
}

// defaultProp is the propagation applied to any computational node without a
// registered rule. An explicit device-typed argument wins over inferring from
// operand devices.
func defaultProp(n *ir.Node) bool {
	for i, arg := range n.Schema().Args {
		if !isDeviceArgType(arg.Type) {
			continue
		}
		constVal, ok := n.Inputs()[i].Static()
		if !ok {
			// Dynamic device argument, nothing can be inferred.
			return false
		}
		if _, isNone := constVal.(ir.ConstNone); isNone {
			// Optional device argument left unset does not pin a device.
			continue
		}
		devVal, isDevice := constVal.(ir.ConstDevice)
		if !isDevice {
			// Bail on union arguments resolved to a non-device member.
			return false
		}
		return SetOutputsToDevice(n, device.Device(devVal))
	}
	return propFromInputs(n)
}

// propFromInputs unifies the devices of the tensor inputs: the first known
// one becomes the reference, and every other known one must equal it.
func propFromInputs(n *ir.Node) bool {
	var dev device.Device
	for _, in := range n.Inputs() {
		tensorType := in.TensorType()
		if tensorType == nil {
			continue
		}
		if dev.IsValid() {
			if tensorType.HasDevice() && tensorType.Device != dev {
				exceptions.Panicf("deviceprop: expected device %s but found %s on input %s of %s",
					dev, tensorType.Device, in.Name(), n)
			}
			continue
		}
		dev = tensorType.Device
	}
	return dev.IsValid() && SetOutputsToDevice(n, dev)
}

// Pass is one device-propagation run over a graph. Its rule table is fixed at
// construction; the zero set of rules (the default) handles every operation
// through defaultProp.
type Pass struct {
	graph *ir.Graph
	rules map[string]Rule
}

// Option configures a Pass at construction.
type Option func(p *Pass)

// WithRule registers a custom propagation rule for the named operation,
// overriding the default propagation for it. Registering the same operation
// twice keeps the last rule.
func WithRule(opName string, rule Rule) Option {
	return func(p *Pass) { p.rules[opName] = rule }
}

// New returns a pass over graph. The graph must be non-nil and exclusively
// owned by the caller for the duration of Run.
func New(graph *ir.Graph, options ...Option) *Pass {
	if graph == nil {
		exceptions.Panicf("deviceprop: nil graph")
	}
	p := &Pass{graph: graph, rules: make(map[string]Rule)}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Run sweeps the graph once and returns whether at least one value's type was
// refined with a device.
func (p *Pass) Run() bool {
	changed := false
	for _, block := range p.graph.Blocks() {
		changed = p.processBlock(block) || changed
	}
	if changed && klog.V(3).Enabled() {
		klog.Infof("graph after device propagation:\n%s", p.graph)
	}
	return changed
}

func (p *Pass) processBlock(block *ir.Block) bool {
	klog.V(2).Infof("deviceprop: processing block of graph %q", p.graph.Name())
	changed := false
	for _, n := range block.Nodes() {
		changed = p.processNode(n) || changed
	}
	return changed
}

func (p *Pass) processNode(n *ir.Node) bool {
	klog.V(2).Infof("deviceprop: node %s", n)
	switch n.Kind() {
	case ir.KindIf, ir.KindLoop, ir.KindCallMethod, ir.KindCallFunction:
		exceptions.Panicf("deviceprop: %s nodes are not handled", n.Kind())
	}

	hasTensorOutput := slices.ContainsFunc(n.Outputs(), func(v *ir.Value) bool {
		return v.TensorType() != nil
	})
	if !hasTensorOutput {
		// No tensor output, nothing to propagate.
		return false
	}

	switch n.Kind() {
	case ir.KindConstant:
		// Constants were already typed by an earlier stage.
		return false
	case ir.KindListConstruct, ir.KindListUnpack:
		exceptions.Panicf("deviceprop: not supported IR: %s", n)
	case ir.KindCompute:
		return p.processCompute(n)
	default:
		exceptions.Panicf("deviceprop: not supported IR: %s", n)
	}
	return false
}

func (p *Pass) processCompute(n *ir.Node) bool {
	if rule, found := p.rules[n.Schema().Name]; found {
		return rule(n)
	}
	return defaultProp(n)
}

// PropagateDeviceTypes runs a device-propagation pass with no custom rules
// over graph and returns whether any value's type was refined.
func PropagateDeviceTypes(graph *ir.Graph) bool {
	return New(graph).Run()
}
