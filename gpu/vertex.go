// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/vertex/attrib"
	"cogentcore.org/vertex/shade"
	"github.com/cogentcore/webgpu/wgpu"
)

// VertexBuffer is the binding of one attribute to its own vertex
// buffer slot. Interleaved attributes bind the same buffer to
// several slots, each at its own Offset.
type VertexBuffer struct {

	// Name of the attribute.
	Name string

	// Offset is the byte offset of the first value in the buffer,
	// passed as the offset when the buffer is set on the slot.
	Offset uint64

	// Layout is the layout of the slot, with the one attribute
	// at offset 0 and the attribute stride as ArrayStride.
	Layout wgpu.VertexBufferLayout
}

// VertexLayout returns the WebGPU vertex buffer bindings for the given
// attribute layout and shader vertex inputs: one slot per attribute
// used by an input, in layout order. The layout is first checked
// with [attrib.Layout.Check], and each slot gets the Location of the
// shader input with the same name. WebGPU steps instanced buffers once
// per instance, so an InstanceRate above 1 is [ErrUnsupported], as
// are offsets and strides that are not a multiple of 4 bytes.
func VertexLayout(l *attrib.Layout, inputs []shade.Input) ([]VertexBuffer, error) {
	if err := l.Check(inputs); err != nil {
		return nil, err
	}
	locs := make(map[string]uint32, len(inputs))
	for _, in := range inputs {
		locs[in.Name] = in.Location
	}

	var bufs []VertexBuffer
	var errs []error
	for name, f := range l.All() {
		loc, used := locs[name]
		if !used {
			if Debug {
				slog.Info("gpu.VertexLayout: attribute not used by shader", "name", name)
			}
			continue
		}
		vf, err := VertexFormat(f)
		if err != nil {
			errs = append(errs, fmt.Errorf("gpu.VertexLayout: attribute %q: %w", name, err))
			continue
		}
		if f.InstanceRate > 1 {
			errs = append(errs, fmt.Errorf("gpu.VertexLayout: attribute %q: instance rate %d: %w", name, f.InstanceRate, ErrUnsupported))
			continue
		}
		stride := f.EffectiveStride()
		size := VertexFormatBytes(vf)
		switch {
		case size > stride:
			errs = append(errs, fmt.Errorf("gpu.VertexLayout: attribute %q: size %d exceeds stride %d: %w", name, size, stride, ErrUnsupported))
			continue
		case stride%4 != 0:
			errs = append(errs, fmt.Errorf("gpu.VertexLayout: attribute %q: stride %d is not a multiple of 4: %w", name, stride, ErrUnsupported))
			continue
		case f.Offset%4 != 0:
			errs = append(errs, fmt.Errorf("gpu.VertexLayout: attribute %q: offset %d is not a multiple of 4: %w", name, f.Offset, ErrUnsupported))
			continue
		}
		step := wgpu.VertexStepModeVertex
		if f.InstanceRate > 0 {
			step = wgpu.VertexStepModeInstance
		}
		bufs = append(bufs, VertexBuffer{
			Name:   name,
			Offset: uint64(f.Offset),
			Layout: wgpu.VertexBufferLayout{
				ArrayStride: uint64(stride),
				StepMode:    step,
				Attributes: []wgpu.VertexAttribute{
					{Format: vf, Offset: 0, ShaderLocation: loc},
				},
			},
		})
		if Debug {
			slog.Info("gpu.VertexLayout", "name", name, "slot", len(bufs)-1, "location", loc, "format", vf, "offset", f.Offset)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return bufs, nil
}

// BufferLayouts returns the slot layouts of the given bindings,
// in slot order, for a render pipeline vertex state.
func BufferLayouts(bufs []VertexBuffer) []wgpu.VertexBufferLayout {
	lays := make([]wgpu.VertexBufferLayout, len(bufs))
	for i, b := range bufs {
		lays[i] = b.Layout
	}
	return lays
}
