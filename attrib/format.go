// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrib

import (
	"cmp"
	"fmt"
)

// Count is the number of elements per attribute, only 1 to 4 are supported.
type Count = uint8

// Offset is the offset of an attribute from the start of the buffer, in bytes.
type Offset = uint32

// Stride is the offset between consecutive attribute values, in bytes.
type Stride = uint8

// InstanceRate is the number of instances between each subsequent
// attribute value, with 0 meaning the attribute advances per vertex.
type InstanceRate = uint8

// MaxCount is the largest supported element count.
const MaxCount Count = 4

// Format is the complete format of a vertex attribute: how to find
// each value in the buffer and how to decode its elements.
// Constructing a Format does not check it: consumers call
// [Format.Validate] before binding.
type Format struct {

	// Count is the number of elements per vertex, 1 to 4.
	Count Count `toml:"count" yaml:"count" json:"count"`

	// Type is the type of a single element.
	Type Type `toml:"type" yaml:"type" json:"type"`

	// Offset in bytes to the first vertex.
	Offset Offset `toml:"offset" yaml:"offset" json:"offset"`

	// Stride in bytes between consecutive vertices.
	// Zero means the values are tightly packed.
	Stride Stride `toml:"stride" yaml:"stride" json:"stride"`

	// InstanceRate is the instance rate per vertex: 0 advances every
	// vertex, N advances once every N instances.
	InstanceRate InstanceRate `toml:"instance_rate" yaml:"instance_rate" json:"instance_rate"`
}

// Validate returns an error wrapping [ErrCount] if Count is not
// in [1, MaxCount], or [ErrType] if the Type is invalid.
func (f Format) Validate() error {
	if f.Count < 1 || f.Count > MaxCount {
		return fmt.Errorf("attrib.Format: count %d: %w", f.Count, ErrCount)
	}
	return f.Type.Validate()
}

// Bytes returns the number of bytes one value (all Count elements) occupies.
func (f Format) Bytes() int {
	return int(f.Count) * f.Type.Bytes()
}

// EffectiveStride returns the stride between values, which is
// [Format.Bytes] when Stride is zero.
func (f Format) EffectiveStride() int {
	if f.Stride == 0 {
		return f.Bytes()
	}
	return int(f.Stride)
}

// Values returns the number of attribute values read for a draw
// of the given number of vertices and instances.
func (f Format) Values(vertices, instances int) int {
	if f.InstanceRate == 0 {
		return vertices
	}
	r := int(f.InstanceRate)
	return (instances + r - 1) / r
}

// Extent returns the number of bytes from the start of the buffer
// through the end of the last of n values.
func (f Format) Extent(n int) uint64 {
	if n <= 0 {
		return 0
	}
	return uint64(f.Offset) + uint64(n-1)*uint64(f.EffectiveStride()) + uint64(f.Bytes())
}

// CheckCapacity returns an error wrapping [ErrCapacity] if a buffer
// of the given size cannot hold n values of this format.
func (f Format) CheckCapacity(size uint64, n int) error {
	if ext := f.Extent(n); ext > size {
		return fmt.Errorf("attrib.Format: %d values need %d bytes, buffer has %d: %w", n, ext, size, ErrCapacity)
	}
	return nil
}

// Compare returns -1, 0, or +1 ordering f against o field by field.
func (f Format) Compare(o Format) int {
	return cmp.Or(
		cmp.Compare(f.Count, o.Count),
		f.Type.Compare(o.Type),
		cmp.Compare(f.Offset, o.Offset),
		cmp.Compare(f.Stride, o.Stride),
		cmp.Compare(f.InstanceRate, o.InstanceRate),
	)
}

// String returns a human-readable version of the format.
func (f Format) String() string {
	return fmt.Sprintf("Count: %d  Type: %s  Offset: %d  Stride: %d  InstanceRate: %d", f.Count, f.Type, f.Offset, f.Stride, f.InstanceRate)
}
