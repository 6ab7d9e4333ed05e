// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrib

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/vertex/shade"
)

var (
	// ErrIncompatible is returned when an attribute encoding
	// cannot be consumed by a shader input of a given base type.
	ErrIncompatible = errors.New("attrib: attribute type is incompatible with shader base type")

	// ErrType is returned for a [Type] with an out of range
	// kind or payload.
	ErrType = errors.New("attrib: invalid attribute type")

	// ErrCount is returned for a [Format] whose Count is not in [1, MaxCount].
	ErrCount = errors.New("attrib: element count must be 1 to 4")

	// ErrCapacity is returned when a buffer is too small for a [Format].
	ErrCapacity = errors.New("attrib: buffer too small for attribute")

	// ErrMissing is returned when a shader input has no attribute.
	ErrMissing = errors.New("attrib: no attribute for shader input")
)

// Compatible returns nil if attributes of this type can be bound to
// a shader input of the given base type, and [ErrIncompatible] otherwise.
//
// Raw integers reach the shader unchanged, so they need an integer
// input: any sign for i32, and only unsigned for u32. Normalized and
// AsFloat integers are presented as 32-bit floats. Any float attribute
// can feed an f32 input, but an f64 input needs a 64-bit Precision
// float. Nothing binds to a bool input.
func (t Type) Compatible(bt shade.BaseType) error {
	switch t.Kind {
	case KindInt:
		if t.Int.Sub == Raw {
			switch {
			case bt == shade.BaseI32:
				return nil
			case bt == shade.BaseU32 && t.Int.Sign == Unsigned:
				return nil
			}
			return ErrIncompatible
		}
		if bt == shade.BaseF32 {
			return nil
		}
		return ErrIncompatible
	case KindFloat:
		switch {
		case bt == shade.BaseF32:
			return nil
		case bt == shade.BaseF64 && t.Float.Sub == Precision && t.Float.Size == F64:
			return nil
		}
		return ErrIncompatible
	}
	return ErrIncompatible
}

// IsCompatible returns whether [Type.Compatible] succeeds.
func (t Type) IsCompatible(bt shade.BaseType) bool {
	return t.Compatible(bt) == nil
}
