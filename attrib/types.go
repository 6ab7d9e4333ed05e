// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attrib describes how the raw bytes of a vertex buffer are
// interpreted as shader-visible attributes, and validates attribute
// encodings against shader base types before they reach the driver.
// All types are immutable values with structural equality, so they
// can be used as map keys and shared across goroutines freely.
package attrib

//go:generate core generate

import (
	"cmp"
	"fmt"
)

// SignFlag is the signedness of an integer attribute.
type SignFlag int32 //enums:enum

const (
	// Signed values are interpreted as two's-complement.
	Signed SignFlag = iota

	// Unsigned values are interpreted as unsigned.
	Unsigned
)

// IntSubType describes how an integer attribute is presented to the shader.
type IntSubType int32 //enums:enum

const (
	// Raw integers are passed through unprocessed.
	Raw IntSubType = iota

	// Normalized integers are rescaled to [0,1] if unsigned or [-1,1] if signed.
	Normalized

	// AsFloat integers are converted to floating point by the hardware.
	AsFloat
)

// IntSize is the storage width of an integer attribute.
type IntSize int32 //enums:enum

const (
	U8 IntSize = iota
	U16
	U32
)

// FloatSubType is the shader-side precision of a float attribute.
type FloatSubType int32 //enums:enum

const (
	// Default is 32-bit IEEE single precision.
	Default FloatSubType = iota

	// Precision is 64-bit IEEE double precision.
	Precision
)

// FloatSize is the storage width of a floating point attribute.
type FloatSize int32 //enums:enum

const (
	F16 FloatSize = iota
	F32
	F64
)

// Kinds are the variants of [Type].
type Kinds int32 //enums:enum -trim-prefix Kind

const (
	// KindUndefined is the zero Kind, of a Type that was never set.
	// It is never valid and binds to no shader input.
	KindUndefined Kinds = iota

	// KindInt is an integer encoding, see [IntType].
	KindInt

	// KindFloat is a floating point encoding, see [FloatType].
	KindFloat

	// KindSpecial is an opaque hardware-defined encoding.
	KindSpecial
)

// IntType is the payload of an integer [Type].
type IntType struct {
	Sub  IntSubType
	Size IntSize
	Sign SignFlag
}

// FloatType is the payload of a floating point [Type].
type FloatType struct {
	Sub  FloatSubType
	Size FloatSize
}

// Type is the encoding of the bits stored in a vertex buffer for one
// element, and how the hardware decodes them. It is a closed sum
// over [Kinds]: only the payload of the active Kind is set, and the
// other payload is always zero, so == compares structurally.
// Use [Int], [Float], and [Special] to construct one: the zero
// Type has [KindUndefined] and fails [Type.Validate].
type Type struct {
	Kind  Kinds
	Int   IntType
	Float FloatType
}

// Int returns an integer attribute type.
func Int(sub IntSubType, size IntSize, sign SignFlag) Type {
	return Type{Kind: KindInt, Int: IntType{Sub: sub, Size: size, Sign: sign}}
}

// Float returns a floating point attribute type.
func Float(sub FloatSubType, size FloatSize) Type {
	return Type{Kind: KindFloat, Float: FloatType{Sub: sub, Size: size}}
}

// Special returns the opaque hardware-defined attribute type.
func Special() Type {
	return Type{Kind: KindSpecial}
}

// IntSizes gives the storage size of integer attributes in bytes.
var IntSizes = map[IntSize]int{
	U8:  1,
	U16: 2,
	U32: 4,
}

// FloatSizes gives the storage size of float attributes in bytes.
var FloatSizes = map[FloatSize]int{
	F16: 2,
	F32: 4,
	F64: 8,
}

// Bytes returns the number of bytes one element of this type
// occupies in a buffer. Special types have no known size and return 0.
func (t Type) Bytes() int {
	switch t.Kind {
	case KindInt:
		return IntSizes[t.Int.Size]
	case KindFloat:
		return FloatSizes[t.Float.Size]
	}
	return 0
}

// Validate returns an [ErrType] error if the kind or any payload
// value is out of range, or if the inactive payload is set.
func (t Type) Validate() error {
	switch t.Kind {
	case KindInt:
		it := t.Int
		if it.Sub < 0 || it.Sub >= IntSubTypeN || it.Size < 0 || it.Size >= IntSizeN || it.Sign < 0 || it.Sign >= SignFlagN {
			return fmt.Errorf("attrib.Type: invalid int payload %v: %w", it, ErrType)
		}
		if t.Float != (FloatType{}) {
			return fmt.Errorf("attrib.Type: int type with float payload %v: %w", t.Float, ErrType)
		}
	case KindFloat:
		ft := t.Float
		if ft.Sub < 0 || ft.Sub >= FloatSubTypeN || ft.Size < 0 || ft.Size >= FloatSizeN {
			return fmt.Errorf("attrib.Type: invalid float payload %v: %w", ft, ErrType)
		}
		if t.Int != (IntType{}) {
			return fmt.Errorf("attrib.Type: float type with int payload %v: %w", t.Int, ErrType)
		}
	case KindSpecial:
		if t.Int != (IntType{}) || t.Float != (FloatType{}) {
			return fmt.Errorf("attrib.Type: special type with payload: %w", ErrType)
		}
	case KindUndefined:
		return fmt.Errorf("attrib.Type: type is not set: %w", ErrType)
	default:
		return fmt.Errorf("attrib.Type: invalid kind %d: %w", t.Kind, ErrType)
	}
	return nil
}

// Compare returns -1, 0, or +1 ordering t against o by variant
// (Undefined < Int < Float < Special) and then by payload fields in order.
func (t Type) Compare(o Type) int {
	return cmp.Or(
		cmp.Compare(t.Kind, o.Kind),
		cmp.Compare(t.Int.Sub, o.Int.Sub),
		cmp.Compare(t.Int.Size, o.Int.Size),
		cmp.Compare(t.Int.Sign, o.Int.Sign),
		cmp.Compare(t.Float.Sub, o.Float.Sub),
		cmp.Compare(t.Float.Size, o.Float.Size),
	)
}

// AllTypes returns every valid [Type], in [Type.Compare] order.
func AllTypes() []Type {
	var ts []Type
	for _, sub := range IntSubTypeValues() {
		for _, sz := range IntSizeValues() {
			for _, sg := range SignFlagValues() {
				ts = append(ts, Int(sub, sz, sg))
			}
		}
	}
	for _, sub := range FloatSubTypeValues() {
		for _, sz := range FloatSizeValues() {
			ts = append(ts, Float(sub, sz))
		}
	}
	return append(ts, Special())
}
