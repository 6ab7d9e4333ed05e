// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrib

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/vertex/shade"
	"github.com/stretchr/testify/assert"
)

func TestCompatibleTable(t *testing.T) {
	tests := []struct {
		typ  Type
		base shade.BaseType
		ok   bool
	}{
		{Int(Raw, U8, Signed), shade.BaseI32, true},
		{Int(Raw, U32, Unsigned), shade.BaseI32, true},
		{Int(Raw, U16, Unsigned), shade.BaseU32, true},
		{Int(Raw, U16, Signed), shade.BaseU32, false},
		{Int(Raw, U32, Signed), shade.BaseF32, false},
		{Int(Raw, U8, Unsigned), shade.BaseF64, false},
		{Int(Normalized, U8, Unsigned), shade.BaseF32, true},
		{Int(AsFloat, U32, Signed), shade.BaseF32, true},
		{Int(Normalized, U16, Signed), shade.BaseI32, false},
		{Int(AsFloat, U16, Unsigned), shade.BaseU32, false},
		{Int(AsFloat, U32, Signed), shade.BaseF64, false},
		{Float(Default, F16), shade.BaseF32, true},
		{Float(Default, F32), shade.BaseF32, true},
		{Float(Precision, F64), shade.BaseF32, true},
		{Float(Precision, F64), shade.BaseF64, true},
		{Float(Default, F32), shade.BaseF64, false},
		{Float(Default, F64), shade.BaseF64, false},
		{Float(Precision, F32), shade.BaseF64, false},
		{Float(Default, F32), shade.BaseI32, false},
		{Float(Precision, F64), shade.BaseU32, false},
		{Special(), shade.BaseI32, false},
		{Special(), shade.BaseF32, false},
		{Special(), shade.BaseF64, false},
	}
	for _, tt := range tests {
		err := tt.typ.Compatible(tt.base)
		if tt.ok {
			assert.NoError(t, err, "%s vs %s", tt.typ, tt.base)
		} else {
			assert.ErrorIs(t, err, ErrIncompatible, "%s vs %s", tt.typ, tt.base)
		}
		assert.Equal(t, tt.ok, tt.typ.IsCompatible(tt.base))
	}
}

func TestCompatibleBoolNever(t *testing.T) {
	for _, typ := range AllTypes() {
		assert.ErrorIs(t, typ.Compatible(shade.BaseBool), ErrIncompatible, typ.String())
	}
}

func TestCompatibleDeterministic(t *testing.T) {
	for _, typ := range AllTypes() {
		for _, bt := range shade.BaseTypeValues() {
			first := typ.Compatible(bt)
			for range 3 {
				assert.Equal(t, first, typ.Compatible(bt))
			}
		}
	}
}

func TestCompatibleRawIntegers(t *testing.T) {
	for _, sz := range IntSizeValues() {
		assert.NoError(t, Int(Raw, sz, Unsigned).Compatible(shade.BaseU32))
		assert.ErrorIs(t, Int(Raw, sz, Signed).Compatible(shade.BaseU32), ErrIncompatible)
		for _, sg := range SignFlagValues() {
			assert.NoError(t, Int(Raw, sz, sg).Compatible(shade.BaseI32))
			assert.ErrorIs(t, Int(Raw, sz, sg).Compatible(shade.BaseF32), ErrIncompatible)
		}
	}
}

func TestCompatibleConvertedIntegers(t *testing.T) {
	for _, sub := range []IntSubType{Normalized, AsFloat} {
		for _, sz := range IntSizeValues() {
			for _, sg := range SignFlagValues() {
				typ := Int(sub, sz, sg)
				assert.NoError(t, typ.Compatible(shade.BaseF32), typ.String())
				for _, bt := range []shade.BaseType{shade.BaseI32, shade.BaseU32, shade.BaseF64} {
					assert.ErrorIs(t, typ.Compatible(bt), ErrIncompatible, typ.String())
				}
			}
		}
	}
}

func TestCompatibleFloats(t *testing.T) {
	for _, sub := range FloatSubTypeValues() {
		for _, sz := range FloatSizeValues() {
			typ := Float(sub, sz)
			assert.NoError(t, typ.Compatible(shade.BaseF32), typ.String())
			assert.Equal(t, sub == Precision && sz == F64, typ.IsCompatible(shade.BaseF64), typ.String())
		}
	}
}

func TestCompatibleUnknown(t *testing.T) {
	assert.ErrorIs(t, Type{Kind: KindsN}.Compatible(shade.BaseF32), ErrIncompatible)
	for _, bt := range shade.BaseTypeValues() {
		assert.ErrorIs(t, Type{}.Compatible(bt), ErrIncompatible, bt.String())
	}
	assert.ErrorIs(t, Int(Raw, U8, Signed).Compatible(shade.BaseTypeN), ErrIncompatible)
}

func TestFormatScenario(t *testing.T) {
	f := Format{Count: 4, Type: Int(Raw, U8, Unsigned), Stride: 4}
	assert.NoError(t, f.Validate())
	assert.NoError(t, f.Type.Compatible(shade.BaseU32))
	err := f.Type.Compatible(shade.BaseF32)
	assert.True(t, errors.Is(err, ErrIncompatible))
}
