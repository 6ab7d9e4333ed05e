// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"cogentcore.org/vertex/attrib"
	"cogentcore.org/vertex/shade"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexFormat(t *testing.T) {
	tests := []struct {
		f    attrib.Format
		want wgpu.VertexFormat
	}{
		{attrib.Format{Count: 3, Type: attrib.Float(attrib.Default, attrib.F32)}, wgpu.VertexFormatFloat32x3},
		{attrib.Format{Count: 1, Type: attrib.Float(attrib.Default, attrib.F32)}, wgpu.VertexFormatFloat32},
		{attrib.Format{Count: 4, Type: attrib.Float(attrib.Default, attrib.F16)}, wgpu.VertexFormatFloat16x4},
		{attrib.Format{Count: 4, Type: attrib.Int(attrib.Normalized, attrib.U8, attrib.Unsigned)}, wgpu.VertexFormatUnorm8x4},
		{attrib.Format{Count: 2, Type: attrib.Int(attrib.Normalized, attrib.U16, attrib.Signed)}, wgpu.VertexFormatSnorm16x2},
		{attrib.Format{Count: 2, Type: attrib.Int(attrib.Raw, attrib.U8, attrib.Unsigned)}, wgpu.VertexFormatUint8x2},
		{attrib.Format{Count: 3, Type: attrib.Int(attrib.Raw, attrib.U32, attrib.Signed)}, wgpu.VertexFormatSint32x3},
	}
	for _, tt := range tests {
		vf, err := VertexFormat(tt.f)
		assert.NoError(t, err, tt.f.String())
		assert.Equal(t, tt.want, vf, tt.f.String())
		assert.Equal(t, tt.f.Bytes(), VertexFormatBytes(vf), tt.f.String())
	}
}

func TestVertexFormatUnsupported(t *testing.T) {
	unsupported := []attrib.Format{
		{Count: 2, Type: attrib.Float(attrib.Precision, attrib.F64)},
		{Count: 1, Type: attrib.Float(attrib.Default, attrib.F16)},
		{Count: 3, Type: attrib.Int(attrib.Normalized, attrib.U8, attrib.Unsigned)},
		{Count: 4, Type: attrib.Int(attrib.AsFloat, attrib.U8, attrib.Signed)},
		{Count: 2, Type: attrib.Int(attrib.Normalized, attrib.U32, attrib.Signed)},
		{Count: 1, Type: attrib.Special()},
	}
	for _, f := range unsupported {
		_, err := VertexFormat(f)
		assert.ErrorIs(t, err, ErrUnsupported, f.String())
	}
	_, err := VertexFormat(attrib.Format{Count: 5, Type: attrib.Float(attrib.Default, attrib.F32)})
	assert.ErrorIs(t, err, attrib.ErrCount)
}

func TestVertexFormatTable(t *testing.T) {
	for k, vf := range FormatToVertexFormat {
		f := attrib.Format{Count: k.Count, Type: k.Type}
		assert.NoError(t, f.Validate(), f.String())
		assert.Equal(t, f.Bytes(), VertexFormatBytes(vf), f.String())
		// every WebGPU format must be bindable to some shader base type
		ok := false
		for _, bt := range shade.BaseTypeValues() {
			ok = ok || k.Type.IsCompatible(bt)
		}
		assert.True(t, ok, f.String())
	}
}

func meshLayout(t *testing.T) *attrib.Layout {
	l := attrib.NewLayout()
	require.NoError(t, l.Add("position", attrib.Format{Count: 3, Type: attrib.Float(attrib.Default, attrib.F32), Offset: 0, Stride: 28}))
	require.NoError(t, l.Add("uv", attrib.Format{Count: 2, Type: attrib.Float(attrib.Default, attrib.F16), Offset: 12, Stride: 28}))
	require.NoError(t, l.Add("color", attrib.Format{Count: 4, Type: attrib.Int(attrib.Normalized, attrib.U8, attrib.Unsigned), Offset: 16, Stride: 28}))
	require.NoError(t, l.Add("debug", attrib.Format{Count: 2, Type: attrib.Float(attrib.Default, attrib.F32), Offset: 20, Stride: 28}))
	require.NoError(t, l.Add("offset", attrib.Format{Count: 2, Type: attrib.Float(attrib.Default, attrib.F32), InstanceRate: 1}))
	return l
}

func TestVertexLayout(t *testing.T) {
	l := meshLayout(t)
	ins := []shade.Input{
		{Name: "offset", Location: 3, Base: shade.BaseF32, Count: 2},
		{Name: "position", Location: 0, Base: shade.BaseF32, Count: 3},
		{Name: "uv", Location: 1, Base: shade.BaseF32, Count: 2},
		{Name: "color", Location: 2, Base: shade.BaseF32, Count: 4},
	}
	bufs, err := VertexLayout(l, ins)
	require.NoError(t, err)
	slot := func(vf wgpu.VertexFormat, stride uint64, step wgpu.VertexStepMode, loc uint32) wgpu.VertexBufferLayout {
		return wgpu.VertexBufferLayout{
			ArrayStride: stride,
			StepMode:    step,
			Attributes:  []wgpu.VertexAttribute{{Format: vf, Offset: 0, ShaderLocation: loc}},
		}
	}
	assert.Equal(t, []VertexBuffer{
		{Name: "position", Offset: 0, Layout: slot(wgpu.VertexFormatFloat32x3, 28, wgpu.VertexStepModeVertex, 0)},
		{Name: "uv", Offset: 12, Layout: slot(wgpu.VertexFormatFloat16x2, 28, wgpu.VertexStepModeVertex, 1)},
		{Name: "color", Offset: 16, Layout: slot(wgpu.VertexFormatUnorm8x4, 28, wgpu.VertexStepModeVertex, 2)},
		{Name: "offset", Offset: 0, Layout: slot(wgpu.VertexFormatFloat32x2, 8, wgpu.VertexStepModeInstance, 3)},
	}, bufs)

	lays := BufferLayouts(bufs)
	require.Len(t, lays, 4)
	for i, b := range bufs {
		assert.Equal(t, b.Layout, lays[i])
	}
}

func TestVertexLayoutSeparateBuffers(t *testing.T) {
	ins := []shade.Input{
		{Name: "position", Location: 0, Base: shade.BaseF32, Count: 3},
		{Name: "normal", Location: 1, Base: shade.BaseF32, Count: 3},
	}
	f32x3 := attrib.Format{Count: 3, Type: attrib.Float(attrib.Default, attrib.F32), Stride: 12}

	// position and normal each in their own buffer
	l := attrib.NewLayout()
	require.NoError(t, l.Add("position", f32x3))
	require.NoError(t, l.Add("normal", f32x3))
	bufs, err := VertexLayout(l, ins)
	require.NoError(t, err)
	require.Len(t, bufs, 2)
	for i, b := range bufs {
		assert.Equal(t, ins[i].Name, b.Name)
		assert.Equal(t, uint64(0), b.Offset)
		assert.Equal(t, uint64(12), b.Layout.ArrayStride)
		require.Len(t, b.Layout.Attributes, 1)
		assert.Equal(t, ins[i].Location, b.Layout.Attributes[0].ShaderLocation)
		assert.Equal(t, uint64(0), b.Layout.Attributes[0].Offset)
	}

	// one planar buffer: 100 positions followed by 100 normals
	normal := f32x3
	normal.Offset = 1200
	l.Set("normal", normal)
	bufs, err = VertexLayout(l, ins)
	require.NoError(t, err)
	require.Len(t, bufs, 2)
	assert.Equal(t, uint64(0), bufs[0].Offset)
	assert.Equal(t, uint64(1200), bufs[1].Offset)
	assert.Equal(t, uint64(12), bufs[1].Layout.ArrayStride)
	assert.Equal(t, uint64(0), bufs[1].Layout.Attributes[0].Offset)
	assert.Equal(t, uint32(1), bufs[1].Layout.Attributes[0].ShaderLocation)
}

func TestVertexLayoutErrors(t *testing.T) {
	l := meshLayout(t)
	ins := []shade.Input{
		{Name: "position", Location: 0, Base: shade.BaseI32, Count: 3},
	}
	_, err := VertexLayout(l, ins)
	assert.ErrorIs(t, err, attrib.ErrIncompatible)

	ins = []shade.Input{
		{Name: "position", Location: 0, Base: shade.BaseF32, Count: 3},
		{Name: "offset", Location: 1, Base: shade.BaseF32, Count: 2},
		{Name: "color", Location: 2, Base: shade.BaseF32, Count: 2},
		{Name: "uv", Location: 3, Base: shade.BaseF32, Count: 2},
	}
	l.Set("offset", attrib.Format{Count: 2, Type: attrib.Float(attrib.Default, attrib.F32), InstanceRate: 2})
	l.Set("position", attrib.Format{Count: 3, Type: attrib.Float(attrib.Default, attrib.F32), Stride: 8})
	l.Set("color", attrib.Format{Count: 2, Type: attrib.Int(attrib.Normalized, attrib.U8, attrib.Unsigned), Stride: 6})
	l.Set("uv", attrib.Format{Count: 2, Type: attrib.Float(attrib.Default, attrib.F16), Offset: 2, Stride: 28})
	_, err = VertexLayout(l, ins)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.ErrorContains(t, err, "instance rate 2")
	assert.ErrorContains(t, err, "size 12 exceeds stride 8")
	assert.ErrorContains(t, err, "stride 6 is not a multiple of 4")
	assert.ErrorContains(t, err, "offset 2 is not a multiple of 4")

	l.Set("position", attrib.Format{Count: 3, Type: attrib.Float(attrib.Precision, attrib.F64), Stride: 28})
	_, err = VertexLayout(l, ins[:1])
	assert.ErrorIs(t, err, ErrUnsupported)
}
