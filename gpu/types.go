// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/vertex/attrib"
	"github.com/cogentcore/webgpu/wgpu"
)

// See: https://www.w3.org/TR/webgpu/#vertex-formats

// Debug turns on logging of vertex format and layout decisions.
var Debug = false

// ErrUnsupported is returned for attribute formats that have no
// WebGPU vertex format, such as 64-bit floats, integers converted
// to float without normalization, and 1 or 3 component 8 or 16 bit values.
var ErrUnsupported = errors.New("gpu: attribute format not supported by WebGPU")

// VertexKey is an attribute element type with a component count,
// the key of [FormatToVertexFormat].
type VertexKey struct {
	Type  attrib.Type
	Count attrib.Count
}

var (
	i8   = attrib.Int(attrib.Raw, attrib.U8, attrib.Signed)
	u8   = attrib.Int(attrib.Raw, attrib.U8, attrib.Unsigned)
	sn8  = attrib.Int(attrib.Normalized, attrib.U8, attrib.Signed)
	un8  = attrib.Int(attrib.Normalized, attrib.U8, attrib.Unsigned)
	i16  = attrib.Int(attrib.Raw, attrib.U16, attrib.Signed)
	u16  = attrib.Int(attrib.Raw, attrib.U16, attrib.Unsigned)
	sn16 = attrib.Int(attrib.Normalized, attrib.U16, attrib.Signed)
	un16 = attrib.Int(attrib.Normalized, attrib.U16, attrib.Unsigned)
	i32  = attrib.Int(attrib.Raw, attrib.U32, attrib.Signed)
	u32  = attrib.Int(attrib.Raw, attrib.U32, attrib.Unsigned)
	f16  = attrib.Float(attrib.Default, attrib.F16)
	f32  = attrib.Float(attrib.Default, attrib.F32)
)

// FormatToVertexFormat maps attribute element types and counts
// to WebGPU VertexFormat.
var FormatToVertexFormat = map[VertexKey]wgpu.VertexFormat{
	{i8, 2}: wgpu.VertexFormatSint8x2,
	{i8, 4}: wgpu.VertexFormatSint8x4,
	{u8, 2}: wgpu.VertexFormatUint8x2,
	{u8, 4}: wgpu.VertexFormatUint8x4,

	{sn8, 2}: wgpu.VertexFormatSnorm8x2,
	{sn8, 4}: wgpu.VertexFormatSnorm8x4,
	{un8, 2}: wgpu.VertexFormatUnorm8x2,
	{un8, 4}: wgpu.VertexFormatUnorm8x4,

	{i16, 2}: wgpu.VertexFormatSint16x2,
	{i16, 4}: wgpu.VertexFormatSint16x4,
	{u16, 2}: wgpu.VertexFormatUint16x2,
	{u16, 4}: wgpu.VertexFormatUint16x4,

	{sn16, 2}: wgpu.VertexFormatSnorm16x2,
	{sn16, 4}: wgpu.VertexFormatSnorm16x4,
	{un16, 2}: wgpu.VertexFormatUnorm16x2,
	{un16, 4}: wgpu.VertexFormatUnorm16x4,

	{i32, 1}: wgpu.VertexFormatSint32,
	{i32, 2}: wgpu.VertexFormatSint32x2,
	{i32, 3}: wgpu.VertexFormatSint32x3,
	{i32, 4}: wgpu.VertexFormatSint32x4,
	{u32, 1}: wgpu.VertexFormatUint32,
	{u32, 2}: wgpu.VertexFormatUint32x2,
	{u32, 3}: wgpu.VertexFormatUint32x3,
	{u32, 4}: wgpu.VertexFormatUint32x4,

	{f16, 2}: wgpu.VertexFormatFloat16x2,
	{f16, 4}: wgpu.VertexFormatFloat16x4,

	{f32, 1}: wgpu.VertexFormatFloat32,
	{f32, 2}: wgpu.VertexFormatFloat32x2,
	{f32, 3}: wgpu.VertexFormatFloat32x3,
	{f32, 4}: wgpu.VertexFormatFloat32x4,
}

// VertexFormatSizes gives the size of WebGPU VertexFormats in bytes.
var VertexFormatSizes = map[wgpu.VertexFormat]int{
	wgpu.VertexFormatSint8x2:   2,
	wgpu.VertexFormatSint8x4:   4,
	wgpu.VertexFormatUint8x2:   2,
	wgpu.VertexFormatUint8x4:   4,
	wgpu.VertexFormatSnorm8x2:  2,
	wgpu.VertexFormatSnorm8x4:  4,
	wgpu.VertexFormatUnorm8x2:  2,
	wgpu.VertexFormatUnorm8x4:  4,
	wgpu.VertexFormatSint16x2:  4,
	wgpu.VertexFormatSint16x4:  8,
	wgpu.VertexFormatUint16x2:  4,
	wgpu.VertexFormatUint16x4:  8,
	wgpu.VertexFormatSnorm16x2: 4,
	wgpu.VertexFormatSnorm16x4: 8,
	wgpu.VertexFormatUnorm16x2: 4,
	wgpu.VertexFormatUnorm16x4: 8,
	wgpu.VertexFormatSint32:    4,
	wgpu.VertexFormatSint32x2:  8,
	wgpu.VertexFormatSint32x3:  12,
	wgpu.VertexFormatSint32x4:  16,
	wgpu.VertexFormatUint32:    4,
	wgpu.VertexFormatUint32x2:  8,
	wgpu.VertexFormatUint32x3:  12,
	wgpu.VertexFormatUint32x4:  16,
	wgpu.VertexFormatFloat16x2: 4,
	wgpu.VertexFormatFloat16x4: 8,
	wgpu.VertexFormatFloat32:   4,
	wgpu.VertexFormatFloat32x2: 8,
	wgpu.VertexFormatFloat32x3: 12,
	wgpu.VertexFormatFloat32x4: 16,
}

// VertexFormat returns the WebGPU VertexFormat for the given
// attribute format, which is validated first.
// Formats without a WebGPU equivalent return [ErrUnsupported].
func VertexFormat(f attrib.Format) (wgpu.VertexFormat, error) {
	if err := f.Validate(); err != nil {
		return wgpu.VertexFormatUndefined, err
	}
	vf, ok := FormatToVertexFormat[VertexKey{f.Type, f.Count}]
	if !ok {
		return wgpu.VertexFormatUndefined, fmt.Errorf("gpu.VertexFormat: %d x %s: %w", f.Count, f.Type, ErrUnsupported)
	}
	if Debug {
		slog.Info("gpu.VertexFormat", "type", f.Type, "count", f.Count, "format", vf)
	}
	return vf, nil
}

// VertexFormatBytes returns the size in bytes of the given VertexFormat,
// or 0 if it is not known.
func VertexFormatBytes(vf wgpu.VertexFormat) int {
	return VertexFormatSizes[vf]
}
