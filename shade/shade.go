// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shade describes the shader side of a vertex binding:
// the scalar base types a shader input can have, and the input
// slots reported by shader reflection.
package shade

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/vertex/base/iox"
)

// BaseType is the scalar base type of a shader input.
type BaseType int32 //enums:enum -trim-prefix Base

const (
	// BaseI32 is a 32-bit signed integer.
	BaseI32 BaseType = iota

	// BaseU32 is a 32-bit unsigned integer.
	BaseU32

	// BaseF32 is a 32-bit float.
	BaseF32

	// BaseF64 is a 64-bit float.
	BaseF64

	// BaseBool is a boolean.
	BaseBool
)

// Input is a vertex input slot of a shader, as reported by reflection.
type Input struct {

	// Name of the input, which is matched against attribute names.
	Name string `toml:"name" yaml:"name" json:"name"`

	// Location is the @location index of the input.
	Location uint32 `toml:"location" yaml:"location" json:"location"`

	// Base is the scalar base type of each element.
	Base BaseType `toml:"base" yaml:"base" json:"base"`

	// Count is the number of vector elements, 1 to 4.
	Count uint8 `toml:"count" yaml:"count" json:"count"`
}

func (in Input) String() string {
	return fmt.Sprintf("%s@%d %s x%d", in.Name, in.Location, in.Base, in.Count)
}

// inputsFile is the on-disk form of an input list.
type inputsFile struct {
	Inputs []Input `toml:"inputs" yaml:"inputs" json:"inputs"`
}

// OpenInputs reads a list of shader inputs from the given file,
// which can be TOML, YAML, or JSON based on the extension.
func OpenInputs(filename string) ([]Input, error) {
	var fl inputsFile
	if err := iox.Open(&fl, filename); err != nil {
		return nil, fmt.Errorf("shade.OpenInputs %q: %w", filename, err)
	}
	return fl.Inputs, nil
}

// ReadInputs reads a list of shader inputs from given bytes
// in the given format.
func ReadInputs(data []byte, f iox.Formats) ([]Input, error) {
	var fl inputsFile
	if err := iox.ReadBytes(&fl, data, f); err != nil {
		return nil, fmt.Errorf("shade.ReadInputs: %w", err)
	}
	return fl.Inputs, nil
}
