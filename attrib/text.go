// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrib

import (
	"fmt"
	"strings"
)

// String returns the type in the form Int(Raw, U8, Unsigned),
// Float(Precision, F64), or Special, which [ParseType] reads back.
// The zero Type is Undefined.
func (t Type) String() string {
	switch t.Kind {
	case KindInt:
		return fmt.Sprintf("Int(%s, %s, %s)", t.Int.Sub, t.Int.Size, t.Int.Sign)
	case KindFloat:
		return fmt.Sprintf("Float(%s, %s)", t.Float.Sub, t.Float.Size)
	}
	return t.Kind.String()
}

// ParseType parses a type from its [Type.String] form.
// Spaces around names are ignored.
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	name, args, hasArgs := strings.Cut(s, "(")
	name = strings.TrimSpace(name)
	var fields []string
	if hasArgs {
		args, ok := strings.CutSuffix(strings.TrimSpace(args), ")")
		if !ok {
			return Type{}, fmt.Errorf("attrib.ParseType: missing ) in %q: %w", s, ErrType)
		}
		for f := range strings.SplitSeq(args, ",") {
			fields = append(fields, strings.TrimSpace(f))
		}
	}
	var kind Kinds
	if err := kind.SetString(name); err != nil {
		return Type{}, fmt.Errorf("attrib.ParseType: %q: %w", s, ErrType)
	}
	switch kind {
	case KindInt:
		var sub IntSubType
		var size IntSize
		var sign SignFlag
		if len(fields) != 3 {
			return Type{}, fmt.Errorf("attrib.ParseType: Int needs 3 fields, got %d in %q: %w", len(fields), s, ErrType)
		}
		if err := setAll(s, field{&sub, fields[0]}, field{&size, fields[1]}, field{&sign, fields[2]}); err != nil {
			return Type{}, err
		}
		return Int(sub, size, sign), nil
	case KindFloat:
		var sub FloatSubType
		var size FloatSize
		if len(fields) != 2 {
			return Type{}, fmt.Errorf("attrib.ParseType: Float needs 2 fields, got %d in %q: %w", len(fields), s, ErrType)
		}
		if err := setAll(s, field{&sub, fields[0]}, field{&size, fields[1]}); err != nil {
			return Type{}, err
		}
		return Float(sub, size), nil
	case KindSpecial:
		if hasArgs {
			return Type{}, fmt.Errorf("attrib.ParseType: Special takes no fields in %q: %w", s, ErrType)
		}
		return Special(), nil
	}
	return Type{}, fmt.Errorf("attrib.ParseType: %q is not a type: %w", s, ErrType)
}

type field struct {
	v interface{ SetString(string) error }
	s string
}

func setAll(src string, fs ...field) error {
	for _, f := range fs {
		if err := f.v.SetString(f.s); err != nil {
			return fmt.Errorf("attrib.ParseType: %q: %v: %w", src, err, ErrType)
		}
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (t Type) MarshalText() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (t *Type) UnmarshalText(text []byte) error {
	pt, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}
