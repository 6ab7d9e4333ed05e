// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrib

import (
	"fmt"
	"iter"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/keylist"
	"cogentcore.org/vertex/base/iox"
	"cogentcore.org/vertex/shade"
)

// Layout is an ordered set of named attribute [Format]s describing
// one vertex layout. Names are matched against shader input names.
// The zero value is an empty layout ready to use.
type Layout struct {
	formats keylist.List[string, Format]
}

// NewLayout returns a new [Layout].
func NewLayout() *Layout {
	return &Layout{}
}

// Add adds the named format, returning an error if the name
// is already in the layout.
func (l *Layout) Add(name string, f Format) error {
	if err := l.formats.Add(name, f); err != nil {
		return fmt.Errorf("attrib.Layout: %w", err)
	}
	return nil
}

// Set sets the named format, replacing any existing one.
func (l *Layout) Set(name string, f Format) {
	l.formats.Set(name, f)
}

// Format returns the named format and whether it exists.
func (l *Layout) Format(name string) (Format, bool) {
	return l.formats.AtTry(name)
}

// Delete removes the named format, returning false if it is not found.
func (l *Layout) Delete(name string) bool {
	return l.formats.DeleteByKey(name)
}

// Len returns the number of formats.
func (l *Layout) Len() int {
	return l.formats.Len()
}

// Names returns the attribute names in layout order.
func (l *Layout) Names() []string {
	return slices.Clone(l.formats.Keys)
}

// All returns an iterator over the names and formats in layout order.
func (l *Layout) All() iter.Seq2[string, Format] {
	return func(yield func(string, Format) bool) {
		for i, name := range l.formats.Keys {
			if !yield(name, l.formats.Values[i]) {
				return
			}
		}
	}
}

// Validate validates every format, returning all failures joined.
func (l *Layout) Validate() error {
	var errs []error
	for name, f := range l.All() {
		if err := f.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("attrib.Layout: attribute %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// Check validates the layout against the vertex inputs of a shader:
// every input needs a valid attribute of the same name whose type is
// [Type.Compatible] with the input base type. All failures are joined,
// each wrapping [ErrMissing], [ErrCount], [ErrType], or [ErrIncompatible].
// Attributes with no matching input are ignored.
func (l *Layout) Check(inputs []shade.Input) error {
	var errs []error
	for _, in := range inputs {
		f, ok := l.Format(in.Name)
		if !ok {
			errs = append(errs, fmt.Errorf("attrib.Layout: shader input %q: %w", in.Name, ErrMissing))
			continue
		}
		if err := f.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("attrib.Layout: attribute %q: %w", in.Name, err))
			continue
		}
		if err := f.Type.Compatible(in.Base); err != nil {
			errs = append(errs, fmt.Errorf("attrib.Layout: attribute %q of type %s for shader input of type %s: %w", in.Name, f.Type, in.Base, err))
		}
	}
	return errors.Join(errs...)
}

// namedFormat is the on-disk form of one layout entry.
type namedFormat struct {
	Name   string `toml:"name" yaml:"name" json:"name"`
	Format `yaml:",inline"`
}

// layoutFile is the on-disk form of a layout.
type layoutFile struct {
	Attributes []namedFormat `toml:"attributes" yaml:"attributes" json:"attributes"`
}

// Open replaces the layout with the one in the given file,
// which can be TOML, YAML, or JSON based on the extension.
func (l *Layout) Open(filename string) error {
	var fl layoutFile
	if err := iox.Open(&fl, filename); err != nil {
		return fmt.Errorf("attrib.Layout.Open %q: %w", filename, err)
	}
	return l.setFile(&fl)
}

// ReadBytes replaces the layout with the one in the given bytes,
// encoded in the given format.
func (l *Layout) ReadBytes(data []byte, f iox.Formats) error {
	var fl layoutFile
	if err := iox.ReadBytes(&fl, data, f); err != nil {
		return fmt.Errorf("attrib.Layout.ReadBytes: %w", err)
	}
	return l.setFile(&fl)
}

func (l *Layout) setFile(fl *layoutFile) error {
	var nl Layout
	for _, nf := range fl.Attributes {
		if err := nl.Add(nf.Name, nf.Format); err != nil {
			return err
		}
	}
	*l = nl
	return nil
}

func (l *Layout) file() *layoutFile {
	fl := &layoutFile{}
	for name, f := range l.All() {
		fl.Attributes = append(fl.Attributes, namedFormat{Name: name, Format: f})
	}
	return fl
}

// Save writes the layout to the given file,
// in TOML, YAML, or JSON based on the extension.
func (l *Layout) Save(filename string) error {
	return iox.Save(l.file(), filename)
}
