// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox reads and writes structured description files
// (vertex layouts, shader input lists) as TOML, YAML, or JSON,
// with the encoding chosen from the filename extension.
package iox

//go:generate core generate

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported file encoding formats.
type Formats int32 //enums:enum

// The supported file encoding formats
const (
	None Formats = iota
	TOML
	YAML
	JSON
)

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	ext = strings.ToLower(ext)
	switch ext {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// Open reads v from the given filename, with the format
// inferred from the filename extension.
func Open(v any, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Read(v, bufio.NewReader(file), f)
}

// Read decodes v from the given reader using the given format.
func Read(v any, r io.Reader, f Formats) error {
	switch f {
	case TOML:
		return toml.NewDecoder(r).Decode(v)
	case YAML:
		err := yaml.NewDecoder(r).Decode(v)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	case JSON:
		return json.NewDecoder(r).Decode(v)
	default:
		return fmt.Errorf("iox.Read: format %q not valid", f)
	}
}

// ReadBytes decodes v from the given bytes using the given format.
func ReadBytes(v any, data []byte, f Formats) error {
	return Read(v, strings.NewReader(string(data)), f)
}

// Save writes v to the given filename,
// with the format inferred from the filename.
func Save(v any, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	bw := bufio.NewWriter(file)
	if err := Write(v, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write encodes v to the given writer using the given format.
func Write(v any, w io.Writer, f Formats) error {
	switch f {
	case TOML:
		return toml.NewEncoder(w).Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("iox.Write: format %q not valid", f)
	}
}
