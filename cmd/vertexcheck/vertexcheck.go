// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vertexcheck checks a vertex layout file against the
// vertex inputs of a shader, reporting every missing attribute
// and every attribute whose encoding the shader input cannot consume.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/vertex/attrib"
	"cogentcore.org/vertex/gpu"
	"cogentcore.org/vertex/shade"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
)

// Config is the configuration information for the vertexcheck cli.
type Config struct {

	// Layout is the vertex layout file (.toml, .yaml, or .json).
	Layout string `posarg:"0"`

	// Inputs is the shader input list file (.toml, .yaml, or .json).
	Inputs string `posarg:"1"`

	// GPU also builds the WebGPU vertex buffer slots and prints them.
	// Run with -v to log each mapping decision.
	GPU bool `flag:"gpu"`

	// Watch keeps running and checks again whenever
	// the layout or inputs file changes.
	Watch bool `flag:"w,watch"`
}

func main() {
	opts := cli.DefaultOptions("vertexcheck", "Vertexcheck checks a vertex layout against the vertex inputs of a shader.")
	cli.Run(opts, &Config{}, Check)
}

// Check loads the layout and inputs and checks them against each other.
func Check(c *Config) error {
	var err error
	c.Layout, err = homedir.Expand(c.Layout)
	if err != nil {
		return err
	}
	c.Inputs, err = homedir.Expand(c.Inputs)
	if err != nil {
		return err
	}
	if c.Watch {
		return watch(c, os.Stdout, nil)
	}
	return check(c, os.Stdout)
}

func check(c *Config, w io.Writer) error {
	l := attrib.NewLayout()
	if err := l.Open(c.Layout); err != nil {
		return err
	}
	ins, err := shade.OpenInputs(c.Inputs)
	if err != nil {
		return err
	}
	out := termenv.NewOutput(w)
	good := func(s string) termenv.Style { return out.String(s).Foreground(out.Color("2")) }
	bad := func(s string) termenv.Style { return out.String(s).Foreground(out.Color("1")) }
	for _, in := range ins {
		f, has := l.Format(in.Name)
		var status termenv.Style
		switch {
		case !has:
			status = bad("missing ")
		case f.Validate() != nil:
			status = bad("invalid ")
		case !f.Type.IsCompatible(in.Base):
			status = bad("mismatch")
		default:
			status = good("ok      ")
		}
		fmt.Fprintf(w, "%-16s %-6s %s", in.Name, in.Base, status)
		if has {
			fmt.Fprintf(w, "  %s", f)
		}
		fmt.Fprintln(w)
	}
	if err := l.Check(ins); err != nil {
		return err
	}
	if !c.GPU {
		return nil
	}
	gpu.Debug = logx.UserLevel <= slog.LevelInfo
	bufs, err := gpu.VertexLayout(l, ins)
	if err != nil {
		return errors.Log(err)
	}
	for i, b := range bufs {
		fmt.Fprintf(w, "slot %d: %s offset %d stride %d step %v\n", i, b.Name, b.Offset, b.Layout.ArrayStride, b.Layout.StepMode)
		for _, a := range b.Layout.Attributes {
			fmt.Fprintf(w, "  @location(%d) %v\n", a.ShaderLocation, a.Format)
		}
	}
	return nil
}

// watch runs check, and again every time the layout or inputs
// file is written, until done is closed.
// Check errors are logged and do not stop the watch.
func watch(c *Config, w io.Writer, done <-chan struct{}) error {
	wt, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer wt.Close()
	files := map[string]bool{}
	for _, fn := range []string{c.Layout, c.Inputs} {
		files[filepath.Clean(fn)] = true
		// watch the directory so that editors that replace the file are seen
		if err := wt.Add(filepath.Dir(fn)); err != nil {
			return err
		}
	}
	errors.Log(check(c, w))
	for {
		select {
		case <-done:
			return nil
		case ev, ok := <-wt.Events:
			if !ok {
				return nil
			}
			if !files[filepath.Clean(ev.Name)] || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(w, "%s changed\n", ev.Name)
			errors.Log(check(c, w))
		case err, ok := <-wt.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
