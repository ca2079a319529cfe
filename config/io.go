// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a scene file format.
type Format int32

const (
	// TOML is the TOML format, used for .toml files.
	TOML Format = iota

	// YAML is the YAML format, used for .yaml and .yml files.
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// FormatFromFilename returns the format of the given file
// based on its extension.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("config: unsupported scene file extension %q (want .toml, .yaml or .yml)", filepath.Ext(filename))
}

// OpenScene reads a scene from the given file, in the format
// given by its extension. Values not present in the file keep
// their defaults.
func OpenScene(filename string) (*Scene, error) {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	sc, err := ReadScene(fp, f)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", filename, err)
	}
	return sc, nil
}

// ReadScene reads a scene in the given format from r.
func ReadScene(r io.Reader, f Format) (*Scene, error) {
	sc := NewScene()
	switch f {
	case YAML:
		err := yaml.NewDecoder(r).Decode(sc)
		if err != nil && err != io.EOF {
			return nil, err
		}
	default:
		if err := toml.NewDecoder(r).Decode(sc); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

// SaveScene writes the scene to the given file, in the format
// given by its extension.
func SaveScene(sc *Scene, filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	b := &bytes.Buffer{}
	if err := WriteScene(b, sc, f); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0666)
}

// WriteScene writes the scene in the given format to w.
func WriteScene(w io.Writer, sc *Scene, f Format) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return toml.NewEncoder(w).Encode(sc)
	}
}
