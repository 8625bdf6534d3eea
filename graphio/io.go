// SPDX-License-Identifier: MIT
// Package: subiso/graphio
//
// io.go - Read/Write entry points over io.Reader/io.Writer and files.

package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subiso/core"
)

// Decode parses one document from r. Unknown keys are rejected.
func Decode(r io.Reader, f Format) (*Document, error) {
	var (
		doc Document
		err error
	)
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		return nil, fmt.Errorf("Decode: %s: %w", f, ErrUnknownFormat)
	}
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty %s document", ErrDecode, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, f, err)
	}

	return &doc, nil
}

// Encode writes d to w in format f.
func Encode(w io.Writer, d *Document, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("Encode: yaml: %w", err)
		}

		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("Encode: json: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("Encode: %s: %w", f, ErrUnknownFormat)
	}
}

// Read decodes a document from r and builds its graph.
func Read(r io.Reader, f Format) (*core.Graph, error) {
	doc, err := Decode(r, f)
	if err != nil {
		return nil, err
	}

	return doc.Graph()
}

// ReadFile opens path and reads it with the format implied by its extension.
func ReadFile(path string) (*core.Graph, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer fh.Close()

	g, err := Read(fh, f)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	return g, nil
}

// Write encodes g (with an optional name) to w.
func Write(w io.Writer, g *core.Graph, name string, f Format) error {
	return Encode(w, FromGraph(g, name), f)
}

// WriteFile writes g to path with the format implied by its extension.
func WriteFile(path string, g *core.Graph, name string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = Write(fh, g, name, f); err != nil {
		_ = fh.Close()
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}

	return fh.Close()
}
