// SPDX-License-Identifier: MIT
// Package: subiso/graphio
//
// format.go - format selection by name or file extension.

package graphio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects the document encoding.
type Format int

const (
	// FormatYAML is the default encoding.
	FormatYAML Format = iota
	// FormatJSON encodes the same document shape as JSON.
	FormatJSON
)

// String returns "yaml" or "json".
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat accepts "yaml", "yml", "json" (case-insensitive); "" is YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatYAML, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return FormatYAML, fmt.Errorf("FormatFromPath(%q): no extension: %w", path, ErrUnknownFormat)
	}

	return ParseFormat(ext)
}
