// SPDX-License-Identifier: MIT
package journey

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/routefinder/core"
)

// Sentinel errors returned by the codec.
var (
	// ErrMissingField indicates a record without one of its required keys.
	ErrMissingField = errors.New("journey: missing required field")

	// ErrUnknownFormat indicates an unsupported serialization format.
	ErrUnknownFormat = errors.New("journey: unknown format")

	// ErrTrailingData indicates input left over after the first document.
	ErrTrailingData = errors.New("journey: trailing data after document")
)

// Format names a serialization format.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Path is the vertex sequence of a found route. A nil Path is the "no
// route" marker and encodes as null in every format.
type Path []core.Label

// MarshalYAML keeps nil paths as null instead of an empty sequence.
func (p Path) MarshalYAML() (interface{}, error) {
	if p == nil {
		return nil, nil
	}

	return []core.Label(p), nil
}

// Journey is one query and, once solved, its answer.
type Journey struct {
	From  core.Label `json:"from" yaml:"from"`
	To    core.Label `json:"to" yaml:"to"`
	Route Path       `json:"route" yaml:"route"`
}

// Found reports whether the journey has a route.
func (j Journey) Found() bool { return j.Route != nil }
