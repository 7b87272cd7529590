// SPDX-License-Identifier: MIT
package journey

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/routefinder/core"
)

// edgeDoc and journeyDoc use pointers so absent keys can be told apart
// from explicit zeros.
type edgeDoc struct {
	From   *core.Label  `json:"from" yaml:"from"`
	To     *core.Label  `json:"to" yaml:"to"`
	Weight *core.Weight `json:"weight" yaml:"weight"`
}

type journeyDoc struct {
	From *core.Label `json:"from" yaml:"from"`
	To   *core.Label `json:"to" yaml:"to"`
}

// decoder is satisfied by both *json.Decoder and *yaml.Decoder.
type decoder interface {
	Decode(v interface{}) error
}

// decode reads exactly one document of format f into v. Empty input
// leaves v untouched; anything after the document is rejected.
func decode(r io.Reader, f Format, v interface{}) error {
	var dec decoder
	switch f {
	case FormatJSON:
		dec = json.NewDecoder(r)
	case FormatYAML:
		dec = yaml.NewDecoder(r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	var rest interface{}
	if err := dec.Decode(&rest); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}

	return nil
}

// DecodeEdges reads a list of arcs. Every record must carry from, to
// and weight; all violations are reported together.
func DecodeEdges(r io.Reader, f Format) ([]core.EdgeRecord, error) {
	var docs []edgeDoc
	if err := decode(r, f, &docs); err != nil {
		return nil, fmt.Errorf("journey: decode graph: %w", err)
	}

	var errs *multierror.Error
	records := make([]core.EdgeRecord, 0, len(docs))
	for i, d := range docs {
		missing := false
		for _, m := range []struct {
			name   string
			absent bool
		}{{"from", d.From == nil}, {"to", d.To == nil}, {"weight", d.Weight == nil}} {
			if m.absent {
				errs = multierror.Append(errs, fmt.Errorf("edge %d: %w %q", i, ErrMissingField, m.name))
				missing = true
			}
		}
		if missing {
			continue
		}
		records = append(records, core.EdgeRecord{Src: *d.From, Dst: *d.To, W: *d.Weight})
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return records, nil
}

// DecodeGraph reads a list of arcs and builds the graph from them.
func DecodeGraph(r io.Reader, f Format) (*core.AdjacencyList, error) {
	records, err := DecodeEdges(r, f)
	if err != nil {
		return nil, err
	}

	return core.FromEdges(records), nil
}

// DecodeJourneys reads a list of queries. Every query must carry from
// and to; a route key, if present, is ignored.
func DecodeJourneys(r io.Reader, f Format) ([]Journey, error) {
	var docs []journeyDoc
	if err := decode(r, f, &docs); err != nil {
		return nil, fmt.Errorf("journey: decode journeys: %w", err)
	}

	var errs *multierror.Error
	out := make([]Journey, 0, len(docs))
	for i, d := range docs {
		if d.From == nil {
			errs = multierror.Append(errs, fmt.Errorf("journey %d: %w %q", i, ErrMissingField, "from"))
		}
		if d.To == nil {
			errs = multierror.Append(errs, fmt.Errorf("journey %d: %w %q", i, ErrMissingField, "to"))
		}
		if d.From == nil || d.To == nil {
			continue
		}
		out = append(out, Journey{From: *d.From, To: *d.To})
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return out, nil
}

// EncodeJourneys writes solved journeys in format f.
func EncodeJourneys(w io.Writer, f Format, journeys []Journey) error {
	if journeys == nil {
		journeys = []Journey{}
	}
	switch f {
	case FormatJSON:
		if err := json.NewEncoder(w).Encode(journeys); err != nil {
			return fmt.Errorf("journey: encode: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(journeys); err != nil {
			return fmt.Errorf("journey: encode: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// LoadGraph opens path and decodes it with the format implied by its
// extension.
func LoadGraph(path string) (*core.AdjacencyList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("journey: open graph: %w", err)
	}
	defer f.Close()

	g, err := DecodeGraph(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// LoadJourneys opens path and decodes it with the format implied by its
// extension.
func LoadJourneys(path string) ([]Journey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("journey: open journeys: %w", err)
	}
	defer f.Close()

	js, err := DecodeJourneys(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return js, nil
}
