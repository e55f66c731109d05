// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"bytes"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// Artifact is the JSON encoding of a catalog.
type Artifact struct {
	Items      []Item      `json:"items"`
	Similarity [][]float64 `json:"similarity"`
}

func loadJSON(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Field: "catalog.path", Reason: "read artifact", Err: err}
	}
	return Decode(bytes.NewReader(data))
}

// Decode parses a JSON artifact from r and validates it.
func Decode(r io.Reader) (*Catalog, error) {
	var a Artifact
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		return nil, &ConfigurationError{Field: "catalog.path", Reason: "malformed JSON artifact", Err: err}
	}
	return New(a.Items, a.Similarity)
}

// Encode writes c as a JSON artifact.
func Encode(w io.Writer, c *Catalog) error {
	a := Artifact{
		Items:      c.Items(),
		Similarity: c.similarity,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&a)
}
