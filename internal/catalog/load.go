// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// Source locates a static artifact on disk.
type Source struct {
	// Path is the catalog file (.json, .parquet or .csv).
	Path string

	// SimilarityPath is the matrix file for columnar catalogs.
	// Ignored for JSON, which embeds the matrix.
	SimilarityPath string
}

// Format identifies how an artifact is encoded.
type Format string

const (
	FormatJSON    Format = "json"
	FormatParquet Format = "parquet"
	FormatCSV     Format = "csv"
)

// DetectFormat infers the artifact format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".parquet":
		return FormatParquet, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", configErrorf("catalog.path", "unsupported artifact extension %q", filepath.Ext(path))
	}
}

// Load reads and validates the artifact described by src.
// Every failure is returned as a *ConfigurationError.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	if src.Path == "" {
		return nil, configErrorf("catalog.path", "path is required")
	}

	format, err := DetectFormat(src.Path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(src.Path); err != nil {
		return nil, &ConfigurationError{Field: "catalog.path", Reason: "cannot access artifact", Err: err}
	}

	switch format {
	case FormatJSON:
		return loadJSON(src.Path)
	default:
		if src.SimilarityPath == "" {
			return nil, configErrorf("catalog.similarity_path", "required for %s catalogs", format)
		}
		return loadColumnar(ctx, format, src)
	}
}
