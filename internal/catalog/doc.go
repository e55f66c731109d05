// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package catalog holds the immutable movie catalog and its similarity matrix.

Both tables come from a static artifact produced offline and are loaded once
at startup. Row i of the catalog corresponds to row and column i of the
matrix; Load enforces that alignment and fails with a *ConfigurationError
when it does not hold.

# Artifact Formats

JSON (.json), a single file:

	{
	  "items": [
	    {"id": "tt0112870", "name": "Dilwale Dulhania Le Jayenge", "year": 1995,
	     "genre": "Romance", "popularity_score": 0.42}
	  ],
	  "similarity": [[1.0]]
	}

Columnar (.parquet or .csv), two files read through an in-memory DuckDB
connection: the catalog with columns id, name, year, genre, popularity_score,
and a headerless N x N matrix at SimilarityPath.

# Thread Safety

A *Catalog is never mutated after construction and may be shared freely.
*/
package catalog
