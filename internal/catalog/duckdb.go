// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	// DuckDB driver - reads parquet and CSV artifacts without a separate parser
	_ "github.com/duckdb/duckdb-go/v2"
)

const columnarQueryTimeout = 60 * time.Second

// loadColumnar reads a catalog and matrix pair through an in-memory DuckDB.
func loadColumnar(ctx context.Context, format Format, src Source) (*Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, columnarQueryTimeout)
	defer cancel()

	db, err := sql.Open("duckdb", ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false")
	if err != nil {
		return nil, &ConfigurationError{Field: "catalog.path", Reason: "open duckdb", Err: err}
	}
	defer db.Close() //nolint:errcheck // in-memory database, nothing to flush

	items, err := readCatalogTable(ctx, db, format, src.Path)
	if err != nil {
		return nil, err
	}

	matrix, err := readMatrixTable(ctx, db, format, src.SimilarityPath)
	if err != nil {
		return nil, err
	}

	return New(items, matrix)
}

// tableFunc returns the DuckDB table function reading path, with the path
// embedded as an escaped string literal.
func tableFunc(format Format, path string, headerless bool) string {
	literal := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	switch format {
	case FormatParquet:
		return fmt.Sprintf("read_parquet(%s)", literal)
	default:
		if headerless {
			return fmt.Sprintf("read_csv(%s, header = false)", literal)
		}
		return fmt.Sprintf("read_csv(%s, header = true)", literal)
	}
}

func readCatalogTable(ctx context.Context, db *sql.DB, format Format, path string) ([]Item, error) {
	//nolint:gosec // G201: table function built from an escaped literal, not user input
	query := fmt.Sprintf(`
		SELECT
			CAST(id AS VARCHAR),
			CAST(name AS VARCHAR),
			CAST(year AS BIGINT),
			CAST(genre AS VARCHAR),
			CAST(popularity_score AS DOUBLE)
		FROM %s`, tableFunc(format, path, false))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &ConfigurationError{Field: "catalog.path", Reason: "query catalog table", Err: err}
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	var items []Item
	for rows.Next() {
		var (
			id, name, genre sql.NullString
			year            sql.NullInt64
			popularity      sql.NullFloat64
		)
		if err := rows.Scan(&id, &name, &year, &genre, &popularity); err != nil {
			return nil, &ConfigurationError{
				Field:  fmt.Sprintf("catalog row %d", len(items)),
				Reason: "scan",
				Err:    err,
			}
		}
		if !popularity.Valid {
			return nil, configErrorf(fmt.Sprintf("items[%d].popularity_score", len(items)), "missing value")
		}
		items = append(items, Item{
			ID:              id.String,
			Name:            name.String,
			Year:            int(year.Int64),
			Genre:           genre.String,
			PopularityScore: popularity.Float64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, &ConfigurationError{Field: "catalog.path", Reason: "iterate catalog table", Err: err}
	}

	return items, nil
}

func readMatrixTable(ctx context.Context, db *sql.DB, format Format, path string) ([][]float64, error) {
	//nolint:gosec // G201: table function built from an escaped literal, not user input
	query := "SELECT * FROM " + tableFunc(format, path, true)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &ConfigurationError{Field: "catalog.similarity_path", Reason: "query matrix table", Err: err}
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	cols, err := rows.Columns()
	if err != nil {
		return nil, &ConfigurationError{Field: "catalog.similarity_path", Reason: "read columns", Err: err}
	}

	var matrix [][]float64
	for rows.Next() {
		raw := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &ConfigurationError{
				Field:  fmt.Sprintf("similarity[%d]", len(matrix)),
				Reason: "scan",
				Err:    err,
			}
		}

		row := make([]float64, len(cols))
		for j, v := range raw {
			f, ok := toFloat(v)
			if !ok {
				return nil, configErrorf(fmt.Sprintf("similarity[%d][%d]", len(matrix), j),
					"non-numeric value %v", v)
			}
			row[j] = f
		}
		matrix = append(matrix, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &ConfigurationError{Field: "catalog.similarity_path", Reason: "iterate matrix table", Err: err}
	}

	return matrix, nil
}

// toFloat normalizes the numeric types DuckDB may infer for a matrix column.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint8:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
