// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/reelmatch/internal/validation"
)

// Item is one row of the catalog.
type Item struct {
	// ID is the external identifier used for metadata lookup (e.g. an IMDb ID).
	// May be empty, in which case enrichment falls back to placeholders.
	ID string `json:"id"`

	// Name is the display name and the unique selection key.
	Name string `json:"name" validate:"required,notblank"`

	// Year is the release year.
	Year int `json:"year" validate:"gte=0"`

	// Genre is a free-text display label.
	Genre string `json:"genre"`

	// PopularityScore is the recency-biased popularity in [0,1].
	PopularityScore float64 `json:"popularity_score" validate:"gte=0,lte=1"`

	// RowIndex is the item's position in the catalog and similarity matrix.
	RowIndex int `json:"row_index"`
}

// Catalog is the read-only catalog plus its aligned similarity matrix.
type Catalog struct {
	items      []Item
	similarity [][]float64
	byName     map[string]int
	names      []string // sorted, for the selection surface
}

// New validates items and similarity and returns an immutable catalog.
//
// Validation enforces:
//   - every row passes its struct rules (name present, popularity in [0,1])
//   - names are unique
//   - the matrix is square with one row per item
//   - every cell is a finite number in [0,1]
//
// RowIndex is assigned from slice position; any value already present is overwritten.
func New(items []Item, similarity [][]float64) (*Catalog, error) {
	if len(items) == 0 {
		return nil, configErrorf("items", "catalog is empty")
	}
	if len(similarity) != len(items) {
		return nil, configErrorf("similarity",
			"matrix has %d rows but catalog has %d items", len(similarity), len(items))
	}

	c := &Catalog{
		items:      make([]Item, len(items)),
		similarity: make([][]float64, len(similarity)),
		byName:     make(map[string]int, len(items)),
		names:      make([]string, 0, len(items)),
	}

	for i := range items {
		item := items[i]
		item.RowIndex = i

		if verr := validation.ValidateStruct(&item); verr != nil {
			return nil, &ConfigurationError{
				Field:  fmt.Sprintf("items[%d]", i),
				Reason: "invalid row",
				Err:    verr,
			}
		}
		if prev, dup := c.byName[item.Name]; dup {
			return nil, configErrorf(fmt.Sprintf("items[%d].name", i),
				"duplicate name %q (first seen at row %d)", item.Name, prev)
		}

		c.items[i] = item
		c.byName[item.Name] = i
		c.names = append(c.names, item.Name)
	}

	for i, row := range similarity {
		if len(row) != len(items) {
			return nil, configErrorf(fmt.Sprintf("similarity[%d]", i),
				"row has %d columns, want %d", len(row), len(items))
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
				return nil, configErrorf(fmt.Sprintf("similarity[%d][%d]", i, j),
					"value %v outside [0,1]", v)
			}
		}
		c.similarity[i] = append([]float64(nil), row...)
	}

	sort.Strings(c.names)

	return c, nil
}

// Len returns the number of catalog rows.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Item returns the row at index i.
func (c *Catalog) Item(i int) Item {
	return c.items[i]
}

// Items returns a copy of every row in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Index resolves an exact name to its row index.
func (c *Catalog) Index(name string) (int, bool) {
	i, ok := c.byName[name]
	return i, ok
}

// Lookup returns the row with the given exact name.
func (c *Catalog) Lookup(name string) (Item, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Similarity returns sim[i][j].
func (c *Catalog) Similarity(i, j int) float64 {
	return c.similarity[i][j]
}

// Names returns all catalog names sorted ascending.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Search returns sorted names containing query (case-insensitive).
// An empty query matches everything. limit <= 0 means no limit.
func (c *Catalog) Search(query string, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]string, 0)
	for _, name := range c.names {
		if q != "" && !strings.Contains(strings.ToLower(name), q) {
			continue
		}
		out = append(out, name)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
