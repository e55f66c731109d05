// Reelmatch - Similar Movie Recommendations with Metadata Enrichment
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metadata"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// recommendation is one output row, enriched or not.
type recommendation struct {
	Rank       int     `json:"rank"`
	Name       string  `json:"name"`
	Year       int     `json:"year"`
	Genre      string  `json:"genre"`
	Score      float64 `json:"score"`
	Similarity float64 `json:"similarity"`
	PosterURL  string  `json:"poster_url,omitempty"`
	Rating     string  `json:"rating,omitempty"`
}

type recommendOutput struct {
	Selected        catalog.Item     `json:"selected"`
	Recommendations []recommendation `json:"recommendations"`
	Enriched        bool             `json:"enriched"`
}

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var (
		enrich  bool
		asJSON  bool
		rankAll bool
	)

	cmd := &cobra.Command{
		Use:   "recommend <movie name>",
		Short: "Rank the shortlist for a movie",
		Long: "Ranks every catalog row against the named movie by 0.7*similarity + 0.3*popularity, drops rank 1 and prints the next five.\n" +
			"--enrich looks up poster and rating through OMDb and needs OMDB_API_KEY. The persistent metadata store is not used.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			cat, err := loadCatalog(ctx, cfg)
			if err != nil {
				return err
			}

			engine, err := recommend.NewEngine(cat, logging.Logger())
			if err != nil {
				return err
			}

			if rankAll {
				ranked, err := engine.Rank(args[0])
				if err != nil {
					return err
				}
				return writeRanking(cmd.OutOrStdout(), cat, ranked)
			}

			resp, err := engine.Recommend(ctx, args[0])
			if err != nil {
				return err
			}

			out := recommendOutput{
				Selected:        resp.Selected,
				Recommendations: make([]recommendation, len(resp.Items)),
				Enriched:        enrich,
			}
			for k, it := range resp.Items {
				out.Recommendations[k] = recommendation{
					Rank:       it.Rank,
					Name:       it.Item.Name,
					Year:       it.Item.Year,
					Genre:      it.Item.Genre,
					Score:      it.Score,
					Similarity: it.Similarity,
				}
			}

			if enrich {
				if err := cfg.Validate(); err != nil {
					return err
				}
				// A running server holds badger's directory lock on the store
				// path, so the CLI uses the in-memory tier only.
				mc := cfg.MetadataCache
				mc.StorePath = ""
				md, err := metadata.NewComponents(cfg.OMDb, mc, logging.Logger())
				if err != nil {
					return err
				}
				defer func() { _ = md.Close() }()

				items := make([]catalog.Item, len(resp.Items))
				for k, it := range resp.Items {
					items[k] = it.Item
				}
				results := metadata.NewEnricher(md.Fetcher, cfg.OMDb.MaxConcurrency).Enrich(ctx, items)
				for k, res := range results {
					out.Recommendations[k].PosterURL = res.Metadata.PosterURL
					out.Recommendations[k].Rating = res.Metadata.Rating
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			return writeRecommendations(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().BoolVarP(&enrich, "enrich", "e", false, "Fetch poster and rating from OMDb")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	cmd.Flags().BoolVar(&rankAll, "all", false, "Print the full ranking, including rank 1, without enrichment")
	return cmd
}

func writeRecommendations(w io.Writer, out recommendOutput) error {
	fmt.Fprintf(w, "Because you picked %s (%d):\n\n", out.Selected.Name, out.Selected.Year)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if out.Enriched {
		fmt.Fprintln(tw, "RANK\tNAME\tYEAR\tGENRE\tSCORE\tRATING\tPOSTER")
	} else {
		fmt.Fprintln(tw, "RANK\tNAME\tYEAR\tGENRE\tSCORE")
	}
	for _, r := range out.Recommendations {
		if out.Enriched {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%.4f\t%s\t%s\n", r.Rank, r.Name, r.Year, r.Genre, r.Score, r.Rating, r.PosterURL)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%.4f\n", r.Rank, r.Name, r.Year, r.Genre, r.Score)
	}
	return tw.Flush()
}

func writeRanking(w io.Writer, cat *catalog.Catalog, ranked []recommend.ScoredCandidate) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tROW\tNAME\tSCORE")
	for k, c := range ranked {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%.4f\n", k+1, c.RowIndex, cat.Item(c.RowIndex).Name, c.Score)
	}
	return tw.Flush()
}
