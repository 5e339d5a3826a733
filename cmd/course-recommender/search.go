// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/course-recommender/internal/corpus"
	"github.com/pdiddy/course-recommender/internal/recommend"
	"github.com/pdiddy/course-recommender/internal/store"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the corpus with filters and a fuzzy text query",
	Long: `Search filters the corpus by update year, submitter, and category, then
ranks the remaining documents against the query by fuzzy partial-substring
similarity. Results print as a table or as JSON, and can be saved to a
query file for later reloading with --load.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	savePath, _ := cmd.Flags().GetString("save")
	loadPath, _ := cmd.Flags().GetString("load")

	// Load mode: reprint a previously saved search.
	if loadPath != "" {
		qf, err := recommend.ReadQueryFile(loadPath)
		if err != nil {
			return err
		}
		if asJSON {
			return recommend.FormatJSON(qf.Results, os.Stdout)
		}
		fmt.Printf("Saved search %q (%s)\n\n", qf.Query.Text, qf.Summary.Timestamp.Format("2006-01-02 15:04"))
		recommend.FormatTable(qf.Results, os.Stdout)
		return nil
	}

	params := queryParamsFromFlags(cmd, args)
	if strings.TrimSpace(params.Text) == "" {
		return fmt.Errorf("provide a search query (e.g. \"quantum computation\")")
	}

	st, err := store.Open(storeConfig())
	if err != nil {
		return err
	}
	defer st.Close()

	docs, err := st.FetchAll(context.Background())
	if err != nil {
		return err
	}
	snap := corpus.Build(docs)

	results := recommend.Search(snap, params.Filters(), params.Text, params.Limit)

	if savePath != "" {
		if err := recommend.WriteQueryFile(savePath, params, results); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved search to %s\n", savePath)
	}

	if asJSON {
		return recommend.FormatJSON(results, os.Stdout)
	}
	recommend.FormatTable(results, os.Stdout)
	return nil
}

func queryParamsFromFlags(cmd *cobra.Command, args []string) recommend.QueryParams {
	text, _ := cmd.Flags().GetString("query")
	if text == "" && len(args) > 0 {
		text = strings.Join(args, " ")
	}

	year, _ := cmd.Flags().GetString("year")
	submitter, _ := cmd.Flags().GetString("submitter")
	category, _ := cmd.Flags().GetString("category")
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = viper.GetInt("recommend.max_results")
	}

	return recommend.QueryParams{
		Text:      text,
		Year:      year,
		Submitter: submitter,
		Category:  category,
		Limit:     limit,
	}
}

func init() {
	searchCmd.Flags().String("query", "", "free-text search query")
	searchCmd.Flags().String("year", "", "filter by update year (e.g. 2020)")
	searchCmd.Flags().String("submitter", "", "filter by exact submitter")
	searchCmd.Flags().String("category", "", "filter by category membership (e.g. quant-ph)")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save query and results to a YAML file")
	searchCmd.Flags().String("load", "", "print a previously saved query file instead of searching")

	rootCmd.AddCommand(searchCmd)
}
