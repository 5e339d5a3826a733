// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/course-recommender/internal/corpus"
	"github.com/pdiddy/course-recommender/internal/ingest"
	"github.com/pdiddy/course-recommender/internal/store"
	"github.com/pdiddy/course-recommender/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the corpus document store (load, stats)",
	Long: `Store manages the SQLite corpus database. Use subcommands to load a
metadata dump or inspect the stored corpus.`,
}

// --- load subcommand ---

var storeLoadCmd = &cobra.Command{
	Use:   "load [path|url]",
	Short: "Load an arXiv-style metadata dump into the store",
	Long: `Load reads a JSON-lines metadata dump from a local file or an http(s)
URL and upserts its documents into the corpus database. Re-loading a dump
replaces existing documents by id without changing their position.`,
	RunE: runStoreLoad,
}

func runStoreLoad(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide exactly one dump path or URL")
	}

	cfg := ingestConfig(cmd)

	st, err := store.Open(storeConfig())
	if err != nil {
		return err
	}
	defer st.Close()

	summary, err := ingest.Load(context.Background(), st, args[0], cfg, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d line(s) failed to load", summary.Failed)
	}
	return nil
}

// --- stats subcommand ---

var storeStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print corpus size and distinct filter values",
	RunE:  runStoreStats,
}

func runStoreStats(cmd *cobra.Command, args []string) error {
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

	fmt.Printf("documents:  %d\n", snap.Len())
	fmt.Printf("years:      %d\n", len(snap.Years))
	fmt.Printf("submitters: %d\n", len(snap.Submitters))
	fmt.Printf("categories: %d\n", len(snap.Categories))
	return nil
}

func ingestConfig(cmd *cobra.Command) types.IngestConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("ingest.timeout")
	}
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	if batchSize == 0 {
		batchSize = viper.GetInt("ingest.batch_size")
	}

	return types.IngestConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: viper.GetString("ingest.user_agent"),
		},
		BatchSize: batchSize,
	}
}

func init() {
	storeLoadCmd.Flags().Duration("timeout", 0, "HTTP request timeout for URL sources (default 60s)")
	storeLoadCmd.Flags().Int("batch-size", 0, "documents per write transaction (default 500)")

	storeCmd.AddCommand(storeLoadCmd)
	storeCmd.AddCommand(storeStatsCmd)

	rootCmd.AddCommand(storeCmd)
}
