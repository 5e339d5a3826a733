// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the course-recommender CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/course-recommender/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const defaultUserAgent = "course-recommender/0.1"

// rootCmd is the base command for the course-recommender CLI.
var rootCmd = &cobra.Command{
	Use:   "course-recommender",
	Short: "Search and shortlist academic papers from a local metadata corpus",
	Long: `course-recommender searches a local corpus of academic paper metadata.
Queries are matched fuzzily against title, abstract, and categories, after
exact filtering by update year, submitter, or category. Results can be
saved into a per-session shortlist.

Load a metadata dump with "store load", then query it with "search" or
interactively with "browse".`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./course-recommender.yaml or ~/.config/course-recommender/config.yaml)")
	rootCmd.PersistentFlags().String("db-path", "", "SQLite corpus database (default: corpus/documents.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("course-recommender")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "course-recommender"))
		}
	}

	viper.SetEnvPrefix("COURSE_RECOMMENDER")
	viper.AutomaticEnv()

	viper.SetDefault("store.db_path", "corpus/documents.db")
	viper.SetDefault("ingest.timeout", 60*time.Second)
	viper.SetDefault("ingest.user_agent", defaultUserAgent)
	viper.SetDefault("ingest.batch_size", 500)
	viper.SetDefault("recommend.max_results", 50)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// storeConfig resolves the store configuration from flags and config file.
func storeConfig() types.StoreConfig {
	dbPath, _ := rootCmd.PersistentFlags().GetString("db-path")
	if dbPath == "" {
		dbPath = viper.GetString("store.db_path")
	}
	return types.StoreConfig{DBPath: dbPath}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
