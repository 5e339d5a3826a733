// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/course-recommender/internal/corpus"
	"github.com/pdiddy/course-recommender/internal/recommend"
	"github.com/pdiddy/course-recommender/internal/session"
	"github.com/pdiddy/course-recommender/internal/store"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively search the corpus and build a shortlist",
	Long: `Browse starts an interactive session. Set filters, run fuzzy queries,
and save results into a shortlist that lives for the session. Type "help"
at the prompt for the command list.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	st, err := store.Open(storeConfig())
	if err != nil {
		return err
	}
	defer st.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = viper.GetInt("recommend.max_results")
	}

	b := &browser{
		store:   st,
		session: session.New(),
		limit:   limit,
		out:     os.Stdout,
	}
	if _, err := b.cache.Rebuild(context.Background(), st); err != nil {
		return err
	}

	fmt.Fprintf(b.out, "Loaded %d documents. Type \"help\" for commands.\n", b.cache.Current().Len())
	b.run(bufio.NewScanner(os.Stdin))
	return nil
}

// browser drives one interactive session: current filters, last results,
// and the session's page and shortlist.
type browser struct {
	store   *store.Store
	cache   corpus.Cache
	session *session.Session
	filters recommend.Filters
	results []recommend.Result
	limit   int
	out     io.Writer
}

func (b *browser) run(scanner *bufio.Scanner) {
	for {
		fmt.Fprintf(b.out, "%s> ", strings.ToLower(string(b.session.Page())))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		if cmd == "quit" || cmd == "exit" {
			return
		}
		if err := b.dispatch(cmd, arg); err != nil {
			fmt.Fprintf(b.out, "error: %v\n", err)
		}
	}
}

func (b *browser) dispatch(cmd, arg string) error {
	switch cmd {
	case "help":
		b.printHelp()
	case "year":
		b.filters.Year = arg
	case "submitter":
		b.filters.Submitter = arg
	case "category":
		b.filters.Category = arg
	case "filters":
		b.printFilters()
	case "values":
		return b.printValues(arg)
	case "find":
		return b.find(arg)
	case "save":
		return b.save(arg)
	case "selected":
		b.session.Goto(session.PageSelectedCourses)
		b.printSelections()
	case "home":
		b.session.Goto(session.PageHome)
	case "export":
		return b.export(arg)
	case "reload":
		return b.reload()
	default:
		return fmt.Errorf("unknown command %q (try \"help\")", cmd)
	}
	return nil
}

func (b *browser) printHelp() {
	fmt.Fprint(b.out, `commands:
  year <v>        filter by update year ("All" to clear)
  submitter <v>   filter by submitter ("All" to clear)
  category <v>    filter by category ("All" to clear)
  filters         show current filters
  values <which>  list distinct years | submitters | categories
  find <query>    rank the filtered corpus against a fuzzy query
  save <rank>     add a result from the last find to the shortlist
  selected        view the shortlist
  home            back to searching
  export <path>   write the shortlist to a YAML file
  reload          rebuild the corpus snapshot from the store
  quit            end the session
`)
}

func (b *browser) printFilters() {
	show := func(v string) string {
		if v == "" {
			return recommend.All
		}
		return v
	}
	fmt.Fprintf(b.out, "year=%s submitter=%s category=%s limit=%d\n",
		show(b.filters.Year), show(b.filters.Submitter), show(b.filters.Category), b.limit)
}

func (b *browser) printValues(which string) error {
	snap := b.cache.Current()
	var values []string
	switch which {
	case "years":
		values = snap.Years
	case "submitters":
		values = snap.Submitters
	case "categories":
		values = snap.Categories
	default:
		return fmt.Errorf("unknown value set %q: use years, submitters, or categories", which)
	}
	for _, v := range values {
		fmt.Fprintln(b.out, v)
	}
	return nil
}

func (b *browser) find(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("provide a query, e.g. \"find quantum computation\"")
	}
	b.results = recommend.Search(b.cache.Current(), b.filters, query, b.limit)
	recommend.FormatTable(b.results, b.out)
	return nil
}

func (b *browser) save(arg string) error {
	rank, err := strconv.Atoi(arg)
	if err != nil || rank < 1 || rank > len(b.results) {
		return fmt.Errorf("save takes a rank between 1 and %d from the last find", len(b.results))
	}
	doc := b.results[rank-1].Document
	b.session.Save(doc)
	fmt.Fprintf(b.out, "Saved %q (%d in shortlist)\n", doc.Title, b.session.Len())
	return nil
}

func (b *browser) printSelections() {
	selections := b.session.Selections()
	if len(selections) == 0 {
		fmt.Fprintln(b.out, "No courses selected yet.")
		return
	}
	for i, d := range selections {
		fmt.Fprintf(b.out, "%d. %s\n   submitter: %s  year: %s  categories: %s\n",
			i+1, d.Title, d.DisplaySubmitter(), d.DisplayYear(), strings.Join(d.Categories, ", "))
		if d.Link != "" {
			fmt.Fprintf(b.out, "   link: %s\n", d.Link)
		}
	}
}

func (b *browser) export(path string) error {
	if path == "" {
		return fmt.Errorf("provide an output path")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()
	if err := b.session.WriteYAML(f); err != nil {
		return err
	}
	fmt.Fprintf(b.out, "Exported %d selection(s) to %s\n", b.session.Len(), path)
	return nil
}

func (b *browser) reload() error {
	snap, err := b.cache.Rebuild(context.Background(), b.store)
	if err != nil {
		return err
	}
	b.results = nil
	fmt.Fprintf(b.out, "Rebuilt snapshot: %d documents\n", snap.Len())
	return nil
}

func init() {
	browseCmd.Flags().Int("limit", 0, "maximum results per find (0 = use default)")

	rootCmd.AddCommand(browseCmd)
}
