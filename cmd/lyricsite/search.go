package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/sourcegraph/lyricsite/internal/search"
)

func init() {
	flagSet := flag.NewFlagSet("search", flag.ExitOnError)
	var (
		source = flagSet.String("source", string(search.SourceLocal), "where to search (\"local\" or \"web\")")
		window = flagSet.Int("window", search.DefaultWindow, "characters of context to show around local matches")
	)

	handler := func(args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return &usageError{errors.New("no query given")}
		}
		src, err := search.ParseSource(*source)
		if err != nil {
			return &usageError{err}
		}

		site, _, err := siteFromFlags()
		if err != nil {
			return err
		}

		switch src {
		case search.SourceLocal:
			matches := site.Records.QueryByFilter(query)
			if len(matches) == 0 {
				return &exitCodeError{error: errors.New("no results found"), exitCode: 1}
			}
			for _, r := range matches {
				fmt.Printf("%d\t%s (%d • %s)\n\t%s\n", r.ID, r.Title, r.Year, r.Artist, search.Snippet(r.Body, query, *window))
			}

		case search.SourceWeb:
			results, err := site.Search(context.Background(), src, query)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return &exitCodeError{error: errors.New("no results found"), exitCode: 1}
			}
			for _, r := range results {
				fmt.Printf("%s\n\t%s\n\t%s\n", r.Title, r.URL, r.Snippet)
			}
		}
		return nil
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "search songs or the web",
		LongDescription:  "The search subcommand searches the local song records (or the web) for the query and prints the results with the match context.",
		ArgsUsage:        "QUERY",
		aliases:          []string{"s"},
		handler:          handler,
	})
}
