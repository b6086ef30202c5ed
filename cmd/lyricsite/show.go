package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
)

func init() {
	flagSet := flag.NewFlagSet("show", flag.ExitOnError)

	handler := func(args []string) error {
		if len(args) != 1 {
			return &usageError{errors.New("expected exactly 1 record ID")}
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return &usageError{fmt.Errorf("invalid record ID %q", args[0])}
		}

		site, _, err := siteFromFlags()
		if err != nil {
			return err
		}
		r, ok := site.Record(id)
		if !ok {
			return &exitCodeError{error: fmt.Errorf("no record with ID %d", id), exitCode: 1}
		}
		fmt.Printf("#%d %s\n%s • %d\n\n%s\n", r.ID, r.Title, r.Artist, r.Year, r.Body)
		return nil
	}

	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "print a song record",
		LongDescription:  "The show subcommand prints the song record with the given ID (as shown in search results).",
		ArgsUsage:        "ID",
		handler:          handler,
	})
}
