package main

import (
	"context"
	"flag"
	"fmt"
)

func init() {
	flagSet := flag.NewFlagSet("check", flag.ExitOnError)

	handler := func(args []string) error {
		site, _, err := siteFromFlags()
		if err != nil {
			return err
		}
		problems, err := site.Check(context.Background())
		if err != nil {
			return err
		}
		if len(problems) > 0 {
			for _, problem := range problems {
				fmt.Println(problem)
			}
			return &exitCodeError{error: fmt.Errorf("%d problems found", len(problems)), exitCode: 1}
		}
		return nil
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "check all song pages for problems",
		LongDescription:  "The check subcommand renders the page of every song record and reports problems, such as template execution errors and broken links.",
		handler:          handler,
	})
}
