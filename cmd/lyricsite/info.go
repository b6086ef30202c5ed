package main

import (
	"flag"
	"fmt"

	"gopkg.in/yaml.v2"
)

func init() {
	flagSet := flag.NewFlagSet("info", flag.ExitOnError)

	handler := func(args []string) error {
		site, conf, err := siteFromFlags()
		if err != nil {
			return err
		}

		confYAML, err := yaml.Marshal(conf)
		if err != nil {
			return err
		}
		fmt.Print(string(confYAML))
		fmt.Printf("# %d records\n", site.Records.Len())
		return nil
	}

	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "print lyricsite configuration",
		LongDescription:  "The info subcommand prints the effective configuration (including defaults) and the number of records loaded.",
		handler:          handler,
	})
}
