package main

import (
	"flag"
	"log"
	"net"
	"net/http"
)

func init() {
	flagSet := flag.NewFlagSet("serve", flag.ExitOnError)
	var (
		httpAddr = flagSet.String("http", ":3000", "HTTP listen address")
	)

	handler := func(args []string) error {
		host, port, err := net.SplitHostPort(*httpAddr)
		if err != nil {
			return err
		}
		if host == "" {
			host = "0.0.0.0"
		}

		site, _, err := siteFromFlags()
		if err != nil {
			return err
		}
		log.Printf("# Lyrics site is available at http://%s:%s", host, port)
		return http.ListenAndServe(*httpAddr, site.Handler())
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "start a web server to serve the site",
		LongDescription:  "The serve subcommand loads the song records and starts a web server to serve the search site over HTTP. Templates and assets are read on each request, so changes to them are visible after reloading the page.",
		handler:          handler,
	})
}
