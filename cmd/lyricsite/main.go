package main

import (
	"flag"
	"log"
	"os"
	"text/template"
)

var usage = template.Must(template.New("").Parse(`lyricsite serves a site for searching the web or a local corpus of song lyrics.

Usage:

  lyricsite [options] command [command options]

The options are:

{{call .FlagUsage }}
The commands are:
{{range .Commands}}
  {{printf "%- 15s" .NameAndAliases}} {{.ShortDescription}}
{{- end}}

Use "lyricsite [command] -h" for more information about a command.

`))

var (
	configPath = flag.String("config", "lyricsite.yaml", "search `paths` (separated by '"+string(os.PathListSeparator)+"') for the lyricsite.yaml config file")
)

// commands contains all registered subcommands.
var commands commander

func main() {
	log.SetFlags(0)
	log.SetPrefix("")
	commands.run(flag.CommandLine, "lyricsite", usage, os.Args[1:])
}
