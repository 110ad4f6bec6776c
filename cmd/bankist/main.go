// Command bankist is a terminal client for the bankist server.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	server := flag.String("server", envOr("BANKIST_SERVER", "http://localhost:8080"), "Base URL of the bankist server.")

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range Commands {
		commander.Register(c, "session")
	}
	commander.Register(&accountsCmd{}, "directory")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background(), newClient(*server))))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
