package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bunsenliga/kickledger"
	"github.com/bunsenliga/kickledger/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	user string
	pass string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "displays per-manager final balances" }
func (*summaryCmd) Usage() string {
	return `kickledger summary [-league <name>] [-start-date <date>]

  Builds the ledgers like the export command would and displays each
  manager's entry count and final balance, without writing any file.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "Kickbase account email")
	f.StringVar(&c.pass, "pass", "", "Kickbase account password")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, leagueID, managers, events, err := fetchLeague(c.user, c.pass)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg, err := buildConfig(client, leagueID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledgers, stats := kickledger.Build(events, managers, cfg)

	printMarkdown(renderer.Summary(*leagueFlag, ledgers, stats))
	return subcommands.ExitSuccess
}
