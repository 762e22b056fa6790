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

// activitiesCmd shows the raw feed after the start-date filter, a diagnostic
// view of what the export is built from.
type activitiesCmd struct {
	user string
	pass string
}

func (*activitiesCmd) Name() string     { return "activities" }
func (*activitiesCmd) Synopsis() string { return "lists the league activities feed" }
func (*activitiesCmd) Usage() string {
	return `kickledger activities [-league <name>] [-start-date <date>]

  Lists the activities feed since the league start, classified the way the
  exporter reads it, together with the collected feed totals. Useful to
  check what a statement will be built from.
`
}

func (c *activitiesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "Kickbase account email")
	f.StringVar(&c.pass, "pass", "", "Kickbase account password")
}

func (c *activitiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	// Build is cheap and yields the feed totals alongside the ledgers.
	_, stats := kickledger.Build(events, managers, cfg)

	printMarkdown(renderer.Activities(kickledger.FilterEvents(events, cfg.StartDate), stats))
	return subcommands.ExitSuccess
}
