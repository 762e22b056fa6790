package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bunsenliga/kickledger"
)

// exportCmd implements the main pipeline: fetch, build, export.
type exportCmd struct {
	out  string
	user string
	pass string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "exports one CSV statement per manager" }
func (*exportCmd) Usage() string {
	return `kickledger export [-league <name>] [-start-date <date>] [-start-budget <n>] [-o <dir>]

  Fetches the league activities feed, reconstructs one ledger per manager
  (trades from the feed, plus synthetic start budget, daily login bonuses
  and an equal-split achievement estimate), and writes one CSV statement
  per manager into the output directory.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "transaction_exports", "Output directory for the CSV statements")
	f.StringVar(&c.user, "user", "", "Kickbase account email")
	f.StringVar(&c.pass, "pass", "", "Kickbase account password")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	fmt.Println("\nBuilding manager ledgers...")
	ledgers, stats := kickledger.Build(events, managers, cfg)
	fmt.Printf("  Daily login bonus: %s × %d days = %s per manager\n",
		kickledger.FormatAmount(cfg.DailyBonus), stats.Days, kickledger.FormatAmount(cfg.DailyBonus*int64(stats.Days)))
	fmt.Printf("  Total achievement bonus: %s -> %s per manager (estimated)\n",
		kickledger.FormatAmount(stats.AchievementTotal), kickledger.FormatAmount(stats.AchievementShare))
	fmt.Printf("Found %d managers with transactions\n", len(ledgers))

	fmt.Printf("\nExporting to %s/...\n", c.out)
	names, err := kickledger.Export(c.out, ledgers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, name := range names {
		fmt.Printf("  Exported %d transactions for %s\n", ledgers[name].Len(), name)
	}

	fmt.Println("\nNote: login/achievement bonuses are estimated (total ÷ managers)")
	fmt.Println("Done!")
	return subcommands.ExitSuccess
}
