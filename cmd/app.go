// Package cmd implements the CLI application to export league transaction
// statements.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/bunsenliga/kickledger"
	"github.com/bunsenliga/kickledger/date"
	"github.com/bunsenliga/kickledger/kickbase"
)

// Commands lists every subcommand the kickledger binary registers.
var Commands = []subcommands.Command{
	&loginCmd{},
	&exportCmd{},
	&activitiesCmd{},
	&summaryCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	leagueFlag      = flag.String("league", "Bunsenliga", "League display name used for lookup")
	startDateFlag   = flag.String("start-date", kickledger.DefaultStartDate, "League start date (YYYY-MM-DD); events before it are ignored")
	startBudgetFlag = flag.Int64("start-budget", kickledger.DefaultStartBudget, "Starting budget granted to every manager")
)

const (
	envUser = "KICK_USER"
	envPass = "KICK_PASS"
)

// credentials returns the Kickbase credentials from flags or the environment.
// A .env file in the working directory is honored.
func credentials(user, pass string) (string, string, error) {
	_ = godotenv.Load()
	if user == "" {
		user = os.Getenv(envUser)
	}
	if pass == "" {
		pass = os.Getenv(envPass)
	}
	if user == "" || pass == "" {
		return "", "", fmt.Errorf("missing Kickbase credentials: set -user/-pass flags or %s/%s environment variables", envUser, envPass)
	}
	return user, pass, nil
}

// session returns a logged-in client: a stored session first, a fresh login
// as fallback.
func session(user, pass string) (*kickbase.Client, error) {
	c := kickbase.NewClient()
	if err := c.LoadSession(); err == nil {
		return c, nil
	}
	u, p, err := credentials(user, pass)
	if err != nil {
		return nil, err
	}
	if err := c.Login(u, p); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return c, nil
}

// fetchLeague logs in and pulls everything the ledger builder needs,
// printing progress along the way.
func fetchLeague(user, pass string) (c *kickbase.Client, leagueID string, managers []kickledger.Manager, events []kickledger.ActivityEvent, err error) {
	c, err = session(user, pass)
	if err != nil {
		return nil, "", nil, nil, err
	}
	fmt.Println("Logged in to Kickbase.")

	leagueID, err = c.LeagueID(*leagueFlag)
	if err != nil {
		return nil, "", nil, nil, err
	}
	fmt.Printf("League: %s (ID: %s)\n", *leagueFlag, leagueID)

	managers, err = c.Managers(leagueID)
	if err != nil {
		return nil, "", nil, nil, err
	}
	fmt.Printf("Found %d managers\n", len(managers))

	fmt.Println("\nFetching activities...")
	events, err = c.Activities(leagueID)
	if err != nil {
		return nil, "", nil, nil, err
	}
	fmt.Printf("Found %d total activities\n", len(events))

	return c, leagueID, managers, events, nil
}

// buildConfig assembles the ledger builder configuration from the global
// flags, wiring achievement reward lookups to the client.
func buildConfig(c *kickbase.Client, leagueID string) (kickledger.BuildConfig, error) {
	start, err := date.Parse(*startDateFlag)
	if err != nil {
		return kickledger.BuildConfig{}, fmt.Errorf("invalid -start-date: %w", err)
	}
	return kickledger.BuildConfig{
		StartBudget: *startBudgetFlag,
		StartDate:   start,
		DailyBonus:  kickledger.DailyLoginBonus,
		Now:         date.Today(),
		Rewards: func(achievementType int) (int64, int64, error) {
			return c.AchievementReward(leagueID, achievementType)
		},
	}, nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
