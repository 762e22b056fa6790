package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/bunsenliga/kickledger/kickbase"
)

type loginCmd struct {
	user string
	pass string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "authenticates with Kickbase and stores the session" }
func (*loginCmd) Usage() string {
	return `kickledger login [-user <email>] [-pass <password>]

  Authenticates with Kickbase and stores the session token for the other
  commands. Credentials can also come from the KICK_USER and KICK_PASS
  environment variables, including via a .env file.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "Kickbase account email")
	f.StringVar(&c.pass, "pass", "", "Kickbase account password")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, pass, err := credentials(c.user, c.pass)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	client := kickbase.NewClient()
	if err := client.Login(user, pass); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := client.SaveSession(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to save session: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println("✅ Kickbase session successfully stored.")
	return subcommands.ExitSuccess
}
