package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/jmorel/venture"
)

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "start a brand new game" }
func (*resetCmd) Usage() string {
	return `reset [-f]

  Discard the current save and start over with an empty ledger at week zero.
  Asks for confirmation unless -f is given.
`
}
func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "reset without asking for confirmation")
}

func (c *resetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Print("This discards the current game for good. Continue? [y/N] ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return subcommands.ExitSuccess
		}
	}
	if err := venture.SaveGame(GameDir(), venture.NewBusinessState()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Fresh books. Run 'vent play' to begin.")
	return subcommands.ExitSuccess
}
