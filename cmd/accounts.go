package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/jmorel/venture"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the chart of accounts" }
func (*accountsCmd) Usage() string {
	return `accounts

  Print the closed chart of accounts with each account's class and normal
  balance side. Journal entries may only reference these accounts.
`
}
func (*accountsCmd) SetFlags(_ *flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var sb strings.Builder
	sb.WriteString("# Chart of Accounts\n\n")
	sb.WriteString("| Account | Class | Normal balance |\n")
	sb.WriteString("|---|---|---|\n")
	for _, a := range venture.AllAccounts() {
		side := "Credit"
		if a.Class().DebitNormal() {
			side = "Debit"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", a, a.Class(), side)
	}
	printMarkdown(sb.String())
	return subcommands.ExitSuccess
}
