package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jmorel/venture"
	"github.com/jmorel/venture/renderer"
)

type incomeCmd struct{}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "show the income statement" }
func (*incomeCmd) Usage() string {
	return `income

  Derive the income statement from the journal: revenue, COGS, gross profit,
  operating expenses and net income.
`
}
func (*incomeCmd) SetFlags(_ *flag.FlagSet) {}

func (*incomeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := LoadGame()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.IncomeStatementMarkdown(state.Week, venture.NewIncomeStatement(state.Ledger)))
	return subcommands.ExitSuccess
}

type balanceSheetCmd struct{}

func (*balanceSheetCmd) Name() string     { return "balance-sheet" }
func (*balanceSheetCmd) Synopsis() string { return "show the balance sheet" }
func (*balanceSheetCmd) Usage() string {
	return `balance-sheet

  Derive the balance sheet from the journal. Total assets always equal total
  liabilities plus total equity.
`
}
func (*balanceSheetCmd) SetFlags(_ *flag.FlagSet) {}

func (*balanceSheetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := LoadGame()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BalanceSheetMarkdown(state.Week, venture.NewBalanceSheet(state.Ledger)))
	return subcommands.ExitSuccess
}

type cashFlowCmd struct{}

func (*cashFlowCmd) Name() string     { return "cash-flow" }
func (*cashFlowCmd) Synopsis() string { return "show the cash-flow statement (indirect method)" }
func (*cashFlowCmd) Usage() string {
	return `cash-flow

  Derive the cash-flow statement from the journal, starting from net income
  and adjusting for non-cash items and working-capital changes. The three
  sections sum exactly to the cash balance.
`
}
func (*cashFlowCmd) SetFlags(_ *flag.FlagSet) {}

func (*cashFlowCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := LoadGame()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CashFlowMarkdown(state.Week, venture.NewCashFlowStatement(state.Ledger)))
	return subcommands.ExitSuccess
}

type journalCmd struct{}

func (*journalCmd) Name() string     { return "journal" }
func (*journalCmd) Synopsis() string { return "list every entry in the ledger" }
func (*journalCmd) Usage() string {
	return `journal

  Print the append-only journal in posting order, with debit and credit
  totals. The totals are always equal; if they are not, file a bug.
`
}
func (*journalCmd) SetFlags(_ *flag.FlagSet) {}

func (*journalCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	state, err := LoadGame()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.JournalMarkdown(state.Ledger))
	return subcommands.ExitSuccess
}
