package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/jmorel/venture"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "run a jsonpath query against the save file" }
func (*queryCmd) Usage() string {
	return `query <jsonpath>

  Evaluate a jsonpath expression against the raw save file and print the
  result as JSON. Useful for scripting, e.g.

    vent query '$.week'
    vent query '$.ledger[-1].description'
    vent query '$.ledger[?(@.debit_account=="Cash")].amount'
`
}
func (*queryCmd) SetFlags(_ *flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "query: expected exactly one jsonpath expression")
		return subcommands.ExitUsageError
	}
	data, err := os.ReadFile(filepath.Join(GameDir(), venture.SaveName))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "query: invalid save file: %v\n", err)
		return subcommands.ExitFailure
	}
	result, err := jsonpath.Get(f.Arg(0), doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query: %v\n", err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
