// Package cmd implements the CLI application to play and inspect a venture.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jmorel/venture"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")

	c.Register(&playCmd{}, "game")
	c.Register(&resetCmd{}, "game")

	c.Register(&incomeCmd{}, "reports")
	c.Register(&balanceSheetCmd{}, "reports")
	c.Register(&cashFlowCmd{}, "reports")
	c.Register(&journalCmd{}, "reports")

	c.Register(&accountsCmd{}, "reference")
	c.Register(&queryCmd{}, "reference")
	c.Register(&topicCmd{}, "reference")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var gameDir = flag.String("dir", defaultGameDir(), "Path to the game directory holding the save file")

func defaultGameDir() string {
	if dir := os.Getenv("VENTURE_DIR"); dir != "" {
		return dir
	}
	return "."
}

// GameDir returns the directory holding the save file.
func GameDir() string { return *gameDir }

// LoadGame loads the current session, or a fresh one if none is saved yet.
func LoadGame() (*venture.BusinessState, error) {
	state, err := venture.LoadGame(GameDir())
	if err != nil {
		return nil, fmt.Errorf("could not load the game: %w", err)
	}
	return state, nil
}
