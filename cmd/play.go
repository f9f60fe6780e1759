package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/jmorel/venture"
	"github.com/jmorel/venture/agent"
	"github.com/jmorel/venture/renderer"
	"google.golang.org/genai"
)

type playCmd struct {
	timeout time.Duration
}

func (*playCmd) Name() string     { return "play" }
func (*playCmd) Synopsis() string { return "start or resume an interactive session" }
func (*playCmd) Usage() string {
	return `play [-timeout <duration>]

  Start or resume the venture. Each turn is one week: pick one of the offered
  options (by number) or type a free-form action. Type 'quit' to leave; the
  game is saved after every accepted turn.

  Requires GEMINI_API_KEY to be set.
`
}

func (c *playCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.timeout, "timeout", 90*time.Second, "How long to wait for the narrator each turn")
}

func (c *playCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	saved, err := LoadGame()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating the narrator client: %v\n", err)
		return subcommands.ExitFailure
	}

	o := venture.NewOrchestrator(agent.New(client))
	o.OnCommit = func(s *venture.BusinessState) error {
		return venture.SaveGame(GameDir(), s)
	}
	o.LoadState(saved)

	return c.run(ctx, o, bufio.NewReader(os.Stdin))
}

// run is the interactive turn loop.
func (c *playCmd) run(ctx context.Context, o *venture.Orchestrator, in *bufio.Reader) subcommands.ExitStatus {
	state := o.State()
	if len(state.TurnHistory) == 0 {
		fmt.Println("A new venture. Asking the narrator to set the scene...")
		if status := c.playTurn(ctx, o, venture.StartAction); status != subcommands.ExitSuccess {
			return status
		}
	} else {
		last := state.TurnHistory[len(state.TurnHistory)-1]
		printMarkdown(renderer.TurnMarkdown(state.Week, state.Cash(), last))
	}

	for {
		state = o.State()
		if state.GameOver {
			fmt.Println("The venture is bankrupt. Run 'vent reset' to start over.")
			return subcommands.ExitSuccess
		}

		fmt.Print("venture> ")
		line, err := in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return subcommands.ExitSuccess
			}
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		action := strings.TrimSpace(line)
		switch action {
		case "":
			continue
		case "quit", "bye":
			return subcommands.ExitSuccess
		}

		// A bare number picks one of the offered options.
		if n, err := strconv.Atoi(action); err == nil {
			options := lastOptions(state)
			if n < 1 || n > len(options) {
				fmt.Printf("Pick an option between 1 and %d, or type an action.\n", len(options))
				continue
			}
			action = options[n-1].Label
		}

		if status := c.playTurn(ctx, o, action); status != subcommands.ExitSuccess {
			return status
		}
	}
}

// playTurn submits one action and renders the result.
func (c *playCmd) playTurn(ctx context.Context, o *venture.Orchestrator, action string) subcommands.ExitStatus {
	turnCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	outcome, err := o.Submit(turnCtx, action)
	if err != nil {
		if errors.Is(err, venture.ErrGameOver) {
			return subcommands.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Turn failed: %v\nThe books are untouched; try again.\n", err)
		return subcommands.ExitSuccess
	}

	state := o.State()
	printMarkdown(renderer.TurnMarkdown(state.Week, state.Cash(), *outcome))
	return subcommands.ExitSuccess
}

func lastOptions(state *venture.BusinessState) []venture.NextOption {
	if len(state.TurnHistory) == 0 {
		return nil
	}
	return state.TurnHistory[len(state.TurnHistory)-1].NextOptions
}
