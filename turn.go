package venture

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// StartAction is the sentinel action for the opening turn of a session.
const StartAction = "start"

// NextOption is one action the player may pick for the following turn.
type NextOption struct {
	Label string `json:"label"`
	Hint  string `json:"hint,omitempty"`
}

// TurnOutcome is one accepted turn: the narration, the postings that back it,
// the operational deltas and the options offered next. Accepted outcomes are
// appended to the turn history, a second append-only log layered over the
// journal.
type TurnOutcome struct {
	NarrativeOutcome string         `json:"narrative_outcome"`
	MentorFeedback   string         `json:"mentor_feedback"`
	JournalEntries   []JournalEntry `json:"journal_entries"`
	OpsUpdates       OpsUpdates     `json:"ops_updates"`
	NextOptions      []NextOption   `json:"next_options"`
}

// TurnGenerator produces a turn outcome for the given state and player action.
// Implementations are treated as adversarial: whatever they return is
// re-validated before any of it touches the ledger.
//
// The agent package provides the Gemini-backed implementation.
type TurnGenerator interface {
	GenerateTurn(ctx context.Context, state *BusinessState, action string) (*TurnOutcome, error)
}

// Orchestrator is the turn state machine. It is either idle or has exactly
// one generator call in flight; a second Submit while loading is refused
// rather than queued.
//
// Every Submit, Cancel and Reset advances a generation counter. A generator
// response is only committed if the generation it was issued under is still
// current, so a response arriving after a cancel or reset is dropped instead
// of silently corrupting a now-different state.
type Orchestrator struct {
	mu         sync.Mutex
	state      *BusinessState
	generator  TurnGenerator
	generation uint64
	lastErr    error

	// OnCommit, when set, is called with a snapshot of the state after each
	// successful turn, reset or load. Persistence hooks in here; failures are
	// logged and otherwise ignored (fire-and-forget).
	OnCommit func(*BusinessState) error
}

// NewOrchestrator creates an idle orchestrator over a fresh state.
func NewOrchestrator(generator TurnGenerator) *Orchestrator {
	return &Orchestrator{
		state:     NewBusinessState(),
		generator: generator,
	}
}

// State returns a snapshot of the current business state.
func (o *Orchestrator) State() *BusinessState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.Clone()
}

// IsLoading reports whether a turn is in flight.
func (o *Orchestrator) IsLoading() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.IsLoading
}

// LastError returns the error surfaced by the most recent failed turn, or nil
// after a successful turn, reset or load. It mirrors the error banner a front
// end would show until the next successful turn.
func (o *Orchestrator) LastError() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastErr
}

// Submit plays one turn: it asks the generator for an outcome of the given
// action, validates the proposed journal entries against the chart of
// accounts, and commits ledger, operational counters and history atomically.
//
// On any failure (transport, malformed proposal, validation) nothing is
// mutated, the error is recorded for LastError and returned. Submit blocks
// until the generator answers or ctx is done; the core imposes no timeout of
// its own, callers bound the wait through ctx.
func (o *Orchestrator) Submit(ctx context.Context, action string) (*TurnOutcome, error) {
	o.mu.Lock()
	if o.state.GameOver {
		o.mu.Unlock()
		return nil, ErrGameOver
	}
	if o.state.IsLoading {
		o.mu.Unlock()
		return nil, ErrTurnInFlight
	}
	o.state.IsLoading = true
	o.generation++
	generation := o.generation
	snapshot := o.state.Clone()
	o.mu.Unlock()

	outcome, err := o.generator.GenerateTurn(ctx, snapshot, action)

	o.mu.Lock()
	defer o.mu.Unlock()

	if generation != o.generation {
		// Cancelled or superseded while we were waiting. The state machine
		// already moved on; whatever came back must not be applied.
		log.Printf("turn %d: dropping stale response", generation)
		return nil, ErrStaleTurn
	}
	o.state.IsLoading = false

	if err != nil {
		o.lastErr = fmt.Errorf("the narrator did not answer: %w", err)
		return nil, o.lastErr
	}
	if outcome == nil || outcome.JournalEntries == nil {
		o.lastErr = fmt.Errorf("%w: missing journal entries", ErrMalformedProposal)
		return nil, o.lastErr
	}
	if err := ValidateEntries(outcome.JournalEntries); err != nil {
		o.lastErr = fmt.Errorf("rejected proposal: %w", err)
		return nil, o.lastErr
	}

	o.state.applyTurn(*outcome)
	o.lastErr = nil
	o.commit()
	return outcome, nil
}

// Cancel forces an in-flight turn back to idle. The cancellation is
// best-effort towards the underlying call: the generator may still answer
// later, but the generation bump guarantees that answer is dropped.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.state.IsLoading {
		return
	}
	o.state.IsLoading = false
	o.generation++
}

// Reset reinitializes the session to its zero state unconditionally. Callers
// are expected to gate this behind a user confirmation.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = NewBusinessState()
	o.generation++
	o.lastErr = nil
	o.commit()
}

// LoadState resumes a persisted session. The saved state is merged over the
// zero value, so fields added after the save was written keep their defaults,
// and IsLoading is forced off: a session never resumes stuck in loading.
func (o *Orchestrator) LoadState(saved *BusinessState) {
	o.mu.Lock()
	defer o.mu.Unlock()

	state := NewBusinessState()
	if saved != nil {
		if saved.Ledger != nil {
			state.Ledger = saved.Ledger.Clone()
		}
		state.Week = saved.Week
		state.InventoryKg = saved.InventoryKg
		state.Machines = append(state.Machines, saved.Machines...)
		state.CustomersFirstRunQueue = append(state.CustomersFirstRunQueue, saved.CustomersFirstRunQueue...)
		state.ActiveRepeatCustomers = saved.ActiveRepeatCustomers
		state.HasShopify = saved.HasShopify
		state.MonthlyCosts = saved.MonthlyCosts
		state.TurnHistory = append(state.TurnHistory, saved.TurnHistory...)
		state.GameOver = saved.GameOver
	}
	state.IsLoading = false

	o.state = state
	o.generation++
	o.lastErr = nil
}

// commit runs the persistence hook with a snapshot. Must be called with the
// lock held.
func (o *Orchestrator) commit() {
	if o.OnCommit == nil {
		return
	}
	if err := o.OnCommit(o.state.Clone()); err != nil {
		log.Printf("could not persist state: %v", err)
	}
}
