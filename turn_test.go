package venture

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// stubGenerator returns a canned outcome or error.
type stubGenerator struct {
	outcome *TurnOutcome
	err     error
	calls   int
}

func (g *stubGenerator) GenerateTurn(_ context.Context, _ *BusinessState, _ string) (*TurnOutcome, error) {
	g.calls++
	return g.outcome, g.err
}

// gateGenerator blocks inside GenerateTurn until released, to exercise the
// loading state and cancellation.
type gateGenerator struct {
	entered chan struct{}
	release chan struct{}
	outcome *TurnOutcome
}

func newGateGenerator(outcome *TurnOutcome) *gateGenerator {
	return &gateGenerator{
		entered: make(chan struct{}),
		release: make(chan struct{}),
		outcome: outcome,
	}
}

func (g *gateGenerator) GenerateTurn(_ context.Context, _ *BusinessState, _ string) (*TurnOutcome, error) {
	close(g.entered)
	<-g.release
	return g.outcome, nil
}

func validOutcome() *TurnOutcome {
	return &TurnOutcome{
		NarrativeOutcome: "You set up a stall at the Saturday market.",
		MentorFeedback:   "Good start. Watch your rent.",
		JournalEntries: []JournalEntry{
			entry(Cash, OwnersEquity, 1000, "owner's contribution"),
			entry(Rent, Cash, 200, "market stall rent"),
		},
		OpsUpdates:  OpsUpdates{FirstRunCustomers: 5},
		NextOptions: []NextOption{{Label: "Buy more beans"}, {Label: "Print flyers"}},
	}
}

func TestOrchestrator_SuccessfulTurn(t *testing.T) {
	gen := &stubGenerator{outcome: validOutcome()}
	o := NewOrchestrator(gen)

	outcome, err := o.Submit(context.Background(), StartAction)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if outcome == nil {
		t.Fatal("Submit() returned nil outcome")
	}

	state := o.State()
	if state.Week != 1 {
		t.Errorf("week = %d, want 1", state.Week)
	}
	if state.Ledger.Len() != 2 {
		t.Errorf("ledger has %d entries, want 2", state.Ledger.Len())
	}
	if !state.Cash().Equal(M(800)) {
		t.Errorf("cash = %s, want 800", state.Cash().Decimal())
	}
	if len(state.TurnHistory) != 1 {
		t.Errorf("history has %d outcomes, want 1", len(state.TurnHistory))
	}
	if state.IsLoading {
		t.Error("state still loading after a finished turn")
	}
	if o.LastError() != nil {
		t.Errorf("LastError() = %v after success, want nil", o.LastError())
	}
}

func TestOrchestrator_RejectsInvalidProposal(t *testing.T) {
	bad := validOutcome()
	bad.JournalEntries = append(bad.JournalEntries, entry("Magic Dust", Cash, 50, "sparkle"))
	o := NewOrchestrator(&stubGenerator{outcome: bad})

	before := o.State()
	_, err := o.Submit(context.Background(), StartAction)
	if !errors.Is(err, ErrUnknownAccount) {
		t.Fatalf("Submit() error = %v, want ErrUnknownAccount", err)
	}

	after := o.State()
	if after.Week != before.Week || after.Ledger.Len() != before.Ledger.Len() || len(after.TurnHistory) != 0 {
		t.Error("a rejected proposal mutated the state")
	}
	if !after.Cash().Equal(before.Cash()) {
		t.Error("a rejected proposal changed cash")
	}
	if after.IsLoading {
		t.Error("state stuck loading after a rejected proposal")
	}
	if o.LastError() == nil {
		t.Error("LastError() is nil after a rejected proposal")
	}
}

func TestOrchestrator_GeneratorFailure(t *testing.T) {
	o := NewOrchestrator(&stubGenerator{err: fmt.Errorf("connection reset")})

	_, err := o.Submit(context.Background(), StartAction)
	if err == nil {
		t.Fatal("Submit() = nil error, want transport failure")
	}
	state := o.State()
	if state.Ledger.Len() != 0 || state.Week != 0 || state.IsLoading {
		t.Error("a failed generator call mutated the state")
	}
}

func TestOrchestrator_MissingJournalEntries(t *testing.T) {
	bad := validOutcome()
	bad.JournalEntries = nil
	o := NewOrchestrator(&stubGenerator{outcome: bad})

	_, err := o.Submit(context.Background(), StartAction)
	if !errors.Is(err, ErrMalformedProposal) {
		t.Fatalf("Submit() error = %v, want ErrMalformedProposal", err)
	}
	if o.State().Ledger.Len() != 0 {
		t.Error("a malformed proposal mutated the ledger")
	}
}

func TestOrchestrator_EmptyJournalEntriesAreAllowed(t *testing.T) {
	quiet := validOutcome()
	quiet.JournalEntries = []JournalEntry{}
	o := NewOrchestrator(&stubGenerator{outcome: quiet})

	if _, err := o.Submit(context.Background(), StartAction); err != nil {
		t.Fatalf("Submit() error = %v, want nil for a purely narrative turn", err)
	}
	if got := o.State().Week; got != 1 {
		t.Errorf("week = %d, want 1", got)
	}
}

func TestOrchestrator_RefusesSecondTurnInFlight(t *testing.T) {
	gen := newGateGenerator(validOutcome())
	o := NewOrchestrator(gen)

	done := make(chan error, 1)
	go func() {
		_, err := o.Submit(context.Background(), StartAction)
		done <- err
	}()
	<-gen.entered

	if _, err := o.Submit(context.Background(), "impatient"); !errors.Is(err, ErrTurnInFlight) {
		t.Errorf("second Submit() error = %v, want ErrTurnInFlight", err)
	}

	close(gen.release)
	if err := <-done; err != nil {
		t.Errorf("first Submit() error = %v", err)
	}
}

func TestOrchestrator_CancelDropsLateResponse(t *testing.T) {
	gen := newGateGenerator(validOutcome())
	o := NewOrchestrator(gen)

	done := make(chan error, 1)
	go func() {
		_, err := o.Submit(context.Background(), StartAction)
		done <- err
	}()
	<-gen.entered

	o.Cancel()
	if o.IsLoading() {
		t.Error("still loading after Cancel")
	}

	// The generator answers after the cancel; the response must be dropped.
	close(gen.release)
	if err := <-done; !errors.Is(err, ErrStaleTurn) {
		t.Errorf("Submit() after cancel = %v, want ErrStaleTurn", err)
	}
	state := o.State()
	if state.Ledger.Len() != 0 || len(state.TurnHistory) != 0 {
		t.Error("a cancelled turn was applied anyway")
	}
}

func TestOrchestrator_CancelWhenIdleIsANoOp(t *testing.T) {
	o := NewOrchestrator(&stubGenerator{outcome: validOutcome()})
	o.Cancel()

	if _, err := o.Submit(context.Background(), StartAction); err != nil {
		t.Errorf("Submit() after idle Cancel = %v", err)
	}
}

func TestOrchestrator_GameOverBlocksSubmissions(t *testing.T) {
	broke := &TurnOutcome{
		NarrativeOutcome: "The roaster breaks down and the repair drains the till.",
		JournalEntries: []JournalEntry{
			entry(Cash, OwnersEquity, 100, "seed"),
			entry(Maintenance, Cash, 500, "emergency repair"),
		},
	}
	gen := &stubGenerator{outcome: broke}
	o := NewOrchestrator(gen)

	// Two turns to get past the grace period week.
	if _, err := o.Submit(context.Background(), StartAction); err != nil {
		t.Fatalf("turn 1: %v", err)
	}
	if _, err := o.Submit(context.Background(), "push on"); err != nil {
		t.Fatalf("turn 2: %v", err)
	}
	if !o.State().GameOver {
		t.Fatalf("expected bankruptcy, cash = %s", o.State().Cash().Decimal())
	}

	calls := gen.calls
	if _, err := o.Submit(context.Background(), "one more"); !errors.Is(err, ErrGameOver) {
		t.Errorf("Submit() after game over = %v, want ErrGameOver", err)
	}
	if gen.calls != calls {
		t.Error("generator was called after game over")
	}

	o.Reset()
	if o.State().GameOver {
		t.Error("reset did not clear game over")
	}
	if _, err := o.Submit(context.Background(), StartAction); err != nil {
		t.Errorf("Submit() after reset = %v", err)
	}
}

func TestOrchestrator_LoadStateForcesIdle(t *testing.T) {
	saved := NewBusinessState()
	saved.ApplyEntries(entry(Cash, OwnersEquity, 1000, "funding"))
	saved.Week = 4
	saved.IsLoading = true // a save written mid-turn must not resume stuck

	o := NewOrchestrator(&stubGenerator{outcome: validOutcome()})
	o.LoadState(saved)

	state := o.State()
	if state.IsLoading {
		t.Error("loaded state is still loading")
	}
	if state.Week != 4 || !state.Cash().Equal(M(1000)) {
		t.Errorf("loaded state week=%d cash=%s, want 4 and 1000", state.Week, state.Cash().Decimal())
	}
	if state.Machines == nil || state.TurnHistory == nil {
		t.Error("load did not backfill zero-value collections")
	}
}

func TestOrchestrator_LoadStateNil(t *testing.T) {
	o := NewOrchestrator(&stubGenerator{outcome: validOutcome()})
	o.LoadState(nil)
	state := o.State()
	if state.Week != 0 || state.Ledger.Len() != 0 || state.IsLoading {
		t.Error("loading a nil save should yield the zero state")
	}
}

func TestOrchestrator_OnCommitFiresAfterSuccess(t *testing.T) {
	var commits int
	o := NewOrchestrator(&stubGenerator{outcome: validOutcome()})
	o.OnCommit = func(s *BusinessState) error {
		commits++
		if s.IsLoading {
			t.Error("committed snapshot is marked loading")
		}
		return nil
	}

	if _, err := o.Submit(context.Background(), StartAction); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if commits != 1 {
		t.Errorf("OnCommit fired %d times, want 1", commits)
	}

	// A failed turn must not persist anything.
	o2 := NewOrchestrator(&stubGenerator{err: fmt.Errorf("boom")})
	o2.OnCommit = func(*BusinessState) error { t.Error("OnCommit fired for a failed turn"); return nil }
	o2.Submit(context.Background(), StartAction)
}
