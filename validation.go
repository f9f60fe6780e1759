package venture

import (
	"errors"
	"fmt"
)

// Sentinel errors for entry validation and turn processing, for use with
// errors.Is.
var (
	// ErrUnknownAccount is returned when an entry references an account
	// outside the closed chart of accounts.
	ErrUnknownAccount = errors.New("unknown account")

	// ErrNegativeAmount is returned when an entry carries a negative amount.
	// Direction is expressed by the debit/credit sides, never by the sign.
	ErrNegativeAmount = errors.New("negative amount")

	// ErrZeroAmount is returned when an entry carries a zero amount. A posting
	// that moves nothing records nothing; it has no place in the journal.
	ErrZeroAmount = errors.New("zero amount")

	// ErrMalformedProposal is returned when the narrator's proposal is missing
	// its journal entries or otherwise does not match the expected shape.
	ErrMalformedProposal = errors.New("malformed proposal")

	// ErrTurnInFlight is returned by Submit while another turn is loading.
	ErrTurnInFlight = errors.New("a turn is already in flight")

	// ErrStaleTurn is returned when a narrator response arrives for a turn
	// that was cancelled or superseded; the response is dropped unapplied.
	ErrStaleTurn = errors.New("stale turn response dropped")

	// ErrGameOver is returned by Submit once the venture is bankrupt.
	ErrGameOver = errors.New("the venture is bankrupt")
)

// ValidateEntries checks a batch of proposed journal entries against the chart
// of accounts. It returns nil if every entry is acceptable, or the first
// violation found, in entry order: unknown debit account, unknown credit
// account, then a non-positive amount.
//
// A single violation rejects the whole batch; callers must not apply any entry
// of a batch that failed validation.
func ValidateEntries(entries []JournalEntry) error {
	for i, e := range entries {
		if !e.Debit.Known() {
			return fmt.Errorf("entry %d (%s): %w %q used as debit", i, e.Description, ErrUnknownAccount, e.Debit)
		}
		if !e.Credit.Known() {
			return fmt.Errorf("entry %d (%s): %w %q used as credit", i, e.Description, ErrUnknownAccount, e.Credit)
		}
		if e.Amount.IsNegative() {
			return fmt.Errorf("entry %d (%s): %w %s", i, e.Description, ErrNegativeAmount, e.Amount.Decimal())
		}
		if e.Amount.IsZero() {
			return fmt.Errorf("entry %d (%s): %w", i, e.Description, ErrZeroAmount)
		}
	}
	return nil
}
