package venture

import "iter"

// JournalEntry is one atomic double-entry posting: it debits exactly one
// account and credits exactly one account for the same amount. Entries are
// immutable once appended to a Ledger; corrections are made with new entries,
// never edits.
type JournalEntry struct {
	Debit       Account `json:"debit_account"`
	Credit      Account `json:"credit_account"`
	Amount      Money   `json:"amount"`
	Description string  `json:"description"`
}

// Ledger is the append-only, ordered journal of all postings. It is the sole
// source of truth: cash, account balances and the financial statements are all
// folds over this sequence and are never stored independently.
//
// Because every entry moves the same amount on both sides, the accounting
// identity (TotalDebits == TotalCredits) holds entry by entry, not just in
// aggregate.
type Ledger struct {
	entries []JournalEntry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make([]JournalEntry, 0)}
}

// Append appends entries to the journal, preserving their order.
//
// Append performs no validation: callers must run the batch through
// ValidateEntries first. Keeping validation and application as two separate
// stages is what guarantees a malformed batch is rejected whole.
func (l *Ledger) Append(entries ...JournalEntry) {
	l.entries = append(l.entries, entries...)
}

// Len returns the number of entries in the journal.
func (l *Ledger) Len() int { return len(l.entries) }

// Entries returns an iterator over the journal in posting order.
func (l *Ledger) Entries() iter.Seq2[int, JournalEntry] {
	return func(yield func(int, JournalEntry) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// AccountBalance folds the journal once and returns the account's balance in
// natural units: +amount for each entry debiting the account, -amount for each
// entry crediting it. Credit-normal accounts therefore come out negative when
// they carry their conventional balance; statement derivations flip the sign
// for display.
func (l *Ledger) AccountBalance(account Account) Money {
	var balance Money
	for _, e := range l.entries {
		if e.Debit == account {
			balance = balance.Add(e.Amount)
		}
		if e.Credit == account {
			balance = balance.Sub(e.Amount)
		}
	}
	return balance
}

// CashBalance returns the ledger-derived balance of the Cash account. This is
// the only cash figure in the system; nothing ever stores cash separately.
func (l *Ledger) CashBalance() Money {
	return l.AccountBalance(Cash)
}

// TotalDebits sums the amount of every entry on its debit side.
func (l *Ledger) TotalDebits() Money {
	var total Money
	for _, e := range l.entries {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalCredits sums the amount of every entry on its credit side.
func (l *Ledger) TotalCredits() Money {
	var total Money
	for _, e := range l.entries {
		total = total.Add(e.Amount)
	}
	return total
}

// Prefix returns a new ledger holding the first n entries. It is mostly useful
// to check that derived statements stay consistent at every point of the
// history, not just at its end.
func (l *Ledger) Prefix(n int) *Ledger {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	p := NewLedger()
	p.Append(l.entries[:n]...)
	return p
}

// Clone returns an independent copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	c := NewLedger()
	c.Append(l.entries...)
	return c
}
