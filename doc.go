// Package venture implements the accounting core of a turn-based business
// simulation. A player runs a small coffee-roasting venture week by week; each
// turn, an AI narrator proposes what happened and how it hits the books, and
// this package is in charge of keeping those books honest.
//
// The core functionalities include:
//   - Double-Entry Ledger: an immutable, append-only journal of debit/credit
//     postings against a closed chart of accounts. Every derived figure (cash,
//     account balances, statements) is recomputed from the journal, never
//     stored alongside it.
//   - Chart-of-Accounts Validation: proposed journal entries coming from the
//     narrator are untrusted input; they are checked against the closed account
//     vocabulary and for positive amounts before a single one is applied.
//   - Financial Statements: pure derivations of the Income Statement, Balance
//     Sheet and indirect-method Cash-Flow Statement from the ledger.
//   - Turn Orchestration: a small state machine that takes the player's chosen
//     action, asks the narrator for a turn outcome, validates it, commits it
//     atomically (ledger, operational counters, turn history) and persists the
//     result.
//
// This package serves as the foundational logic for the `vent` command-line
// tool, ensuring that no matter what the narrator produces, total debits
// always equal total credits.
package venture
