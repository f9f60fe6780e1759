package agent

import (
	"errors"
	"testing"

	"github.com/jmorel/venture"
)

const cleanProposal = `{
	"narrative_outcome": "You rent a stall at the Saturday market.",
	"mentor_feedback": "Cash first, coffee second.",
	"journal_entries": [
		{"debit_account": "Cash", "credit_account": "Owner's Equity", "amount": 1000, "description": "owner's contribution"},
		{"debit_account": "Rent", "credit_account": "Cash", "amount": 200, "description": "stall rent"}
	],
	"ops_updates": {"first_run_customers": 5},
	"next_options": [{"label": "Buy beans"}, {"label": "Print flyers", "hint": "cheap marketing"}]
}`

func TestDecodeProposal(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		wantErr     error
		wantEntries int
	}{
		{
			name:        "clean JSON",
			raw:         cleanProposal,
			wantEntries: 2,
		},
		{
			name:        "fenced JSON",
			raw:         "```json\n" + cleanProposal + "\n```",
			wantEntries: 2,
		},
		{
			name:        "wrapped in a proposal object",
			raw:         `{"proposal": ` + cleanProposal + `}`,
			wantEntries: 2,
		},
		{
			name:        "wrapped in a one-element array",
			raw:         `[` + cleanProposal + `]`,
			wantEntries: 2,
		},
		{
			name: "empty journal entries are a narrative week",
			raw: `{"narrative_outcome": "Nothing sells.", "mentor_feedback": "Rough.",
				"journal_entries": [], "next_options": [{"label": "Push on"}]}`,
			wantEntries: 0,
		},
		{
			name:    "missing journal entries",
			raw:     `{"narrative_outcome": "x", "mentor_feedback": "y", "next_options": []}`,
			wantErr: venture.ErrMalformedProposal,
		},
		{
			name:    "not JSON at all",
			raw:     "Sorry, I cannot help with that.",
			wantErr: venture.ErrMalformedProposal,
		},
		{
			name:    "journal entries of the wrong type",
			raw:     `{"narrative_outcome": "x", "journal_entries": "lots of them"}`,
			wantErr: venture.ErrMalformedProposal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			outcome, err := decodeProposal([]byte(tc.raw))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("decodeProposal() error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeProposal() error = %v", err)
			}
			if len(outcome.JournalEntries) != tc.wantEntries {
				t.Errorf("got %d journal entries, want %d", len(outcome.JournalEntries), tc.wantEntries)
			}
			if outcome.NarrativeOutcome == "" {
				t.Error("narrative lost in decoding")
			}
		})
	}
}

func TestDecodeProposal_EntriesStillUntrusted(t *testing.T) {
	// Decoding must not validate accounting; that is the orchestrator's job.
	raw := `{"narrative_outcome": "x", "mentor_feedback": "y",
		"journal_entries": [{"debit_account": "Magic Dust", "credit_account": "Cash", "amount": 50, "description": "sparkle"}],
		"next_options": []}`

	outcome, err := decodeProposal([]byte(raw))
	if err != nil {
		t.Fatalf("decodeProposal() error = %v", err)
	}
	if err := venture.ValidateEntries(outcome.JournalEntries); !errors.Is(err, venture.ErrUnknownAccount) {
		t.Errorf("ValidateEntries() = %v, want ErrUnknownAccount", err)
	}
}
