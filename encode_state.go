package venture

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// savedState is the serialized shape of a BusinessState. Cash is written for
// the benefit of anyone reading the file but ignored on decode: the ledger is
// the only source of truth for it.
type savedState struct {
	Week                   int            `json:"week"`
	InventoryKg            Quantity       `json:"inventory_kg"`
	Machines               []Machine      `json:"machines"`
	CustomersFirstRunQueue []int          `json:"customers_first_run_queue"`
	ActiveRepeatCustomers  int            `json:"active_repeat_customers"`
	HasShopify             bool           `json:"has_shopify"`
	MonthlyCosts           Money          `json:"monthly_costs"`
	Ledger                 []JournalEntry `json:"ledger"`
	TurnHistory            []TurnOutcome  `json:"turn_history"`
	IsLoading              bool           `json:"is_loading"`
	GameOver               bool           `json:"game_over"`
}

// EncodeState writes the serializable subset of the state as one JSON
// document. The transient loading flag is always written as false, and the
// derived cash figure is included up front for readability.
func EncodeState(w io.Writer, s *BusinessState) error {
	entries := make([]JournalEntry, 0, s.Ledger.Len())
	for _, e := range s.Ledger.Entries() {
		entries = append(entries, e)
	}

	var jw jsonObjectWriter
	jw.Append("week", s.Week).
		Append("cash", s.Cash()). // derived, informational only
		Append("inventory_kg", s.InventoryKg).
		Append("machines", s.Machines).
		Append("customers_first_run_queue", s.CustomersFirstRunQueue).
		Append("active_repeat_customers", s.ActiveRepeatCustomers).
		Append("has_shopify", s.HasShopify).
		Append("monthly_costs", s.MonthlyCosts).
		Append("ledger", entries).
		Append("turn_history", s.TurnHistory).
		Append("is_loading", false).
		Append("game_over", s.GameOver)

	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode state: %w", err)
	}
	var pretty json.RawMessage = data
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode state: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// DecodeState reads a state previously written by EncodeState. Whatever the
// file says, the decoded state is never loading, and its cash is whatever the
// decoded ledger folds to.
func DecodeState(r io.Reader) (*BusinessState, error) {
	var saved savedState
	dec := json.NewDecoder(r)
	if err := dec.Decode(&saved); err != nil {
		return nil, fmt.Errorf("could not decode state: %w", err)
	}

	s := NewBusinessState()
	s.Ledger.Append(saved.Ledger...)
	s.Week = saved.Week
	s.InventoryKg = saved.InventoryKg
	s.Machines = append(s.Machines, saved.Machines...)
	s.CustomersFirstRunQueue = append(s.CustomersFirstRunQueue, saved.CustomersFirstRunQueue...)
	s.ActiveRepeatCustomers = saved.ActiveRepeatCustomers
	s.HasShopify = saved.HasShopify
	s.MonthlyCosts = saved.MonthlyCosts
	s.TurnHistory = append(s.TurnHistory, saved.TurnHistory...)
	s.IsLoading = false
	s.GameOver = saved.GameOver
	return s, nil
}
