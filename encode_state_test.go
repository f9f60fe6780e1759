package venture

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestEncodeDecodeState_RoundTrip(t *testing.T) {
	s := NewBusinessState()
	s.ApplyEntries(scriptedEntries()...)
	s.Week = 5
	s.InventoryKg = Q(7.5)
	s.Machines = []Machine{{Name: "drum roaster", MonthlyMaintenance: M(25)}}
	s.CustomersFirstRunQueue = []int{3, 5}
	s.ActiveRepeatCustomers = 11
	s.HasShopify = true
	s.MonthlyCosts = M(640)
	s.TurnHistory = []TurnOutcome{*validOutcome()}

	var buf bytes.Buffer
	if err := EncodeState(&buf, s); err != nil {
		t.Fatalf("EncodeState() error = %v", err)
	}

	decoded, err := DecodeState(&buf)
	if err != nil {
		t.Fatalf("DecodeState() error = %v", err)
	}

	if decoded.Week != s.Week {
		t.Errorf("week = %d, want %d", decoded.Week, s.Week)
	}
	if !decoded.Cash().Equal(s.Cash()) {
		t.Errorf("cash = %s, want %s", decoded.Cash().Decimal(), s.Cash().Decimal())
	}
	if decoded.Ledger.Len() != s.Ledger.Len() {
		t.Errorf("ledger has %d entries, want %d", decoded.Ledger.Len(), s.Ledger.Len())
	}
	if !decoded.InventoryKg.Equal(s.InventoryKg) {
		t.Errorf("inventory = %s, want %s", decoded.InventoryKg, s.InventoryKg)
	}
	if len(decoded.Machines) != 1 || decoded.Machines[0].Name != "drum roaster" {
		t.Errorf("machines = %+v", decoded.Machines)
	}
	if len(decoded.CustomersFirstRunQueue) != 2 || decoded.ActiveRepeatCustomers != 11 {
		t.Errorf("customers = %v / %d", decoded.CustomersFirstRunQueue, decoded.ActiveRepeatCustomers)
	}
	if !decoded.HasShopify || !decoded.MonthlyCosts.Equal(M(640)) {
		t.Errorf("shopify=%v monthly=%s", decoded.HasShopify, decoded.MonthlyCosts)
	}
	if len(decoded.TurnHistory) != 1 || decoded.TurnHistory[0].NarrativeOutcome != s.TurnHistory[0].NarrativeOutcome {
		t.Errorf("history = %+v", decoded.TurnHistory)
	}
}

func TestEncodeState_ForcesLoadingOff(t *testing.T) {
	s := NewBusinessState()
	s.IsLoading = true

	var buf bytes.Buffer
	if err := EncodeState(&buf, s); err != nil {
		t.Fatalf("EncodeState() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("save file is not valid JSON: %v", err)
	}
	if loading, ok := raw["is_loading"].(bool); !ok || loading {
		t.Errorf("is_loading = %v in the save file, want false", raw["is_loading"])
	}
}

func TestDecodeState_ForcesLoadingOff(t *testing.T) {
	// A save claiming to be mid-turn, as an older or interrupted writer might
	// have produced.
	src := `{"week": 2, "is_loading": true, "ledger": [
		{"debit_account": "Cash", "credit_account": "Owner's Equity", "amount": 1000, "description": "funding"}
	]}`

	s, err := DecodeState(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeState() error = %v", err)
	}
	if s.IsLoading {
		t.Error("decoded state is loading")
	}
	if !s.Cash().Equal(M(1000)) {
		t.Errorf("cash = %s, want 1000", s.Cash().Decimal())
	}
}

func TestDecodeState_IgnoresStoredCash(t *testing.T) {
	// The file's cash figure is informational; the ledger wins.
	src := `{"week": 1, "cash": 999999, "ledger": [
		{"debit_account": "Cash", "credit_account": "Owner's Equity", "amount": 50, "description": "funding"}
	]}`

	s, err := DecodeState(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeState() error = %v", err)
	}
	if !s.Cash().Equal(M(50)) {
		t.Errorf("cash = %s, want the ledger-derived 50", s.Cash().Decimal())
	}
}

func TestLoadGame_MissingSaveIsFreshState(t *testing.T) {
	dir := t.TempDir()
	s, err := LoadGame(dir)
	if err != nil {
		t.Fatalf("LoadGame() error = %v", err)
	}
	if s.Week != 0 || s.Ledger.Len() != 0 {
		t.Error("missing save should load as a fresh state")
	}

	s.ApplyEntries(entry(Cash, OwnersEquity, 1000, "funding"))
	if err := SaveGame(dir, s); err != nil {
		t.Fatalf("SaveGame() error = %v", err)
	}

	again, err := LoadGame(dir)
	if err != nil {
		t.Fatalf("LoadGame() after save error = %v", err)
	}
	if !again.Cash().Equal(M(1000)) {
		t.Errorf("reloaded cash = %s, want 1000", again.Cash().Decimal())
	}
}
