package venture

// Machine is a piece of roasting equipment the venture operates. Its purchase
// is recorded in the ledger (Equipment account); the struct only carries the
// operational attributes the narrator plays with.
type Machine struct {
	Name               string `json:"name"`
	MonthlyMaintenance Money  `json:"monthly_maintenance"`
}

// OpsUpdates carries the non-monetary operational deltas of one turn outcome.
// Pointer fields overwrite the current value when present; the remaining
// fields are additive.
type OpsUpdates struct {
	InventoryKg           *Quantity `json:"inventory_kg,omitempty"`
	MachinesAdded         []Machine `json:"machines_added,omitempty"`
	FirstRunCustomers     int       `json:"first_run_customers,omitempty"`
	ActiveRepeatCustomers *int      `json:"active_repeat_customers,omitempty"`
	HasShopify            *bool     `json:"has_shopify,omitempty"`
	MonthlyCosts          *Money    `json:"monthly_costs,omitempty"`
}

// BusinessState is the full state of one venture session: the ledger plus the
// operational counters the narrator steers. Cash deliberately has no field
// here; it is always the ledger's Cash balance, so the figure shown to the
// player can never drift from the books.
//
// BusinessState is mutated exclusively by the Orchestrator, one validated turn
// at a time; a turn either fully commits or leaves the state untouched.
type BusinessState struct {
	Ledger *Ledger

	Week                   int
	InventoryKg            Quantity
	Machines               []Machine
	CustomersFirstRunQueue []int // upcoming first-time customers, one batch per week
	ActiveRepeatCustomers  int
	HasShopify             bool
	MonthlyCosts           Money

	TurnHistory []TurnOutcome

	IsLoading bool
	GameOver  bool
}

// NewBusinessState creates the zero state of a fresh session: empty ledger,
// week 0, no history.
func NewBusinessState() *BusinessState {
	return &BusinessState{
		Ledger:                 NewLedger(),
		Machines:               make([]Machine, 0),
		CustomersFirstRunQueue: make([]int, 0),
		TurnHistory:            make([]TurnOutcome, 0),
	}
}

// Cash returns the venture's cash, recomputed from the ledger.
func (s *BusinessState) Cash() Money {
	return s.Ledger.CashBalance()
}

// ApplyEntries appends already-validated entries to the ledger and refreshes
// the bankruptcy flag: past the first week, negative cash ends the game.
//
// Entries must have passed ValidateEntries; ApplyEntries performs no checks of
// its own.
func (s *BusinessState) ApplyEntries(entries ...JournalEntry) {
	s.Ledger.Append(entries...)
	if s.Week > 1 && s.Cash().IsNegative() {
		s.GameOver = true
	}
}

// applyOps folds a turn's operational deltas into the state.
func (s *BusinessState) applyOps(ops OpsUpdates) {
	if ops.InventoryKg != nil {
		s.InventoryKg = *ops.InventoryKg
	}
	s.Machines = append(s.Machines, ops.MachinesAdded...)
	if ops.FirstRunCustomers > 0 {
		s.CustomersFirstRunQueue = append(s.CustomersFirstRunQueue, ops.FirstRunCustomers)
	}
	if ops.ActiveRepeatCustomers != nil {
		s.ActiveRepeatCustomers = *ops.ActiveRepeatCustomers
	}
	if ops.HasShopify != nil {
		s.HasShopify = *ops.HasShopify
	}
	if ops.MonthlyCosts != nil {
		s.MonthlyCosts = *ops.MonthlyCosts
	}
}

// applyTurn commits one validated turn outcome: ledger entries in proposal
// order, operational deltas, week counter, and the outcome itself appended to
// the turn history.
func (s *BusinessState) applyTurn(outcome TurnOutcome) {
	s.Week++
	s.ApplyEntries(outcome.JournalEntries...)
	s.applyOps(outcome.OpsUpdates)
	s.TurnHistory = append(s.TurnHistory, outcome)
}

// Clone returns an independent deep copy of the state. The orchestrator hands
// clones to the narrator and to persistence so that neither can reach back
// into the live state.
func (s *BusinessState) Clone() *BusinessState {
	c := *s
	c.Ledger = s.Ledger.Clone()
	c.Machines = append(make([]Machine, 0, len(s.Machines)), s.Machines...)
	c.CustomersFirstRunQueue = append(make([]int, 0, len(s.CustomersFirstRunQueue)), s.CustomersFirstRunQueue...)
	c.TurnHistory = append(make([]TurnOutcome, 0, len(s.TurnHistory)), s.TurnHistory...)
	return &c
}
