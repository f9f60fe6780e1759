package venture

// CashFlowStatement decomposes the movement of the Cash account by source,
// using the indirect method: start from net income and adjust for non-cash
// items and working-capital changes.
type CashFlowStatement struct {
	NetIncome           Money
	DepreciationAddback Money
	ReceivablesChange   Money // increase in receivables consumes cash
	InventoryChange     Money // increase in inventory consumes cash
	PayablesChange      Money // increase in payables frees cash
	Operating           Money
	Investing           Money
	Financing           Money
	NetChange           Money
}

// NewCashFlowStatement derives the cash-flow statement from the ledger.
//
// With a single open period, each "change" is the account's balance since
// inception. Operating + Investing + Financing always equals the ledger's
// Cash balance: the statement is just the Cash account's counterpart postings
// regrouped by section.
func NewCashFlowStatement(l *Ledger) CashFlowStatement {
	s := CashFlowStatement{
		NetIncome:           NewIncomeStatement(l).NetIncome,
		DepreciationAddback: l.AccountBalance(Depreciation),
		ReceivablesChange:   l.AccountBalance(AccountsReceivable).Neg(),
		InventoryChange:     l.AccountBalance(Inventory).Neg(),
		PayablesChange:      l.AccountBalance(AccountsPayable).Neg(),
	}
	s.Operating = s.NetIncome.
		Add(s.DepreciationAddback).
		Add(s.ReceivablesChange).
		Add(s.InventoryChange).
		Add(s.PayablesChange)

	// Equipment purchases are cash out; its debit balance flips to an outflow.
	s.Investing = l.AccountBalance(Equipment).Neg()

	// Owner contributions and loan draws are credit balances, flipped to inflows.
	s.Financing = l.AccountBalance(OwnersEquity).Neg().
		Add(l.AccountBalance(LoansPayable).Neg())

	s.NetChange = s.Operating.Add(s.Investing).Add(s.Financing)
	return s
}

// Lines returns the statement as displayable rows, totals marked.
func (s CashFlowStatement) Lines() []Line {
	return []Line{
		{Label: "Operating Activities", Amount: s.Operating, IsTotal: true, Sub: []Line{
			{Label: "Net Income", Amount: s.NetIncome},
			{Label: "Depreciation", Amount: s.DepreciationAddback},
			{Label: "Change in Accounts Receivable", Amount: s.ReceivablesChange},
			{Label: "Change in Inventory", Amount: s.InventoryChange},
			{Label: "Change in Accounts Payable", Amount: s.PayablesChange},
		}},
		{Label: "Investing Activities", Amount: s.Investing, IsTotal: true},
		{Label: "Financing Activities", Amount: s.Financing, IsTotal: true},
		{Label: "Net Change in Cash", Amount: s.NetChange, IsTotal: true},
	}
}
