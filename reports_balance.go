package venture

// BalanceSheet is the point-in-time view of what the venture owns, owes and
// retains. Derived entirely from the ledger.
type BalanceSheet struct {
	Cash               Money
	AccountsReceivable Money
	Inventory          Money
	Equipment          Money
	TotalAssets        Money

	AccountsPayable  Money
	LoansPayable     Money
	TotalLiabilities Money

	OwnersEquity     Money
	RetainedEarnings Money
	NetIncome        Money // current-period net income, folded into equity
	TotalEquity      Money
}

// NewBalanceSheet derives the balance sheet from the ledger.
//
// For any ledger built from valid entries, TotalAssets equals TotalLiabilities
// plus TotalEquity as an algebraic identity: every entry posts the same amount
// on both sides, so the sheet cannot go out of balance without the journal
// itself being corrupt.
func NewBalanceSheet(l *Ledger) BalanceSheet {
	s := BalanceSheet{
		Cash:               l.AccountBalance(Cash),
		AccountsReceivable: l.AccountBalance(AccountsReceivable),
		Inventory:          l.AccountBalance(Inventory),
		Equipment:          l.AccountBalance(Equipment),

		AccountsPayable: display(l, AccountsPayable),
		LoansPayable:    display(l, LoansPayable),

		OwnersEquity:     display(l, OwnersEquity),
		RetainedEarnings: display(l, RetainedEarnings),
		NetIncome:        NewIncomeStatement(l).NetIncome,
	}
	s.TotalAssets = s.Cash.Add(s.AccountsReceivable).Add(s.Inventory).Add(s.Equipment)
	s.TotalLiabilities = s.AccountsPayable.Add(s.LoansPayable)
	s.TotalEquity = s.OwnersEquity.Add(s.RetainedEarnings).Add(s.NetIncome)
	return s
}

// Balanced reports whether the fundamental identity holds.
func (s BalanceSheet) Balanced() bool {
	return s.TotalAssets.Equal(s.TotalLiabilities.Add(s.TotalEquity))
}

// Lines returns the sheet as displayable rows, totals marked.
func (s BalanceSheet) Lines() []Line {
	return []Line{
		{Label: "Assets", Amount: s.TotalAssets, IsTotal: true, Sub: []Line{
			{Label: Cash.String(), Amount: s.Cash},
			{Label: AccountsReceivable.String(), Amount: s.AccountsReceivable},
			{Label: Inventory.String(), Amount: s.Inventory},
			{Label: Equipment.String(), Amount: s.Equipment},
		}},
		{Label: "Liabilities", Amount: s.TotalLiabilities, IsTotal: true, Sub: []Line{
			{Label: AccountsPayable.String(), Amount: s.AccountsPayable},
			{Label: LoansPayable.String(), Amount: s.LoansPayable},
		}},
		{Label: "Equity", Amount: s.TotalEquity, IsTotal: true, Sub: []Line{
			{Label: OwnersEquity.String(), Amount: s.OwnersEquity},
			{Label: RetainedEarnings.String(), Amount: s.RetainedEarnings},
			{Label: "Net Income", Amount: s.NetIncome},
		}},
	}
}
