package venture

// IncomeStatement is the profit-and-loss view of the ledger: revenue down to
// net income. It is a pure function of the journal and holds no state of its
// own.
type IncomeStatement struct {
	Revenue           Money
	COGS              Money
	GrossProfit       Money
	OperatingExpenses Money
	OpexDetail        []Line // one row per operating-expense account
	NetIncome         Money
}

// NewIncomeStatement derives the income statement from the ledger.
//
// Revenue accounts are credit-normal so their natural balance is negative;
// they are sign-flipped here to read positive. Expense accounts are
// debit-normal and read as-is.
func NewIncomeStatement(l *Ledger) IncomeStatement {
	s := IncomeStatement{
		Revenue: display(l, SalesRevenue),
		COGS:    l.AccountBalance(COGS),
	}
	s.GrossProfit = s.Revenue.Sub(s.COGS)

	for _, account := range operatingExpenses {
		amount := l.AccountBalance(account)
		s.OpexDetail = append(s.OpexDetail, Line{Label: account.String(), Amount: amount})
		s.OperatingExpenses = s.OperatingExpenses.Add(amount)
	}
	s.NetIncome = s.GrossProfit.Sub(s.OperatingExpenses)
	return s
}

// Lines returns the statement as displayable rows, totals marked.
func (s IncomeStatement) Lines() []Line {
	return []Line{
		{Label: "Revenue", Amount: s.Revenue},
		{Label: "Cost of Goods Sold", Amount: s.COGS},
		{Label: "Gross Profit", Amount: s.GrossProfit, IsTotal: true},
		{Label: "Operating Expenses", Amount: s.OperatingExpenses, Sub: s.OpexDetail},
		{Label: "Net Income", Amount: s.NetIncome, IsTotal: true},
	}
}
