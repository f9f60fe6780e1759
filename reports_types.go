package venture

// Line is one displayed row of a financial statement. Sub rows break a figure
// into its components (e.g. operating expenses per account); IsTotal marks
// rows a renderer should emphasize. Neither affects the underlying figures.
type Line struct {
	Label   string `json:"label"`
	Amount  Money  `json:"amount"`
	IsTotal bool   `json:"is_total,omitempty"`
	Sub     []Line `json:"sub,omitempty"`
}

// display returns the account balance presented on the account's normal side:
// debit-normal balances are shown as-is, credit-normal balances sign-flipped
// so that a revenue or liability conventionally reads positive.
func display(l *Ledger, account Account) Money {
	b := l.AccountBalance(account)
	if account.Class().DebitNormal() {
		return b
	}
	return b.Neg()
}
