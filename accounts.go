package venture

import "fmt"

// AccountClass classifies an account and determines its normal balance side.
type AccountClass int

const (
	Asset AccountClass = iota
	Liability
	Equity
	Revenue
	Expense
)

func (c AccountClass) String() string {
	switch c {
	case Asset:
		return "asset"
	case Liability:
		return "liability"
	case Equity:
		return "equity"
	case Revenue:
		return "revenue"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// DebitNormal reports whether accounts of this class carry a positive balance
// on the debit side. Assets and Expenses are debit-normal; Liabilities, Equity
// and Revenue are credit-normal.
func (c AccountClass) DebitNormal() bool {
	return c == Asset || c == Expense
}

// Account is one entry of the closed chart of accounts. Journal entries may
// only reference accounts from this chart; anything else is rejected by
// ValidateEntries.
type Account string

const (
	Cash               Account = "Cash"
	AccountsReceivable Account = "Accounts Receivable"
	Inventory          Account = "Inventory"
	Equipment          Account = "Equipment"

	AccountsPayable Account = "Accounts Payable"
	LoansPayable    Account = "Loans Payable"

	OwnersEquity     Account = "Owner's Equity"
	RetainedEarnings Account = "Retained Earnings"

	SalesRevenue Account = "Sales Revenue"

	COGS         Account = "COGS"
	Rent         Account = "Rent"
	Marketing    Account = "Marketing"
	Maintenance  Account = "Maintenance"
	Salaries     Account = "Salaries"
	Depreciation Account = "Depreciation"
)

// chart maps every known account to its class. It is the single source of
// truth for the account vocabulary: extending the chart means adding both the
// constant above and its classification here.
var chart = map[Account]AccountClass{
	Cash:               Asset,
	AccountsReceivable: Asset,
	Inventory:          Asset,
	Equipment:          Asset,
	AccountsPayable:    Liability,
	LoansPayable:       Liability,
	OwnersEquity:       Equity,
	RetainedEarnings:   Equity,
	SalesRevenue:       Revenue,
	COGS:               Expense,
	Rent:               Expense,
	Marketing:          Expense,
	Maintenance:        Expense,
	Salaries:           Expense,
	Depreciation:       Expense,
}

// operatingExpenses are the expense accounts reported under Operating Expenses
// on the income statement. COGS is reported separately, above gross profit.
var operatingExpenses = []Account{Marketing, Rent, Maintenance, Salaries, Depreciation}

// Class returns the classification of the account.
// Calling Class on an account outside the chart panics; unknown account names
// must be filtered out by ValidateEntries before they reach this point.
func (a Account) Class() AccountClass {
	c, ok := chart[a]
	if !ok {
		panic(fmt.Sprintf("account %q is not in the chart of accounts", a))
	}
	return c
}

// Known reports whether the account belongs to the chart of accounts.
func (a Account) Known() bool {
	_, ok := chart[a]
	return ok
}

func (a Account) String() string { return string(a) }

// ParseAccount checks a raw account name against the chart of accounts.
func ParseAccount(s string) (Account, error) {
	a := Account(s)
	if !a.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAccount, s)
	}
	return a, nil
}

// AllAccounts returns the chart of accounts in statement order.
func AllAccounts() []Account {
	return []Account{
		Cash, AccountsReceivable, Inventory, Equipment,
		AccountsPayable, LoansPayable,
		OwnersEquity, RetainedEarnings,
		SalesRevenue,
		COGS, Rent, Marketing, Maintenance, Salaries, Depreciation,
	}
}
