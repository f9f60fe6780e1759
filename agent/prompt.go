package agent

import (
	"fmt"
	"strings"

	"github.com/jmorel/venture"
)

const systemInstruction = `
You are the narrator and mentor of a turn-based business simulation. The
player runs a small coffee-roasting venture, one week per turn. Each turn you
are given the current state of the business and the action the player chose,
and you answer with exactly one JSON object describing the outcome of that
week.

Accounting rules, non-negotiable:
- Record every monetary effect of the week as double-entry journal entries.
- Use ONLY accounts from the chart of accounts given in the prompt. Never
  invent an account name.
- Amounts are strictly positive numbers in USD. Direction is expressed by the
  debit and credit sides, never by a sign.
- A sale on credit debits Accounts Receivable; a purchase on account credits
  Accounts Payable. Equipment purchases debit Equipment. Owner contributions
  and loans credit Owner's Equity and Loans Payable respectively.

Game rules:
- Keep outcomes plausible for a business of this size; small numbers, weekly
  rhythm. Bad luck and good luck both happen.
- The mentor feedback is short, concrete and occasionally blunt.
- Offer two to four distinct next options, each a short actionable label.
- If the action is "start", set the scene: the player begins with nothing and
  must fund the venture first.
`

// buildPrompt renders the current state and the player's action for the model.
func buildPrompt(state *venture.BusinessState, action string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Business state, week %d\n\n", state.Week)
	fmt.Fprintf(&b, "- cash: %s\n", state.Cash())
	fmt.Fprintf(&b, "- inventory: %s kg of green beans\n", state.InventoryKg)
	if len(state.Machines) == 0 {
		fmt.Fprintf(&b, "- machines: none\n")
	} else {
		fmt.Fprintf(&b, "- machines:\n")
		for _, m := range state.Machines {
			fmt.Fprintf(&b, "  - %s (maintenance %s/month)\n", m.Name, m.MonthlyMaintenance)
		}
	}
	fmt.Fprintf(&b, "- upcoming first-time customer batches: %v\n", state.CustomersFirstRunQueue)
	fmt.Fprintf(&b, "- active repeat customers: %d\n", state.ActiveRepeatCustomers)
	fmt.Fprintf(&b, "- online store: %v\n", state.HasShopify)
	fmt.Fprintf(&b, "- fixed monthly costs: %s\n", state.MonthlyCosts)

	fmt.Fprintf(&b, "\n## Chart of accounts\n\n")
	for _, account := range venture.AllAccounts() {
		fmt.Fprintf(&b, "- %s (%s)\n", account, account.Class())
	}

	if n := len(state.TurnHistory); n > 0 {
		fmt.Fprintf(&b, "\n## Recent history\n\n")
		for _, outcome := range state.TurnHistory[max(0, n-3):] {
			fmt.Fprintf(&b, "- %s\n", outcome.NarrativeOutcome)
		}
	}

	fmt.Fprintf(&b, "\n## Player action\n\n%s\n", action)
	return b.String()
}
