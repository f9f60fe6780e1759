// Package renderer converts financial statements, the journal and turn
// outcomes into markdown, ready for a terminal markdown renderer.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/jmorel/venture"
)

//go:embed templates/*.md
var templates embed.FS

var funcs = template.FuncMap{
	"money":  func(m venture.Money) string { return m.String() },
	"signed": func(m venture.Money) string { return m.SignedString() },
	"inc":    func(i int) int { return i + 1 },
}

// renderTemplate is a generic utility to render one of the embedded templates.
func renderTemplate(templateName, file string, data any) string {
	content, err := templates.ReadFile("templates/" + file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error rendering template %q: %v", file, err)
	}
	return b.String()
}

// statementData feeds the three statement templates.
type statementData struct {
	Title string
	Week  int
	Lines []venture.Line
}

// IncomeStatementMarkdown renders the income statement to markdown.
func IncomeStatementMarkdown(week int, s venture.IncomeStatement) string {
	return renderTemplate("incomeStatement", "statement.md", statementData{
		Title: "Income Statement", Week: week, Lines: s.Lines(),
	})
}

// BalanceSheetMarkdown renders the balance sheet to markdown.
func BalanceSheetMarkdown(week int, s venture.BalanceSheet) string {
	return renderTemplate("balanceSheet", "statement.md", statementData{
		Title: "Balance Sheet", Week: week, Lines: s.Lines(),
	})
}

// CashFlowMarkdown renders the cash-flow statement to markdown.
func CashFlowMarkdown(week int, s venture.CashFlowStatement) string {
	return renderTemplate("cashFlow", "statement.md", statementData{
		Title: "Cash-Flow Statement", Week: week, Lines: s.Lines(),
	})
}

// journalData feeds the journal template.
type journalData struct {
	Entries      []venture.JournalEntry
	TotalDebits  venture.Money
	TotalCredits venture.Money
}

// JournalMarkdown renders the full journal with its debit/credit totals.
func JournalMarkdown(l *venture.Ledger) string {
	data := journalData{
		TotalDebits:  l.TotalDebits(),
		TotalCredits: l.TotalCredits(),
	}
	for _, e := range l.Entries() {
		data.Entries = append(data.Entries, e)
	}
	return renderTemplate("journal", "journal.md", data)
}

// turnData feeds the turn template.
type turnData struct {
	Week    int
	Cash    venture.Money
	Outcome venture.TurnOutcome
}

// TurnMarkdown renders one turn outcome: narrative, mentor feedback, the
// week's postings and the next options.
func TurnMarkdown(week int, cash venture.Money, outcome venture.TurnOutcome) string {
	return renderTemplate("turn", "turn.md", turnData{Week: week, Cash: cash, Outcome: outcome})
}
