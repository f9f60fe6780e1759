// Package agent implements the turn narrator on top of Gemini.
//
// The Narrator satisfies venture.TurnGenerator: given the current business
// state and the player's chosen action, it asks the model for one turn
// outcome as structured JSON. Everything it returns is untrusted; the
// orchestrator re-validates every journal entry before applying it.
package agent

import (
	"context"
	"fmt"

	"github.com/jmorel/venture"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Narrator generates turn outcomes through a Gemini model.
type Narrator struct {
	client *genai.Client
	model  string
}

// New creates a Narrator. The client is typically built with
// genai.NewClient(ctx, nil), which picks up GEMINI_API_KEY from the
// environment.
func New(client *genai.Client) *Narrator {
	return &Narrator{client: client, model: model}
}

// GenerateTurn asks the model to play out one week of the venture.
func (n *Narrator) GenerateTurn(ctx context.Context, state *venture.BusinessState, action string) (*venture.TurnOutcome, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   proposalSchema,
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}

	resp, err := n.client.Models.GenerateContent(ctx, n.model, genai.Text(buildPrompt(state, action)), config)
	if err != nil {
		return nil, fmt.Errorf("could not generate turn: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from the narrator")
	}
	text := resp.Candidates[0].Content.Parts[0].Text

	return decodeProposal([]byte(text))
}

// proposalSchema constrains the model output to the turn-outcome wire shape.
// The schema is a guardrail, not a guarantee: decoding and accounting
// validation still treat the payload as hostile.
var proposalSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"narrative_outcome": {
			Type:        genai.TypeString,
			Description: "What happened this week, told to the player.",
		},
		"mentor_feedback": {
			Type:        genai.TypeString,
			Description: "One or two sentences of business advice from the mentor.",
		},
		"journal_entries": {
			Type:        genai.TypeArray,
			Description: "Double-entry postings recording every monetary effect of the week.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"debit_account":  {Type: genai.TypeString},
					"credit_account": {Type: genai.TypeString},
					"amount":         {Type: genai.TypeNumber, Description: "Strictly positive amount in USD."},
					"description":    {Type: genai.TypeString},
				},
				Required: []string{"debit_account", "credit_account", "amount", "description"},
			},
		},
		"ops_updates": {
			Type:        genai.TypeObject,
			Description: "Non-monetary operational changes. Omit fields that did not change.",
			Properties: map[string]*genai.Schema{
				"inventory_kg": {Type: genai.TypeNumber, Description: "New total kg of green beans on hand."},
				"machines_added": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"name":                {Type: genai.TypeString},
							"monthly_maintenance": {Type: genai.TypeNumber},
						},
						Required: []string{"name"},
					},
				},
				"first_run_customers":     {Type: genai.TypeInteger, Description: "New first-time customers won this week."},
				"active_repeat_customers": {Type: genai.TypeInteger, Description: "New total of repeat customers."},
				"has_shopify":             {Type: genai.TypeBoolean},
				"monthly_costs":           {Type: genai.TypeNumber, Description: "New total fixed monthly costs in USD."},
			},
		},
		"next_options": {
			Type:        genai.TypeArray,
			Description: "Two to four actions the player can pick next.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"label": {Type: genai.TypeString},
					"hint":  {Type: genai.TypeString},
				},
				Required: []string{"label"},
			},
		},
	},
	Required: []string{"narrative_outcome", "mentor_feedback", "journal_entries", "next_options"},
}
