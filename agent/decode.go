package agent

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/jmorel/venture"
)

// proposalWire mirrors venture.TurnOutcome but keeps the journal entries as a
// pointer so that a payload missing the array entirely can be told apart from
// an empty one. A missing array is a schema error; an empty one is a purely
// narrative week.
type proposalWire struct {
	NarrativeOutcome string                  `json:"narrative_outcome"`
	MentorFeedback   string                  `json:"mentor_feedback"`
	JournalEntries   *[]venture.JournalEntry `json:"journal_entries"`
	OpsUpdates       venture.OpsUpdates      `json:"ops_updates"`
	NextOptions      []venture.NextOption    `json:"next_options"`
}

// wrapperPaths are tried in order when the payload is valid JSON but the
// outcome fields are not at the top level. Models occasionally nest the object
// under a key or return a one-element array despite the response schema.
var wrapperPaths = []string{"$.proposal", "$.turn_outcome", "$.outcome", "$[0]"}

// decodeProposal parses the model output into a turn outcome. It is lenient
// about packaging (code fences, one wrapper object or array) and strict about
// content: without a journal_entries array the proposal is malformed.
func decodeProposal(raw []byte) (*venture.TurnOutcome, error) {
	raw = trimFences(raw)

	var wire proposalWire
	if err := json.Unmarshal(raw, &wire); err != nil || wire.JournalEntries == nil {
		unwrapped, uerr := unwrap(raw)
		if uerr != nil {
			if err != nil {
				return nil, fmt.Errorf("%w: %v", venture.ErrMalformedProposal, err)
			}
			return nil, fmt.Errorf("%w: missing journal_entries", venture.ErrMalformedProposal)
		}
		wire = unwrapped
	}

	return &venture.TurnOutcome{
		NarrativeOutcome: wire.NarrativeOutcome,
		MentorFeedback:   wire.MentorFeedback,
		JournalEntries:   *wire.JournalEntries,
		OpsUpdates:       wire.OpsUpdates,
		NextOptions:      wire.NextOptions,
	}, nil
}

// unwrap looks for the outcome object under the known wrapper paths.
func unwrap(raw []byte) (proposalWire, error) {
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return proposalWire{}, err
	}

	for _, path := range wrapperPaths {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		// jsonpath is never clear about whether it returns a list of one
		// answer or a single answer; keep the first one if any.
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}

		inner, err := json.Marshal(jval)
		if err != nil {
			continue
		}
		var wire proposalWire
		if err := json.Unmarshal(inner, &wire); err == nil && wire.JournalEntries != nil {
			return wire, nil
		}
	}
	return proposalWire{}, fmt.Errorf("no turn outcome found under any known wrapper")
}

// trimFences strips a leading/trailing markdown code fence if present.
func trimFences(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if !bytes.HasPrefix(trimmed, []byte("```")) {
		return trimmed
	}
	if i := bytes.IndexByte(trimmed, '\n'); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	trimmed = bytes.TrimSpace(trimmed)
	trimmed = bytes.TrimSuffix(trimmed, []byte("```"))
	return bytes.TrimSpace(trimmed)
}
