package domain

import (
	"encoding/json"
	"fmt"
)

// Suggestion carries the parameters an approved action hands to the
// executor. It is a closed union keyed by Kind; each variant carries
// only the fields relevant to its action type, so a malformed
// suggestion fails at construction rather than at execution.
type Suggestion interface {
	Kind() string
	validate() error
}

// StatusChange asks the executor to set the campaign run state. Used by
// activate and pause actions.
type StatusChange struct {
	Status RunState `json:"status"`
}

func (s StatusChange) Kind() string { return "status_change" }

func (s StatusChange) validate() error {
	if !s.Status.Valid() {
		return fmt.Errorf("status change: unknown run state %q", s.Status)
	}
	return nil
}

// NewStatusChange builds a validated status-change suggestion.
func NewStatusChange(state RunState) (StatusChange, error) {
	s := StatusChange{Status: state}
	return s, s.validate()
}

// BidAdjustment asks the executor to scale the campaign bid by Factor
// (0.9 lowers the bid by 10%).
type BidAdjustment struct {
	Factor float64 `json:"factor"`
}

func (b BidAdjustment) Kind() string { return "bid_adjustment" }

func (b BidAdjustment) validate() error {
	if !(b.Factor > 0) {
		return fmt.Errorf("bid adjustment: factor must be positive, got %v", b.Factor)
	}
	return nil
}

// NewBidAdjustment builds a validated bid-adjustment suggestion.
func NewBidAdjustment(factor float64) (BidAdjustment, error) {
	b := BidAdjustment{Factor: factor}
	return b, b.validate()
}

// KeywordOptimization asks the executor to run a keyword optimization
// pass touching at most MaxKeywords keywords.
type KeywordOptimization struct {
	MaxKeywords int `json:"max_keywords"`
}

func (k KeywordOptimization) Kind() string { return "keyword_optimization" }

func (k KeywordOptimization) validate() error {
	if k.MaxKeywords <= 0 {
		return fmt.Errorf("keyword optimization: max keywords must be positive, got %d", k.MaxKeywords)
	}
	return nil
}

// NewKeywordOptimization builds a validated keyword suggestion.
func NewKeywordOptimization(maxKeywords int) (KeywordOptimization, error) {
	k := KeywordOptimization{MaxKeywords: maxKeywords}
	return k, k.validate()
}

// suggestionEnvelope is the storage encoding: one JSON object with a
// kind tag so the single jsonb column round-trips the union.
type suggestionEnvelope struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// EncodeSuggestion serializes a suggestion for storage. Invalid
// suggestions are rejected here as a last line of defense.
func EncodeSuggestion(s Suggestion) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("nil suggestion")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(suggestionEnvelope{Kind: s.Kind(), Payload: payload})
}

// DecodeSuggestion parses a stored suggestion envelope back into its
// concrete variant.
func DecodeSuggestion(data []byte) (Suggestion, error) {
	var env suggestionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	var s Suggestion
	switch env.Kind {
	case "status_change":
		var v StatusChange
		if err := json.Unmarshal(env.Payload, &v); err != nil {
			return nil, err
		}
		s = v
	case "bid_adjustment":
		var v BidAdjustment
		if err := json.Unmarshal(env.Payload, &v); err != nil {
			return nil, err
		}
		s = v
	case "keyword_optimization":
		var v KeywordOptimization
		if err := json.Unmarshal(env.Payload, &v); err != nil {
			return nil, err
		}
		s = v
	default:
		return nil, fmt.Errorf("unknown suggestion kind %q", env.Kind)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}
