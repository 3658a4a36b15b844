// Package followup implements deterministic follow-up obligation detection
// over email text. Detection is pure and total: any pair of strings yields
// either a Result or nil, never an error
package followup

import "strings"

// Direction says which party owes the next action
type Direction string

const (
	// DirectionYouOwe means the identity owes a reply or action
	DirectionYouOwe Direction = "you_owe"
	// DirectionTheyOwe means the counterpart owes one
	DirectionTheyOwe Direction = "they_owe"
)

// Method tags how a Result was produced
type Method string

const (
	// MethodHeuristic marks deterministic rule detection
	MethodHeuristic Method = "heuristic"
	// MethodLLM marks the out-of-process fallback collaborator
	MethodLLM Method = "llm"
)

const (
	// minConfidence is the internal acceptance floor; rules that assign 0.70
	// sit intentionally just above it
	minConfidence = 0.65

	// AcceptConfidence is the caller-level bar above which a heuristic result
	// wins outright without consulting the fallback
	AcceptConfidence = 0.75
)

// Input is one email as seen by the classifier
type Input struct {
	Subject string
	Body    string
	// From is the sender address; Self is the identity's own address.
	// Their case-insensitive equality decides authorship
	From string
	Self string
}

// Result is the classification outcome. Quote is the audit receipt shown to
// the user and is deterministic for identical inputs
type Result struct {
	Direction  Direction `json:"direction"`
	Confidence float64   `json:"confidence"`
	DueText    string    `json:"due_text,omitempty"`
	Promise    bool      `json:"promise_detected"`
	Ask        bool      `json:"ask_detected"`
	Quote      string    `json:"quote,omitempty"`
	Method     Method    `json:"method"`
}

// Detect classifies a single email. It returns nil when no obligation is
// detected or the decision confidence falls below the acceptance floor
func Detect(in Input) *Result {
	// identity-independent scans run over subject+body; quote extraction
	// stays on the original-case body so receipts preserve casing
	haystack := in.Subject + "\n" + in.Body

	askHit, ask := firstMatch(askPatterns, haystack)
	promiseHit, promise := firstMatch(promisePatterns, haystack)
	deadlineHit, deadline := firstMatch(deadlinePatterns, haystack)

	// ask sets the quote first; promise and deadline only fill a still-empty
	// slot, so the governing quote is the earliest category that matched
	quote := ""
	if ask {
		quote = Quote(in.Body, askHit)
	}
	if quote == "" && promise {
		quote = Quote(in.Body, promiseHit)
	}
	if quote == "" && deadline {
		quote = Quote(in.Body, deadlineHit)
	}

	isFromMe := strings.EqualFold(strings.TrimSpace(in.From), strings.TrimSpace(in.Self))

	// decision table, first satisfied rule wins
	var dir Direction
	var conf float64
	switch {
	case ask && !isFromMe:
		dir = DirectionYouOwe
		conf = pick(deadline, 0.85, 0.70)
	case promise && isFromMe:
		dir = DirectionYouOwe
		conf = pick(deadline, 0.90, 0.75)
	case ask && isFromMe:
		dir = DirectionTheyOwe
		conf = pick(deadline, 0.85, 0.70)
	default:
		return nil
	}

	if conf < minConfidence {
		return nil
	}

	return &Result{
		Direction:  dir,
		Confidence: conf,
		DueText:    deadlineHit,
		Promise:    promise,
		Ask:        ask,
		Quote:      quote,
		Method:     MethodHeuristic,
	}
}

func pick(cond bool, yes, no float64) float64 {
	if cond {
		return yes
	}
	return no
}
