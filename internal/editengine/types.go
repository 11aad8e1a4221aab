package editengine

import (
	"encoding/json"
	"fmt"
)

// Op is the kind of operation an edit performs at its anchor.
type Op string

// Operation kinds. Anything else reaching the engine fails with
// ReasonUnsupportedOperation.
const (
	OpReplace      Op = "replace"
	OpInsertAfter  Op = "insert_after"
	OpInsertBefore Op = "insert_before"
	OpDelete       Op = "delete"
)

// Status is the final state of one edit after ApplyEdits.
type Status string

const (
	StatusApplied  Status = "applied"
	StatusFailed   Status = "failed"
	StatusRejected Status = "rejected"
)

// Reason explains a StatusFailed outcome. Empty when the edit applied or was
// rejected by the caller's accepted set.
type Reason string

const (
	ReasonAnchorNotFound       Reason = "anchor_not_found"
	ReasonAnchorNotUnique      Reason = "anchor_not_unique"
	ReasonUnsupportedOperation Reason = "unsupported_operation"
)

// MatchMethod is the strategy that located an anchor.
type MatchMethod string

const (
	MatchExact      MatchMethod = "exact"
	MatchNormalized MatchMethod = "normalized"
	MatchFuzzy      MatchMethod = "fuzzy"
	MatchNone       MatchMethod = "none"
)

// Match is a resolved anchor span in the original text's byte coordinates.
// When Method is MatchNone, Start and End are both -1.
type Match struct {
	Start  int
	End    int
	Method MatchMethod
}

// Found reports whether the match located a span.
func (m Match) Found() bool { return m.Start >= 0 }

// Span is a half-open [Start, End) byte range.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// EditRequest is one proposed edit as received from the upstream payload.
// ID may be empty; ApplyEdits assigns a sequential one ("e0", "e1", ...)
// based on the edit's position in the batch. NewText is ignored for
// OpDelete.
type EditRequest struct {
	ID      string `json:"id,omitempty"`
	Type    Op     `json:"type"`
	Anchor  string `json:"anchor"`
	NewText string `json:"new_text"`
}

// EditOutcome reports what happened to one EditRequest.
//
// OldText is the original slice that was replaced or deleted; nil for pure
// insertions and for edits that did not mutate the buffer. Position is in the
// coordinates of the buffer as it stood right after this edit applied; for
// failed and rejected edits it is the best-effort resolved span in original
// coordinates, or {-1, -1} when nothing resolved.
type EditOutcome struct {
	EditRequest
	OldText     *string     `json:"old_text"`
	Status      Status      `json:"status"`
	Reason      Reason      `json:"reason,omitempty"`
	MatchMethod MatchMethod `json:"match_method,omitempty"`
	Position    Span        `json:"position"`
}

// DecodeEdits decodes an edit batch from its JSON wire form. It validates
// structure only; unknown operation kinds are preserved and surface later as
// per-edit unsupported_operation failures.
func DecodeEdits(data []byte) ([]EditRequest, error) {
	var edits []EditRequest
	if err := json.Unmarshal(data, &edits); err != nil {
		return nil, fmt.Errorf("decode edits: %w", err)
	}
	return edits, nil
}

// EncodeOutcomes encodes an outcome report as indented JSON.
func EncodeOutcomes(outcomes []EditOutcome) ([]byte, error) {
	data, err := json.MarshalIndent(outcomes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode outcomes: %w", err)
	}
	return data, nil
}
