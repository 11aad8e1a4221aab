package editengine

import (
	"fmt"
	"sort"
	"strings"
)

// Applier applies edit batches. The zero value is ready to use; ApplyEdits
// (the package-level function) is shorthand for it.
type Applier struct {
	// Logf, when set, receives printf-style trace lines during resolution
	// and application.
	Logf func(format string, args ...any)
}

func (a *Applier) logf(format string, args ...any) {
	if a.Logf != nil {
		a.Logf(format, args...)
	}
}

// ApplyEdits applies edits to original with everything accepted. See
// Applier.ApplyEdits.
func ApplyEdits(original string, edits []EditRequest) (string, []EditOutcome) {
	return (&Applier{}).ApplyEdits(original, edits, nil)
}

// ApplyEdits resolves every edit's anchor against original, applies the
// accepted ones, and returns the resulting text plus one EditOutcome per
// input edit, in input order.
//
// Edits without an ID get "e<index>" from their position in the batch. All
// anchors resolve against the pristine original, never a partially edited
// buffer; application then proceeds rightmost-first so spans to the left keep
// their offsets. acceptedIDs nil means every edit is accepted; otherwise
// edits whose ID is absent are reported rejected and do not mutate the
// buffer. Failures (unresolvable or ambiguous anchors, unknown operation
// kinds) are reported per edit and never abort the batch.
func (a *Applier) ApplyEdits(original string, edits []EditRequest, acceptedIDs map[string]bool) (string, []EditOutcome) {
	batch := make([]EditRequest, len(edits))
	copy(batch, edits)
	for i := range batch {
		if batch[i].ID == "" {
			batch[i].ID = fmt.Sprintf("e%d", i)
		}
	}

	matches := make([]Match, len(batch))
	for i, e := range batch {
		matches[i] = findAnchor(original, e.Anchor, a.Logf)
		a.logf("edit %s: resolved method=%s span=[%d,%d)", e.ID, matches[i].Method, matches[i].Start, matches[i].End)
	}

	// Rightmost spans first; unresolved edits (-1) sort last and never
	// mutate anyway.
	order := make([]int, len(batch))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return matches[order[x]].Start > matches[order[y]].Start
	})

	outcomes := make([]EditOutcome, len(batch))
	buffer := original
	for _, i := range order {
		outcomes[i] = a.applyOne(&buffer, batch[i], matches[i], acceptedIDs)
	}
	return buffer, outcomes
}

func (a *Applier) applyOne(buffer *string, e EditRequest, match Match, acceptedIDs map[string]bool) EditOutcome {
	out := EditOutcome{
		EditRequest: e,
		Status:      StatusFailed,
		Position:    Span{Start: match.Start, End: match.End},
	}

	if acceptedIDs != nil && !acceptedIDs[e.ID] {
		out.Status = StatusRejected
		return out
	}
	if !match.Found() {
		out.Reason = ReasonAnchorNotFound
		return out
	}
	out.MatchMethod = match.Method

	// Uniqueness only matters for exact matches: the looser tiers already
	// pinpoint one span. The live buffer is authoritative, not the original.
	if match.Method == MatchExact && strings.Count(*buffer, e.Anchor) > 1 {
		out.Reason = ReasonAnchorNotUnique
		return out
	}

	start, end := match.Start, match.End
	// Overlapping spans in one batch can shrink the buffer past a
	// later-processed edit's end.
	if end > len(*buffer) {
		end = len(*buffer)
	}
	if start > end {
		start = end
	}

	switch e.Type {
	case OpReplace:
		matched := (*buffer)[start:end]
		*buffer = (*buffer)[:start] + e.NewText + (*buffer)[end:]
		out.OldText = &matched
		out.Position = Span{Start: start, End: start + len(e.NewText)}
	case OpInsertAfter:
		*buffer = (*buffer)[:end] + "\n" + e.NewText + (*buffer)[end:]
		out.Position = Span{Start: end + 1, End: end + 1 + len(e.NewText)}
	case OpInsertBefore:
		*buffer = (*buffer)[:start] + e.NewText + "\n" + (*buffer)[start:]
		out.Position = Span{Start: start, End: start + len(e.NewText)}
	case OpDelete:
		matched := (*buffer)[start:end]
		*buffer = (*buffer)[:start] + (*buffer)[end:]
		out.OldText = &matched
		out.Position = Span{Start: start, End: start}
	default:
		out.Reason = ReasonUnsupportedOperation
		return out
	}

	out.Status = StatusApplied
	a.logf("edit %s: applied %s at [%d,%d)", e.ID, e.Type, out.Position.Start, out.Position.End)
	return out
}
