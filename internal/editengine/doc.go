// Package editengine locates and applies anchor-based edits to text.
//
// An edit names a snippet of the current content (its anchor) and an
// operation to perform where that snippet occurs: replace it, insert new text
// before or after it, or delete it. Anchors typically come from a language
// model describing text it has seen, so they may disagree with the stored
// content on whitespace, punctuation dialect (curly vs straight quotes,
// full-width vs ASCII marks), or a stray character. FindAnchor resolves an
// anchor by trying progressively looser strategies: a verbatim substring
// search, a search over normalized text (whitespace runs folded to a single
// space, typographic punctuation folded to ASCII), and finally a bounded
// fuzzy scan that accepts the best window scoring above a similarity
// threshold.
//
// ApplyEdits resolves every edit of a batch against the original, unmodified
// text, then applies the accepted ones rightmost-first into a single buffer
// so earlier spans never see shifted offsets. Each input edit produces
// exactly one EditOutcome, in input order, recording what happened: applied,
// rejected (not in the accepted set), or failed with a reason. A failure
// never aborts the batch.
//
// The package is pure: no I/O, no shared state between calls. The optional
// Applier.Logf callback exists only for tracing.
package editengine
