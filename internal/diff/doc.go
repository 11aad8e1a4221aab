// Package diff computes line-level diffs between an "old" and a "new" string.
//
// Representation: A Diff holds the complete OldText/NewText and an ordered
// slice of hunks that, when concatenated, reconstruct both sides. Each hunk
// has an Op:
//   - OpEqual: unchanged region (OldLines == NewLines)
//   - OpInsert: lines present only in the new side (OldLines empty)
//   - OpDelete: lines present only in the old side (NewLines empty)
//   - OpReplace: lines changed on both sides
//
// Lines include their trailing '\n' when the input had one; the last line of
// a text may not.
//
// Invariants:
//   - concat(hunks.OldLines) == Diff.OldText
//   - concat(hunks.NewLines) == Diff.NewText
//
// Granularity: the exact grouping of changes into hunks is a policy choice of
// DiffText and may evolve. Consumers should rely on the invariants above
// rather than any particular chunking strategy.
//
// Getting a diff:
//
//	d := diff.DiffText(oldText, newText)
//	fmt.Println(d.RenderColored())
//
// RenderColored emits the full document with ANSI-highlighted deletion and
// insertion lines, intended for terminals.
package diff
