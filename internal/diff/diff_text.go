package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffText diffs oldText to newText, returning a Diff.
//
// The alignment is line-based: each distinct line is encoded as a rune, the
// rune sequences are diffed, and adjacent deletions/insertions are grouped
// into a single OpReplace hunk.
func DiffText(oldText, newText string) Diff {
	dmp := diffmatchpatch.New()

	rOld, rNew, lineArray := dmp.DiffLinesToRunes(oldText, newText)
	lineDiffs := dmp.DiffMainRunes(rOld, rNew, false)
	lineDiffs = dmp.DiffCleanupMerge(lineDiffs)

	// Decode rune-string back to slice of original lines using the lineArray mapping.
	decode := func(s string) []string {
		if s == "" {
			return nil
		}
		out := make([]string, 0, len(s))
		for _, r := range s {
			idx := int(r)
			if idx >= 0 && idx < len(lineArray) {
				out = append(out, lineArray[idx])
			}
		}
		return out
	}

	var hunks []DiffHunk
	var dels []string
	var ins []string

	flush := func() {
		if len(dels) == 0 && len(ins) == 0 {
			return
		}
		var op Op
		switch {
		case len(dels) > 0 && len(ins) > 0:
			op = OpReplace
		case len(dels) > 0:
			op = OpDelete
		default:
			op = OpInsert
		}
		hunks = append(hunks, DiffHunk{Op: op, OldLines: dels, NewLines: ins})
		dels = nil
		ins = nil
	}

	for _, d := range lineDiffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			eqLines := decode(d.Text)
			if len(eqLines) == 0 {
				continue
			}
			hunks = append(hunks, DiffHunk{Op: OpEqual, OldLines: eqLines, NewLines: eqLines})
		case diffmatchpatch.DiffDelete:
			dels = append(dels, decode(d.Text)...)
		case diffmatchpatch.DiffInsert:
			ins = append(ins, decode(d.Text)...)
		}
	}
	flush()

	diff := Diff{OldText: oldText, NewText: newText, Hunks: hunks}

	if err := diff.validate(); err != nil {
		panic(fmt.Errorf("DiffText: validate failed with %v", err))
	}

	return diff
}

// validate checks the Diff invariants and returns an error on the first violation.
func (d Diff) validate() error {
	var oldConcat, newConcat strings.Builder
	for hi, h := range d.Hunks {
		switch h.Op {
		case OpEqual:
			if len(h.OldLines) != len(h.NewLines) {
				return fmt.Errorf("hunk[%d]: OpEqual requires matching OldLines/NewLines", hi)
			}
			for li := range h.OldLines {
				if h.OldLines[li] != h.NewLines[li] {
					return fmt.Errorf("hunk[%d]: OpEqual requires OldLines==NewLines", hi)
				}
			}
		case OpInsert:
			if len(h.OldLines) != 0 || len(h.NewLines) == 0 {
				return fmt.Errorf("hunk[%d]: OpInsert requires empty OldLines and non-empty NewLines", hi)
			}
		case OpDelete:
			if len(h.OldLines) == 0 || len(h.NewLines) != 0 {
				return fmt.Errorf("hunk[%d]: OpDelete requires non-empty OldLines and empty NewLines", hi)
			}
		case OpReplace:
			if len(h.OldLines) == 0 || len(h.NewLines) == 0 {
				return fmt.Errorf("hunk[%d]: OpReplace requires non-empty OldLines and NewLines", hi)
			}
		}
		for _, ln := range h.OldLines {
			oldConcat.WriteString(ln)
		}
		for _, ln := range h.NewLines {
			newConcat.WriteString(ln)
		}
	}

	if d.OldText != oldConcat.String() {
		return fmt.Errorf("diff: hunks do not reconstruct OldText")
	}
	if d.NewText != newConcat.String() {
		return fmt.Errorf("diff: hunks do not reconstruct NewText")
	}
	return nil
}
