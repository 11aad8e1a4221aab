package diff

import "strings"

// RenderColored returns the full document with changes highlighted for
// terminals: unchanged lines as-is, deletions on a pink background prefixed
// "-", insertions on a green background prefixed "+". Replaced blocks show
// all deletions before all insertions.
//
// The output contains ANSI 256-color escape sequences and is not a
// machine-readable diff.
func (d Diff) RenderColored() string {
	// Colors (ANSI).
	const (
		reset     = "\x1b[0m"
		blackFG   = "\x1b[30m"
		pinkLine  = "\x1b[48;5;224m" // light pink for deleted lines
		greenLine = "\x1b[48;5;194m" // light green for added lines
	)

	trim := func(s string) string {
		core, _ := TrimEOL(s)
		return core
	}

	var out []string
	for _, h := range d.Hunks {
		switch h.Op {
		case OpEqual:
			for _, ln := range h.OldLines {
				out = append(out, trim(ln))
			}
		case OpDelete:
			for _, ln := range h.OldLines {
				out = append(out, blackFG+pinkLine+"-"+trim(ln)+reset)
			}
		case OpInsert:
			for _, ln := range h.NewLines {
				out = append(out, blackFG+greenLine+"+"+trim(ln)+reset)
			}
		case OpReplace:
			for _, ln := range h.OldLines {
				out = append(out, blackFG+pinkLine+"-"+trim(ln)+reset)
			}
			for _, ln := range h.NewLines {
				out = append(out, blackFG+greenLine+"+"+trim(ln)+reset)
			}
		}
	}
	return strings.Join(out, defaultEOL)
}
