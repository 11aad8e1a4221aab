package diff

import "strings"

// Op is an operation from old text to new text.
type Op int

// Operations from old text to new text.
const (
	OpEqual Op = iota
	OpInsert
	OpDelete
	OpReplace
)

// Diff is a diff from old text to new text.
//
// Invariants:
//   - concat(Hunks.OldLines) == OldText
//   - concat(Hunks.NewLines) == NewText
type Diff struct {
	OldText string     // Entire original text.
	NewText string     // Entire revised text.
	Hunks   []DiffHunk // Ordered hunks that cover the whole diff and reconstruct OldText/NewText.
}

// DiffHunk is a contiguous run of lines sharing one operation. Lines retain
// their trailing '\n' (the last line of a text may lack one).
//
// Operations:
//   - OpEqual: OldLines and NewLines are identical
//   - OpInsert: OldLines is empty, NewLines is not
//   - OpDelete: OldLines is not empty, NewLines is
//   - OpReplace: both are non-empty
type DiffHunk struct {
	Op       Op
	OldLines []string
	NewLines []string
}

// defaultEOL is the EOL ('\n').
//
// This constant exists because the design may change to allow configurable
// EOLs (maybe Windows needs "\r\n"), and this provides a nice hook to find
// callsites.
const defaultEOL = "\n"

// TrimEOL removes a trailing newline from line if present, reporting whether
// it did.
func TrimEOL(line string) (string, bool) {
	if strings.HasSuffix(line, defaultEOL) {
		return line[:len(line)-len(defaultEOL)], true
	}
	return line, false
}

// splitPreserveEOL splits text into lines, preserving the newline on each
// line except possibly the last.
func splitPreserveEOL(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for {
		idx := strings.Index(text, defaultEOL)
		if idx == -1 {
			if text != "" {
				lines = append(lines, text)
			}
			break
		}
		lines = append(lines, text[:idx+len(defaultEOL)])
		text = text[idx+len(defaultEOL):]
		if text == "" {
			break
		}
	}
	return lines
}
