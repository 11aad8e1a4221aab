package editengine

import "strings"

// punctuationFolds maps typographic and full-width punctuation to the ASCII
// equivalent used for lenient comparison. The set is closed on purpose:
// folding is a compatibility behavior, not general unicode normalization.
var punctuationFolds = map[rune]rune{
	'，': ',',
	'。': '.',
	'：': ':',
	'；': ';',
	'！': '!',
	'？': '?',
	'“': '"',
	'”': '"',
	'‘': '\'',
	'’': '\'',
	'（': '(',
	'）': ')',
}

func isFoldableSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '　':
		return true
	}
	return false
}

// Normalize folds text into its canonical comparison form: every run of
// whitespace becomes a single ASCII space, and punctuation listed in
// punctuationFolds becomes its ASCII equivalent. Everything else passes
// through unchanged.
//
// The returned position map has one entry per rune of the normalized text:
// posMap[i] is the byte offset in text of the rune that produced normalized
// rune i (the first rune of the run, for collapsed whitespace). Entries are
// non-decreasing, so slicing the original between mapped offsets is always
// valid.
func Normalize(text string) (string, []int) {
	var b strings.Builder
	b.Grow(len(text))
	posMap := make([]int, 0, len(text))

	inSpace := false
	for i, r := range text {
		if isFoldableSpace(r) {
			if inSpace {
				continue
			}
			inSpace = true
			b.WriteByte(' ')
			posMap = append(posMap, i)
			continue
		}
		inSpace = false
		if folded, ok := punctuationFolds[r]; ok {
			b.WriteRune(folded)
		} else {
			b.WriteRune(r)
		}
		posMap = append(posMap, i)
	}
	return b.String(), posMap
}
