package editengine

import (
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

// Fuzzy-tier constants. These are part of the engine's behavioral contract
// with callers that persist outcomes; changing them changes which edits
// succeed on marginal anchors.
const (
	fuzzyThreshold     = 0.85
	fuzzyMaxAnchorLen  = 500
	fuzzyMaxContentLen = 50000
	fuzzyWindowMin     = 0.8
	fuzzyWindowMax     = 1.2
)

var noMatch = Match{Start: -1, End: -1, Method: MatchNone}

// FindAnchor locates the best-matching span of anchor inside original,
// trying strategies in order of decreasing confidence: verbatim substring,
// substring over normalized text, then a bounded fuzzy window scan. It
// returns as soon as a tier succeeds. An empty anchor never matches.
//
// The exact tier takes the first occurrence and does not care whether the
// anchor is unique; ApplyEdits enforces uniqueness for exact matches at
// application time, against the live buffer.
func FindAnchor(original, anchor string) Match {
	return findAnchor(original, anchor, nil)
}

func findAnchor(original, anchor string, logf func(format string, args ...any)) Match {
	if anchor == "" {
		return noMatch
	}

	if idx := strings.Index(original, anchor); idx >= 0 {
		return Match{Start: idx, End: idx + len(anchor), Method: MatchExact}
	}

	normOriginal, posMap := Normalize(original)
	normAnchor, _ := Normalize(anchor)
	if normAnchor != "" {
		if p := strings.Index(normOriginal, normAnchor); p >= 0 {
			start := utf8.RuneCountInString(normOriginal[:p])
			length := utf8.RuneCountInString(normAnchor)
			if logf != nil {
				logf("anchor resolved via normalization at normalized rune %d (len %d)", start, length)
			}
			return remapSpan(original, posMap, start, start+length, MatchNormalized)
		}
	}

	// The fuzzy scan is quadratic-ish; bound it so pathological inputs stay
	// cheap. Larger content must be pre-chunked by the caller.
	if utf8.RuneCountInString(anchor) > fuzzyMaxAnchorLen || utf8.RuneCountInString(original) > fuzzyMaxContentLen {
		return noMatch
	}
	return fuzzyFind(original, normOriginal, posMap, normAnchor, logf)
}

// fuzzyFind slides windows of 80%-120% of the normalized anchor's length over
// the normalized original and keeps the single window whose Ratcliff/Obershelp
// ratio is strictly above fuzzyThreshold. Scan order is smallest window size
// first, then leftmost; a candidate is only displaced by a strictly better
// ratio, so ties keep the first window found. That scan-order tie-break is a
// compatibility contract, not a quality judgment.
func fuzzyFind(original string, normOriginal string, posMap []int, normAnchor string, logf func(format string, args ...any)) Match {
	window := strings.Split(normOriginal, "")
	target := strings.Split(normAnchor, "")
	if len(target) == 0 || len(window) == 0 {
		return noMatch
	}

	minSize := int(float64(len(target)) * fuzzyWindowMin)
	if minSize < 1 {
		minSize = 1
	}
	maxSize := int(float64(len(target)) * fuzzyWindowMax)
	if maxSize > len(window) {
		maxSize = len(window)
	}

	best := fuzzyThreshold
	bestStart, bestEnd := -1, -1

	// difflib indexes its second sequence; keep the anchor there so each
	// window reuses the index.
	m := difflib.NewMatcher(nil, target)
	for size := minSize; size <= maxSize; size++ {
		for i := 0; i+size <= len(window); i++ {
			m.SetSeq1(window[i : i+size])
			// QuickRatio is an upper bound on Ratio, so this filter cannot
			// change which window wins.
			if m.QuickRatio() <= best {
				continue
			}
			if ratio := m.Ratio(); ratio > best {
				best = ratio
				bestStart, bestEnd = i, i+size
			}
		}
	}
	if bestStart < 0 {
		return noMatch
	}
	if logf != nil {
		logf("anchor resolved via fuzzy scan: ratio=%.3f window=[%d,%d)", best, bestStart, bestEnd)
	}
	return remapSpan(original, posMap, bestStart, bestEnd, MatchFuzzy)
}

// remapSpan converts a [start, end) rune span of the normalized text back to
// byte offsets in the original via the position map. An end one past the last
// mapped rune means the span runs to the end of the original.
func remapSpan(original string, posMap []int, start, end int, method MatchMethod) Match {
	origEnd := len(original)
	if end < len(posMap) {
		origEnd = posMap[end]
	}
	return Match{Start: posMap[start], End: origEnd, Method: method}
}
