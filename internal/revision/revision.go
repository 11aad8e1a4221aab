// Package revision renders the difference between two versions of a text as
// an annotated copy of the document for human review. Unchanged lines pass
// through verbatim; removed lines are wrapped in <del> tags and added lines
// in <ins> tags, with removals preceding additions for a replaced block.
package revision

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/redlinehq/redline/internal/diff"
)

// Deletion and insertion markers, applied per line around the line's content
// (the trailing newline stays outside the tags).
const (
	delOpen  = "<del>"
	delClose = "</del>"
	insOpen  = "<ins>"
	insClose = "</ins>"
)

// Render returns old annotated with the changes that produce new. When the
// two inputs are identical the result is old, byte for byte.
func Render(old, new string) string {
	d := diff.DiffText(old, new)

	var b strings.Builder
	b.Grow(len(new) + len(old)/2)
	for _, h := range d.Hunks {
		switch h.Op {
		case diff.OpEqual:
			for _, ln := range h.OldLines {
				b.WriteString(ln)
			}
		case diff.OpDelete:
			writeWrapped(&b, h.OldLines, delOpen, delClose)
		case diff.OpInsert:
			writeWrapped(&b, h.NewLines, insOpen, insClose)
		case diff.OpReplace:
			writeWrapped(&b, h.OldLines, delOpen, delClose)
			writeWrapped(&b, h.NewLines, insOpen, insClose)
		}
	}
	return b.String()
}

// RenderANSI returns a colorized terminal rendering of the same revision.
func RenderANSI(old, new string) string {
	return diff.DiffText(old, new).RenderColored()
}

// RenderHTML converts the annotated revision to an HTML fragment, treating
// the content as markdown. The <del>/<ins> markers pass through as raw
// inline HTML.
func RenderHTML(old, new string) (string, error) {
	md := goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))
	var buf bytes.Buffer
	if err := md.Convert([]byte(Render(old, new)), &buf); err != nil {
		return "", fmt.Errorf("render revision html: %w", err)
	}
	return buf.String(), nil
}

func writeWrapped(b *strings.Builder, lines []string, openTag, closeTag string) {
	for _, ln := range lines {
		core, hadEOL := diff.TrimEOL(ln)
		b.WriteString(openTag)
		b.WriteString(core)
		b.WriteString(closeTag)
		if hadEOL {
			b.WriteString("\n")
		}
	}
}
