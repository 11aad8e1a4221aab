package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyCommand(t *testing.T) {
	td := t.TempDir()
	contentPath := filepath.Join(td, "content.txt")
	editsPath := filepath.Join(td, "edits.json")
	outPath := filepath.Join(td, "out.txt")
	outcomesPath := filepath.Join(td, "outcomes.json")

	require.NoError(t, os.WriteFile(contentPath, []byte("The cat sat. The dog ran."), 0o644))
	require.NoError(t, os.WriteFile(editsPath, []byte(`[{"type":"replace","anchor":"cat sat","new_text":"cat slept"}]`), 0o644))

	root := NewRootCmd("test")
	root.SetArgs([]string{
		"apply",
		"--content", contentPath,
		"--edits", editsPath,
		"--out", outPath,
		"--outcomes", outcomesPath,
	})
	require.NoError(t, root.Execute())

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "The cat slept. The dog ran.", string(got))

	report, err := os.ReadFile(outcomesPath)
	require.NoError(t, err)
	require.Contains(t, string(report), `"status": "applied"`)
	require.Contains(t, string(report), `"match_method": "exact"`)
}

func TestApplyCommand_AcceptFilter(t *testing.T) {
	td := t.TempDir()
	contentPath := filepath.Join(td, "content.txt")
	editsPath := filepath.Join(td, "edits.json")
	outPath := filepath.Join(td, "out.txt")
	outcomesPath := filepath.Join(td, "outcomes.json")

	require.NoError(t, os.WriteFile(contentPath, []byte("one two three"), 0o644))
	require.NoError(t, os.WriteFile(editsPath, []byte(`[
		{"type":"replace","anchor":"one","new_text":"1"},
		{"type":"replace","anchor":"two","new_text":"2"},
		{"type":"replace","anchor":"three","new_text":"3"}
	]`), 0o644))

	root := NewRootCmd("test")
	root.SetArgs([]string{
		"apply",
		"--content", contentPath,
		"--edits", editsPath,
		"--accept", "e0,e2",
		"--out", outPath,
		"--outcomes", outcomesPath,
	})
	require.NoError(t, root.Execute())

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "1 two 3", string(got))

	report, err := os.ReadFile(outcomesPath)
	require.NoError(t, err)
	require.Contains(t, string(report), `"status": "rejected"`)
}

func TestReviseCommand_Plain(t *testing.T) {
	td := t.TempDir()
	oldPath := filepath.Join(td, "old.txt")
	newPath := filepath.Join(td, "new.txt")
	require.NoError(t, os.WriteFile(oldPath, []byte("a\nb\nc\n"), 0o644))
	require.NoError(t, os.WriteFile(newPath, []byte("a\nx\nc\n"), 0o644))

	var buf bytes.Buffer
	root := NewRootCmd("test")
	root.SetOut(&buf)
	root.SetArgs([]string{"revise", oldPath, newPath, "--plain"})
	require.NoError(t, root.Execute())

	require.Equal(t, "a\n<del>b</del>\n<ins>x</ins>\nc\n", buf.String())
}

func TestReviseCommand_HTML(t *testing.T) {
	td := t.TempDir()
	oldPath := filepath.Join(td, "old.md")
	newPath := filepath.Join(td, "new.md")
	require.NoError(t, os.WriteFile(oldPath, []byte("# Doc\n\nbody\n"), 0o644))
	require.NoError(t, os.WriteFile(newPath, []byte("# Doc\n\nnew body\n"), 0o644))

	var buf bytes.Buffer
	root := NewRootCmd("test")
	root.SetOut(&buf)
	root.SetArgs([]string{"revise", oldPath, newPath, "--html"})
	require.NoError(t, root.Execute())

	require.Contains(t, buf.String(), "<del>body</del>")
	require.Contains(t, buf.String(), "<ins>new body</ins>")
}
