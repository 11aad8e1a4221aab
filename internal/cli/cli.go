// Package cli wires the edit engine and revision renderer into the redline
// command-line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/redlinehq/redline/internal/editengine"
	"github.com/redlinehq/redline/internal/revision"
	"github.com/redlinehq/redline/internal/simplelogger"
)

// NewRootCmd creates the top-level redline command.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redline",
		Short: "Apply anchor-based edits to text and render revisions",
		Long:  "Redline applies model-proposed edit batches to stored text deterministically and renders old/new revisions for review.",
	}

	cmd.Version = version
	cmd.AddCommand(newApplyCmd())
	cmd.AddCommand(newReviseCmd())

	return cmd
}

// Execute runs the CLI.
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}

func newApplyCmd() *cobra.Command {
	var (
		contentPath  string
		editsPath    string
		accept       []string
		outPath      string
		outcomesPath string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply an edit batch to a content file",
		Long: "Apply reads a content file and a JSON edit batch, resolves each edit's anchor, " +
			"applies the accepted edits, and emits the new text plus a per-edit outcome report.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(contentPath)
			if err != nil {
				return err
			}
			editsData, err := os.ReadFile(editsPath)
			if err != nil {
				return err
			}
			edits, err := editengine.DecodeEdits(editsData)
			if err != nil {
				return err
			}

			var acceptedIDs map[string]bool
			if cmd.Flags().Changed("accept") {
				acceptedIDs = make(map[string]bool, len(accept))
				for _, id := range accept {
					acceptedIDs[id] = true
				}
			}

			applier := &editengine.Applier{Logf: simplelogger.Log}
			newText, outcomes := applier.ApplyEdits(string(content), edits, acceptedIDs)

			report, err := editengine.EncodeOutcomes(outcomes)
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(newText), 0o644); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), newText)
			}
			if outcomesPath != "" {
				return os.WriteFile(outcomesPath, append(report, '\n'), 0o644)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", report)
			return nil
		},
	}

	cmd.Flags().StringVar(&contentPath, "content", "", "path to the content file to edit (required)")
	cmd.Flags().StringVar(&editsPath, "edits", "", "path to the JSON edit batch (required)")
	cmd.Flags().StringSliceVar(&accept, "accept", nil, "edit IDs to accept; everything else is rejected (default: accept all)")
	cmd.Flags().StringVar(&outPath, "out", "", "write the new text here instead of stdout")
	cmd.Flags().StringVar(&outcomesPath, "outcomes", "", "write the outcome report here instead of stderr")
	_ = cmd.MarkFlagRequired("content")
	_ = cmd.MarkFlagRequired("edits")

	return cmd
}

func newReviseCmd() *cobra.Command {
	var (
		asHTML bool
		plain  bool
	)

	cmd := &cobra.Command{
		Use:   "revise <old-file> <new-file>",
		Short: "Render an old/new pair as an annotated revision",
		Long: "Revise renders the difference between two versions of a text as an annotated copy " +
			"of the document: <del>/<ins> line markers, colorized when stdout is a terminal.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldData, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			newData, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			oldText, newText := string(oldData), string(newData)

			switch {
			case asHTML:
				out, err := revision.RenderHTML(oldText, newText)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			case !plain && term.IsTerminal(int(os.Stdout.Fd())):
				fmt.Fprintln(cmd.OutOrStdout(), revision.RenderANSI(oldText, newText))
			default:
				fmt.Fprint(cmd.OutOrStdout(), revision.Render(oldText, newText))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "emit an HTML fragment (markdown-rendered)")
	cmd.Flags().BoolVar(&plain, "plain", false, "force <del>/<ins> markup even on a terminal")

	return cmd
}
