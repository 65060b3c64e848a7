package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/ppiankov/msgsweep/internal/model"
)

// Renderer turns a report into human and machine readable output. It
// performs no matching logic; it is pure aggregation and presentation.
type Renderer struct {
	fs            afero.Fs
	out           io.Writer
	includeFooter bool
}

// NewRenderer creates a renderer writing its summary to out and its report
// artifacts through fs.
func NewRenderer(fs afero.Fs, out io.Writer, includeFooter bool) *Renderer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Renderer{
		fs:            fs,
		out:           out,
		includeFooter: includeFooter,
	}
}

// RenderSummary writes the human-readable report: overall counts, one
// id with file:line per likely-dynamic identifier, a bare listing per
// unused identifier, and a success line when nothing is unused.
func (r *Renderer) RenderSummary(report *model.Report) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	fmt.Fprintf(r.out, "Checked %d messages from %s against %d files.\n",
		report.MessageCount, report.CatalogPath, report.FileCount)

	if dynamic := report.Dynamic(); len(dynamic) > 0 {
		fmt.Fprintf(r.out, "\nLikely dynamic (%d):\n", len(dynamic))
		for _, c := range dynamic {
			yellow.Fprintf(r.out, "  %s", c.ID)
			fmt.Fprintf(r.out, "  %s:%d\n", c.Location.Path, c.Location.Line)
		}
	}

	if unused := report.Unused(); len(unused) > 0 {
		fmt.Fprintf(r.out, "\nUnused (%d):\n", len(unused))
		for _, c := range unused {
			red.Fprintf(r.out, "  %s\n", c.ID)
		}
		fmt.Fprintln(r.out)
		red.Fprintf(r.out, "✗ %d unused messages found\n", len(unused))
		return
	}

	fmt.Fprintln(r.out)
	green.Fprintf(r.out, "✓ No unused messages\n")
}

// RenderJSON writes the full report as JSON to path
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := afero.WriteFile(r.fs, path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderMarkdown writes the report as Markdown to path
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Message Usage Report\n\n")
	fmt.Fprintf(&b, "- Catalog: `%s`\n", report.CatalogPath)
	fmt.Fprintf(&b, "- Scanned: %s\n", report.ScannedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- Messages: %d\n", report.MessageCount)
	fmt.Fprintf(&b, "- Files: %d\n\n", report.FileCount)

	fmt.Fprintf(&b, "| State | Count |\n|---|---|\n")
	fmt.Fprintf(&b, "| Used | %d |\n", report.Summary.Used)
	fmt.Fprintf(&b, "| Likely dynamic | %d |\n", report.Summary.Dynamic)
	fmt.Fprintf(&b, "| Unused | %d |\n\n", report.Summary.Unused)

	if dynamic := report.Dynamic(); len(dynamic) > 0 {
		fmt.Fprintf(&b, "## Likely dynamic\n\n")
		for _, c := range dynamic {
			fmt.Fprintf(&b, "- `%s` (%s:%d)\n", c.ID, c.Location.Path, c.Location.Line)
		}
		fmt.Fprintln(&b)
	}

	if unused := report.Unused(); len(unused) > 0 {
		fmt.Fprintf(&b, "## Unused\n\n")
		for _, c := range unused {
			fmt.Fprintf(&b, "- `%s`\n", c.ID)
		}
		fmt.Fprintln(&b)
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\nGenerated by msgsweep.\n")
	}

	if err := afero.WriteFile(r.fs, path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	return nil
}
