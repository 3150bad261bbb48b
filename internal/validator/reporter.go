package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/folio/internal/errors"
)

// Format specifies the output format for reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter writes results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, format: format}
}

// Report writes result in the reporter's format.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}
	if r.format == FormatJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(result), "encoding JSON report")
	}
	r.reportText(result)
	return nil
}

// reportText lists issues grouped by file, in first-seen file order,
// followed by a one-line summary.
func (r *Reporter) reportText(result *Result) {
	var order []string
	byPath := map[string][]Issue{}
	for _, i := range result.Issues {
		if _, ok := byPath[i.Path]; !ok {
			order = append(order, i.Path)
		}
		byPath[i.Path] = append(byPath[i.Path], i)
	}

	for _, path := range order {
		fmt.Fprintln(r.out, color.New(color.Bold).Sprint(path))
		for _, i := range byPath[path] {
			r.printIssue(i)
		}
		fmt.Fprintln(r.out)
	}

	errs, warns := len(result.Filter(SeverityError)), len(result.Filter(SeverityWarning))
	switch {
	case errs > 0:
		fmt.Fprintf(r.out, "%s, %d warning(s) in %d file(s)\n",
			color.RedString("%d error(s)", errs), warns, result.Checked)
	case warns > 0:
		fmt.Fprintf(r.out, "%s in %d file(s)\n",
			color.YellowString("%d warning(s)", warns), result.Checked)
	default:
		fmt.Fprintln(r.out, color.GreenString("✓ %d file(s) checked, no problems", result.Checked))
	}
}

func (r *Reporter) printIssue(i Issue) {
	var label string
	switch i.Severity {
	case SeverityError:
		label = color.RedString("error")
	case SeverityWarning:
		label = color.YellowString("warn ")
	default:
		label = color.CyanString("info ")
	}

	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(label)
	sb.WriteString("  ")
	if i.Field != "" {
		sb.WriteString(i.Field)
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)

	if i.Value != nil {
		v := fmt.Sprintf("%v", i.Value)
		if len(v) > 50 {
			v = v[:47] + "..."
		}
		sb.WriteString(color.New(color.FgHiBlack).Sprintf(" [%s]", v))
	}

	fmt.Fprintln(r.out, sb.String())
}
