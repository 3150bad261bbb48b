package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/thoreinstein/folio/internal/errors"
)

// Severity represents the impact of an issue.
type Severity int

const (
	// SeverityError blocks publishing.
	SeverityError Severity = iota
	// SeverityWarning is worth fixing but does not block.
	SeverityWarning
	// SeverityInfo is a note.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText writes the severity name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a severity name.
func (s *Severity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return errors.Newf("unknown severity %q", b)
	}
	return nil
}

// Issue is a single problem found in a file.
type Issue struct {
	Severity Severity `json:"severity"`
	// Path is the file the issue was found in.
	Path string `json:"path"`
	// Field is the frontmatter key involved, if any.
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	// Value is the offending value, if any.
	Value any `json:"value,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Path)
	sb.WriteString(": ")
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Field != "" {
		sb.WriteString(i.Field)
		sb.WriteString(" ")
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		fmt.Fprintf(&sb, " (got %v)", i.Value)
	}
	return sb.String()
}

// Result aggregates issues, in the order they were added.
type Result struct {
	// Checked is the number of files inspected.
	Checked int     `json:"checked"`
	Issues  []Issue `json:"issues"`
}

func (r *Result) add(sev Severity, path, field, message string, value any) {
	r.Issues = append(r.Issues, Issue{
		Severity: sev,
		Path:     path,
		Field:    field,
		Message:  message,
		Value:    value,
	})
}

// AddError records a blocking issue.
func (r *Result) AddError(path, field, message string, value any) {
	r.add(SeverityError, path, field, message, value)
}

// AddWarning records a non-blocking issue.
func (r *Result) AddWarning(path, field, message string, value any) {
	r.add(SeverityWarning, path, field, message, value)
}

// AddInfo records a note.
func (r *Result) AddInfo(path, field, message string, value any) {
	r.add(SeverityInfo, path, field, message, value)
}

// Filter returns the issues of severity sev.
func (r *Result) Filter(sev Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == sev {
			res = append(res, i)
		}
	}
	return res
}

// HasErrors reports whether any issue is an error.
func (r *Result) HasErrors() bool {
	return r != nil && slices.ContainsFunc(r.Issues, func(i Issue) bool { return i.Severity == SeverityError })
}

// HasWarnings reports whether any issue is a warning.
func (r *Result) HasWarnings() bool {
	return r != nil && slices.ContainsFunc(r.Issues, func(i Issue) bool { return i.Severity == SeverityWarning })
}

// Err returns nil when there are no errors, otherwise an error listing them.
func (r *Result) Err() error {
	errs := r.Filter(SeverityError)
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return errors.Newf("%d error(s):\n%s", len(errs), strings.Join(msgs, "\n"))
}
