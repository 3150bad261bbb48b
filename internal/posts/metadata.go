package posts

import (
	"maps"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/folio/internal/errors"
)

// Well-known metadata keys.
const (
	KeyType  = "type"
	KeyDate  = "date"
	KeyURL   = "url"
	KeyTitle = "title"
	KeyTags  = "tags"

	// TypePost is the type value that marks a page as a post.
	TypePost = "post"
)

var (
	// ErrMissingDate indicates a post has no date to sort by.
	ErrMissingDate = errors.New("post has no date")

	// ErrInvalidDate indicates a post's date is not a recognized date value.
	ErrInvalidDate = errors.New("post date is not a valid date")
)

// dateLayouts are tried in order for string dates.
var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.RFC3339,
	time.RFC3339Nano,
}

// Metadata is the frontmatter of one page.
// Values are whatever the frontmatter decoder produced; unknown keys pass
// through untouched.
type Metadata map[string]any

// Get returns the value stored under key and whether it was present.
func (m Metadata) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// String returns the value under key if it is a string.
func (m Metadata) String(key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// Type returns the page type, or "" when absent or not a string.
func (m Metadata) Type() string {
	s, _ := m.String(KeyType)
	return s
}

// IsPost reports whether the page is a post.
func (m Metadata) IsPost() bool {
	return m.Type() == TypePost
}

// Title returns the page title, or "".
func (m Metadata) Title() string {
	s, _ := m.String(KeyTitle)
	return s
}

// HasTitle reports whether the title key holds a value. Absent, null and
// empty-string titles count as missing; any other value, string or not, is
// the author's.
func (m Metadata) HasTitle() bool {
	v, ok := m[KeyTitle]
	return ok && v != nil && v != ""
}

// URL returns the resolved URL set by the selector, or "".
func (m Metadata) URL() string {
	s, _ := m.String(KeyURL)
	return s
}

// Tags returns the page tags. A single string is treated as one tag.
func (m Metadata) Tags() []string {
	switch v := m[KeyTags].(type) {
	case []string:
		return v
	case string:
		return []string{v}
	case []any:
		tags := make([]string, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				tags = append(tags, s)
			}
		}
		return tags
	default:
		return nil
	}
}

// Date returns the page date.
// It returns ErrMissingDate when there is no date and ErrInvalidDate when
// the value is neither a time nor a string in a known layout.
func (m Metadata) Date() (time.Time, error) {
	v, ok := m[KeyDate]
	if !ok || v == nil {
		return time.Time{}, ErrMissingDate
	}
	return ParseDate(v)
}

// ParseDate converts a decoded frontmatter value into a time.
// Local (zone-less) dates are interpreted as UTC.
func ParseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d, nil
	case *time.Time:
		if d != nil {
			return *d, nil
		}
	case toml.LocalDate:
		return d.AsTime(time.UTC), nil
	case toml.LocalDateTime:
		return d.AsTime(time.UTC), nil
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, errors.Wrapf(ErrInvalidDate, "%q", d)
	}
	return time.Time{}, errors.Wrapf(ErrInvalidDate, "unsupported value %v (%T)", v, v)
}

// Clone returns a shallow copy of m.
func (m Metadata) Clone() Metadata {
	return maps.Clone(m)
}
