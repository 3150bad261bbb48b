package scaffold

import (
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/folio/internal/errors"
)

// TypePost is the frontmatter type of generated posts.
const TypePost = "post"

// DefaultHide lists the theme elements hidden on a post unless overridden.
var DefaultHide = []string{"navigation"}

// ErrInvalidDate indicates a date string is not an ISO calendar date.
var ErrInvalidDate = errors.New("invalid date")

// Day is a calendar date. The zero Day means "not set".
type Day struct {
	time.Time
}

// NewDay returns the calendar date of t, stored as UTC midnight.
func NewDay(t time.Time) Day {
	y, m, d := t.Date()
	return Day{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDay parses an ISO "YYYY-MM-DD" date.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return Day{}, errors.Wrapf(ErrInvalidDate, "%q is not in YYYY-MM-DD form", s)
	}
	return Day{t}, nil
}

// String returns the date as YYYY-MM-DD.
func (d Day) String() string {
	return d.Format(time.DateOnly)
}

// Long returns the date as "January 02, 2006".
func (d Day) Long() string {
	return d.Format("January 02, 2006")
}

// MarshalYAML writes the day as a bare YAML timestamp (2023-01-01).
func (d Day) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!timestamp", Value: d.String()}, nil
}

// UnmarshalYAML reads a YYYY-MM-DD scalar.
func (d *Day) UnmarshalYAML(n *yaml.Node) error {
	day, err := ParseDay(n.Value)
	if err != nil {
		return err
	}
	*d = day
	return nil
}

// Post is the frontmatter of a new post. Fields are declared in the order
// they are written.
type Post struct {
	Date        Day      `yaml:"date"`
	Description string   `yaml:"description"`
	Hide        []string `yaml:"hide"`
	Tags        []string `yaml:"tags"`
	Title       string   `yaml:"title"`
	Type        string   `yaml:"type"`
}

// Normalize returns a copy of p with defaults applied: the date of now when
// no date is set, DefaultHide when Hide is empty, type "post" and an empty
// tag list. Title and description are trimmed; blank tags are dropped.
func (p Post) Normalize(now time.Time) Post {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)

	if p.Date.IsZero() {
		p.Date = NewDay(now)
	}
	if len(p.Hide) == 0 {
		p.Hide = slices.Clone(DefaultHide)
	}
	if p.Type == "" {
		p.Type = TypePost
	}

	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	p.Tags = tags

	return p
}

// Slug returns the file name stem for p.
func (p Post) Slug() string {
	return Slugify(p.Title)
}
