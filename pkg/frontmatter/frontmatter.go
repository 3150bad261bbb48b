package frontmatter

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/folio/internal/errors"
)

// Sentinel errors.
var (
	// ErrMissingFrontmatter is returned by MustParse when no frontmatter is found.
	ErrMissingFrontmatter = errors.New("missing frontmatter")

	// ErrUnterminated is returned when an opening delimiter has no closing one.
	ErrUnterminated = errors.New("missing closing frontmatter delimiter")

	// ErrInvalidMatter is returned when the block fails to decode.
	ErrInvalidMatter = errors.New("invalid frontmatter")
)

// maxLineSize bounds a single header line.
const maxLineSize = 1024 * 1024

// Kind identifies the encoding of a frontmatter block.
type Kind int

const (
	// None means the content has no frontmatter block.
	None Kind = iota
	// YAML blocks open with "---" and close with "---" or "...".
	YAML
	// TOML blocks are delimited by "+++".
	TOML
)

func (k Kind) String() string {
	switch k {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return "none"
	}
}

func (k Kind) delimiter() string {
	switch k {
	case YAML:
		return "---"
	case TOML:
		return "+++"
	default:
		return ""
	}
}

// kindOf reports which block an opening line starts.
func kindOf(line string) Kind {
	switch strings.TrimRight(line, " \t\r") {
	case "---":
		return YAML
	case "+++":
		return TOML
	default:
		return None
	}
}

// closes reports whether line ends a block of the given kind. YAML blocks
// may also end with the "..." document end marker.
func (k Kind) closes(line string) bool {
	line = strings.TrimRight(line, " \t\r")
	return line == k.delimiter() || (k == YAML && line == "...")
}

// Parse extracts frontmatter and body content from a reader.
// If no frontmatter is present, matter is left untouched and the full
// content is returned as the body.
func Parse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, false)
}

// MustParse is like Parse but returns ErrMissingFrontmatter if no
// frontmatter is found.
func MustParse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, true)
}

func parse[T any](r io.Reader, matter *T, required bool) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading content")
	}

	kind, block, body, err := split(content)
	if err != nil {
		return nil, err
	}
	if kind == None {
		if required {
			return nil, ErrMissingFrontmatter
		}
		return content, nil
	}

	if err := decode(kind, block, matter); err != nil {
		return nil, err
	}
	return body, nil
}

// split separates content into its frontmatter block and body.
// The body starts on the line after the closing delimiter.
func split(content []byte) (Kind, []byte, []byte, error) {
	firstEnd := bytes.IndexByte(content, '\n')
	if firstEnd < 0 {
		// A lone delimiter line with no newline has no closing delimiter.
		if kindOf(string(content)) != None {
			return None, nil, nil, ErrUnterminated
		}
		return None, nil, nil, nil
	}

	kind := kindOf(string(content[:firstEnd]))
	if kind == None {
		return None, nil, nil, nil
	}

	start := firstEnd + 1
	for pos := start; pos <= len(content); {
		end := bytes.IndexByte(content[pos:], '\n')
		lineEnd := len(content)
		next := len(content)
		if end >= 0 {
			lineEnd = pos + end
			next = lineEnd + 1
		}

		if kind.closes(string(content[pos:lineEnd])) {
			return kind, content[start:pos], content[next:], nil
		}
		if end < 0 {
			break
		}
		pos = next
	}

	return None, nil, nil, ErrUnterminated
}

func decode(kind Kind, block []byte, matter any) error {
	var err error
	switch kind {
	case TOML:
		err = toml.Unmarshal(block, matter)
	default:
		err = yaml.Unmarshal(block, matter)
	}
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "decoding %s frontmatter", kind), ErrInvalidMatter)
	}
	return nil
}

// ParseHeader parses only the frontmatter from the reader.
// It stops reading after the closing delimiter; the body is not consumed.
// Returns nil if no frontmatter is found (matter remains untouched).
func ParseHeader(r io.Reader, matter any) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !scanner.Scan() {
		return errors.Wrap(scanner.Err(), "reading frontmatter")
	}
	kind := kindOf(scanner.Text())
	if kind == None {
		return nil
	}

	var buf bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if kind.closes(line) {
			return decode(kind, buf.Bytes(), matter)
		}
		buf.WriteString(strings.TrimSuffix(line, "\r"))
		buf.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading frontmatter")
	}

	return ErrUnterminated
}

// Detect reports which kind of frontmatter block content starts with.
func Detect(content []byte) Kind {
	line, _, _ := bytes.Cut(content, []byte("\n"))
	return kindOf(string(line))
}

// Format formats content with YAML frontmatter.
// The matter value is serialized to YAML and wrapped in "---" delimiters,
// followed by a blank line and the body content.
func Format(matter any, body string) (out []byte, err error) {
	// yaml encoders panic on unencodable types such as channels
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("encoding frontmatter: %v", r)
		}
	}()

	var buf bytes.Buffer
	buf.WriteString(YAML.delimiter() + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}

	buf.WriteString(YAML.delimiter() + "\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
