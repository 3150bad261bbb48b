// Package frontmatter parses and formats the metadata block at the top of
// Markdown content files.
//
// Two block styles are recognized, chosen by the opening delimiter line:
//
//	---            +++
//	title: Hello   title = "Hello"
//	---            +++
//
// "---" blocks are YAML (gopkg.in/yaml.v3) and "+++" blocks are TOML
// (github.com/pelletier/go-toml/v2). The closing delimiter must match the
// opening one, except that a YAML block may also end with the "..."
// document end marker. Both LF and CRLF line endings are handled.
//
// # Basic Usage
//
//	var meta map[string]any
//	if err := frontmatter.ParseHeader(f, &meta); err != nil {
//		return err
//	}
//
// [ParseHeader] stops reading at the closing delimiter, so only the header of
// a large page is consumed. [Parse] and [MustParse] also return the body.
//
// # Error Handling
//
//   - [ErrMissingFrontmatter]: MustParse found no opening delimiter
//   - [ErrUnterminated]: an opening delimiter has no matching close
//   - [ErrInvalidMatter]: the block did not decode as YAML/TOML
package frontmatter
