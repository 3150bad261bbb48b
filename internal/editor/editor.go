// Package editor launches the user's text editor on a post.
package editor

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/internal/logging"
)

// ErrNoEditor indicates the editor setting is blank after splitting.
var ErrNoEditor = errors.New("no editor configured")

// Command builds the editor invocation for path.
// $EDITOR and $VISUAL may carry arguments ("code --wait"); they are split on
// whitespace and path is appended.
func Command(ctx context.Context, path string) (*exec.Cmd, error) {
	fields := strings.Fields(detectEditor())
	if len(fields) == 0 {
		return nil, ErrNoEditor
	}
	args := append(fields[1:], path)
	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// Open runs the editor on path and waits for it to exit.
func Open(ctx context.Context, path string) error {
	cmd, err := Command(ctx, path)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Debug("opening editor", "editor", cmd.Path, "path", path)
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", cmd.Args[0])
	}
	return nil
}

// detectEditor picks the editor: $EDITOR, then $VISUAL, then nano if
// installed, then vi.
func detectEditor() string {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}
	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
