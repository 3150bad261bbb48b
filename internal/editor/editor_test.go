package editor

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
)

func TestDetectEditor(t *testing.T) {
	tests := []struct {
		name   string
		editor string
		visual string
		want   string
	}{
		{"editor wins", "nvim", "code", "nvim"},
		{"visual when editor empty", "", "code", "code"},
		{"blank editor treated as unset", "   ", "vscode", "vscode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.editor)
			t.Setenv("VISUAL", tt.visual)
			if got := detectEditor(); got != tt.want {
				t.Errorf("detectEditor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectEditor_Fallback(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")

	want := "vi"
	if _, err := exec.LookPath("nano"); err == nil {
		want = "nano"
	}
	if got := detectEditor(); got != want {
		t.Errorf("detectEditor() = %q, want %q", got, want)
	}
}

func TestCommand_SplitsArguments(t *testing.T) {
	t.Setenv("EDITOR", "code --wait")

	cmd, err := Command(t.Context(), "post.md")
	if err != nil {
		t.Fatalf("Command() error = %v", err)
	}
	if want := []string{"code", "--wait", "post.md"}; !slices.Equal(cmd.Args, want) {
		t.Errorf("Args = %v, want %v", cmd.Args, want)
	}
}

func TestOpen(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the editor")
	}

	dir := t.TempDir()
	mock := filepath.Join(dir, "mock-editor.sh")
	out := filepath.Join(dir, "args.txt")
	script := "#!/bin/sh\necho \"$@\" > " + out + "\n"
	if err := os.WriteFile(mock, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EDITOR", mock+" --wait")

	target := filepath.Join(dir, "post.md")
	if err := Open(t.Context(), target); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(got)) != "--wait "+target {
		t.Errorf("editor args = %q, want %q", got, "--wait "+target)
	}
}

func TestOpen_MissingEditor(t *testing.T) {
	t.Setenv("EDITOR", "non-existent-binary-12345")

	if err := Open(t.Context(), "post.md"); err == nil {
		t.Error("expected error for missing editor")
	}
}
