package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/folio/internal/errors"
)

// AppName names the per-user configuration directory.
const AppName = "folio"

// DefaultDirPerm is the permission for directories folio creates.
const DefaultDirPerm = 0o755

// ErrInvalidPath indicates the provided path is malformed or escapes its root.
var ErrInvalidPath = errors.New("invalid path")

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns folio's directory under the XDG config home.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// EnsureDir creates path and any missing parents.
// If perm is 0, DefaultDirPerm is used. Existing directories are left alone.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return errors.Wrapf(os.MkdirAll(path, perm), "creating directory %s", path)
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Within joins name onto root and rejects results outside root.
func Within(root, name string) (string, error) {
	if strings.ContainsRune(name, '\x00') {
		return "", errors.Wrapf(ErrInvalidPath, "%q", name)
	}
	joined := filepath.Join(root, name)
	rel, err := filepath.Rel(root, joined)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Wrapf(ErrInvalidPath, "%s escapes %s", name, root)
	}
	return joined, nil
}
