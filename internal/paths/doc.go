// Package paths resolves the filesystem locations folio reads and writes.
//
// User configuration follows the XDG Base Directory Specification through
// github.com/adrg/xdg, so the config file lives at
// $XDG_CONFIG_HOME/folio/config.yaml (~/.config/folio/config.yaml on Linux).
package paths
