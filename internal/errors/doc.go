// Package errors provides error handling conventions for the folio CLI.
//
// It re-exports the helpers from github.com/cockroachdb/errors that the rest
// of the module uses (New, Newf, Wrap, Wrapf, Is, As, Mark) so callers only import
// one errors package, and defines an ExitError type carrying a process exit
// code and an optional suggestion for the user.
//
// # Exit Codes
//
//   - ExitSuccess (0): command completed successfully
//   - ExitUser (1): user-related error (bad arguments, invalid configuration)
//   - ExitSystem (2): system-related error (I/O, permissions)
//
// # ExitError
//
// [ExitError] supports unwrapping, so sentinel checks still work through it:
//
//	err := errors.NewUserError(scaffold.ErrInvalidDate, "Use the YYYY-MM-DD format")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
