// Package logging provides structured logging for the folio CLI using slog.
//
// The package supports both text and JSON output formats, verbosity-driven
// log levels (including a TRACE level below DEBUG), a colorized handler for
// terminals, and helpers for testing. All loggers are based on the standard
// library's [log/slog] package.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbose),
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("selected posts", "count", len(posts))
//
// # Context
//
// Commands attach the configured logger to their context with [NewContext]
// and library code retrieves it with [FromContext], which falls back to
// [slog.Default].
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
