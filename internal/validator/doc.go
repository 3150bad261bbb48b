// Package validator collects and reports content problems.
//
// A [Result] holds [Issue] values, each tied to a file and optionally a
// frontmatter field. Errors block publishing; warnings and notes do not.
//
//	result := &validator.Result{}
//	result.AddError(path, "date", "is required", nil)
//	if result.HasErrors() {
//		validator.NewReporter(os.Stdout, validator.FormatText).Report(result)
//	}
package validator
