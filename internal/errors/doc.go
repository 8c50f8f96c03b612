// Package errors provides error handling conventions for the zedkit CLI.
//
// This package re-exports the wrapping helpers from
// github.com/cockroachdb/errors so callers depend on a single errors
// package, defines sentinel errors for common failure conditions, and
// provides an ExitError type for CLI exit code handling.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, zederrors.ErrNoInstallation) {
//	    // nothing to launch
//	}
//
// # Exit Codes
//
// The package defines standard exit codes for CLI applications:
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, network, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional suggestion
// for CLI applications. It supports error unwrapping via [errors.Unwrap] and
// [errors.As]:
//
//	err := zederrors.NewUserError(zederrors.ErrNoInstallation, "Install Zed from https://zed.dev")
//	var exitErr *zederrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
