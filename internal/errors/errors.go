// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package errors provides structured error handling for the sgsearch CLI.
//
// UserError carries what went wrong, why it happened and how to fix it,
// together with the exit code the process should use.
//
// # Usage Example
//
//	err := errors.NewConfigError(
//	    "Sourcegraph access token is not set",
//	    "SOURCEGRAPH_TOKEN is empty and the config file has no token",
//	    "Export SOURCEGRAPH_TOKEN or add `token:` to ~/.sgsearch/config.yaml",
//	    nil,
//	)
//	errors.FatalError(err, false)
//	// Output (with colors):
//	// Error: Sourcegraph access token is not set
//	// Cause: SOURCEGRAPH_TOKEN is empty and the config file has no token
//	// Fix:   Export SOURCEGRAPH_TOKEN or add `token:` to ~/.sgsearch/config.yaml
//
// # Exit Codes
//
//   - ExitSuccess (0): Successful execution
//   - ExitConfig (1): Configuration errors (missing token, bad config file)
//   - ExitNetwork (3): Search failures (HTTP, timeout, GraphQL errors)
//   - ExitInput (4): Invalid user input (bad arguments, validation errors)
//   - ExitInternal (10): Internal errors (bugs, panics)
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/kraklabs/sgsearch/pkg/sourcegraph"
)

// Exit codes for different error categories.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitConfig indicates configuration errors (missing token, invalid config file).
	ExitConfig = 1

	// ExitNetwork indicates a failed search (HTTP error, timeout, GraphQL errors).
	ExitNetwork = 3

	// ExitInput indicates invalid user input (bad arguments, validation errors).
	ExitInput = 4

	// ExitInternal indicates internal errors (bugs, unexpected panics).
	// Exit code 10 signals "this is a bug that should be reported".
	ExitInternal = 10
)

// UserError represents an error with structured context for end users.
type UserError struct {
	// Message describes what went wrong in user-friendly language.
	Message string

	// Cause explains why the error occurred (diagnostic information).
	Cause string

	// Fix provides an actionable suggestion on how to resolve the error.
	Fix string

	// ExitCode is the exit code that should be used when exiting due to this error.
	ExitCode int

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error (ExitConfig).
func NewConfigError(msg, cause, fix string, err error) *UserError {
	return &UserError{Message: msg, Cause: cause, Fix: fix, ExitCode: ExitConfig, Err: err}
}

// NewNetworkError creates a search or connectivity error (ExitNetwork).
func NewNetworkError(msg, cause, fix string, err error) *UserError {
	return &UserError{Message: msg, Cause: cause, Fix: fix, ExitCode: ExitNetwork, Err: err}
}

// NewInputError creates an invalid-input error (ExitInput).
func NewInputError(msg, cause, fix string) *UserError {
	return &UserError{Message: msg, Cause: cause, Fix: fix, ExitCode: ExitInput}
}

// NewInternalError creates an internal error (ExitInternal).
func NewInternalError(msg, cause, fix string, err error) *UserError {
	return &UserError{Message: msg, Cause: cause, Fix: fix, ExitCode: ExitInternal, Err: err}
}

// FromSearchError turns a failed search into a UserError with a fix suggestion
// matching the failure kind.
func FromSearchError(se *sourcegraph.SearchError) *UserError {
	fix := "Check that the Sourcegraph instance is reachable and retry"
	switch se.Kind {
	case sourcegraph.KindTimeout:
		fix = "Raise --timeout (max 60) or narrow the query with repo: or file: filters"
	case sourcegraph.KindGraphQL:
		fix = "Check the query syntax; run `sgsearch search --help` for filter examples"
	case sourcegraph.KindHTTP:
		switch se.StatusCode {
		case 401, 403:
			fix = "Check SOURCEGRAPH_TOKEN; the token was rejected by the server"
		case 404:
			fix = "Check SOURCEGRAPH_URL; the GraphQL endpoint was not found"
		}
	}
	return NewNetworkError("Search failed", se.Cause, fix, se)
}

// Color definitions for error output.
var (
	colorError = color.New(color.FgRed, color.Bold)
	colorCause = color.New(color.FgYellow)
	colorFix   = color.New(color.FgGreen)
)

// Format returns a formatted error message with colors.
//
// Output format:
//
//	Error: <message>
//	Cause: <cause>     (only if Cause is non-empty)
//	Fix:   <fix>       (only if Fix is non-empty)
//
// Colors are disabled when noColor is true or NO_COLOR is set.
func (e *UserError) Format(noColor bool) string {
	originalNoColor := color.NoColor
	defer func() { color.NoColor = originalNoColor }()

	if noColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	var out strings.Builder
	out.WriteString(colorError.Sprint("Error: "))
	out.WriteString(e.Message)
	out.WriteString("\n")

	if e.Cause != "" {
		out.WriteString(colorCause.Sprint("Cause: "))
		out.WriteString(e.Cause)
		out.WriteString("\n")
	}

	if e.Fix != "" {
		out.WriteString(colorFix.Sprint("Fix:   "))
		out.WriteString(e.Fix)
		out.WriteString("\n")
	}

	return out.String()
}

// ErrorJSON represents error information in JSON format.
type ErrorJSON struct {
	Error    string `json:"error"`
	Cause    string `json:"cause,omitempty"`
	Fix      string `json:"fix,omitempty"`
	ExitCode int    `json:"exit_code"`
}

// ToJSON converts the UserError to a JSON-serializable structure.
func (e *UserError) ToJSON() ErrorJSON {
	return ErrorJSON{
		Error:    e.Message,
		Cause:    e.Cause,
		Fix:      e.Fix,
		ExitCode: e.ExitCode,
	}
}

// Report writes err to w and returns the exit code it maps to. Errors that
// are not UserErrors map to ExitInternal.
func Report(w io.Writer, err error, jsonOutput bool) int {
	if err == nil {
		return ExitSuccess
	}

	var ue *UserError
	if !stderrors.As(err, &ue) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return ExitInternal
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(ue.ToJSON())
	} else {
		fmt.Fprint(w, ue.Format(false))
	}
	return ue.ExitCode
}

// FatalError prints the error to stderr and exits with the appropriate code.
//
// Usage:
//
//	if err := run(); err != nil {
//	    errors.FatalError(err, jsonMode)
//	}
func FatalError(err error, jsonOutput bool) {
	if err == nil {
		return
	}
	os.Exit(Report(os.Stderr, err, jsonOutput))
}
