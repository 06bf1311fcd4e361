// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package output writes machine-readable results for the --json flags of the
// sgsearch CLI. Human-readable output lives in the ui package.
//
// # Usage
//
//	if jsonOutput {
//	    return output.JSON(os.Stdout, envelope)
//	}
//
// A failed search is written with Error, which keeps the failure kind so a
// script can tell a timeout from a rejected query:
//
//	{
//	  "error": "Search timeout after 10 seconds",
//	  "kind": "timeout"
//	}
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/kraklabs/sgsearch/pkg/sourcegraph"
)

// JSON writes data as indented JSON followed by a newline.
func JSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

// JSONLine writes data as a single line of JSON.
func JSONLine(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

// ErrorJSON is the JSON form of a failed command.
type ErrorJSON struct {
	Error  string `json:"error"`
	Kind   string `json:"kind,omitempty"`
	Status int    `json:"status,omitempty"`
}

// Error writes err as an ErrorJSON. SearchErrors contribute their kind,
// cause and HTTP status.
func Error(w io.Writer, err error) error {
	obj := ErrorJSON{Error: err.Error()}
	var se *sourcegraph.SearchError
	if errors.As(err, &se) {
		obj.Error = se.Cause
		obj.Kind = string(se.Kind)
		obj.Status = se.StatusCode
	}
	return JSON(w, obj)
}
