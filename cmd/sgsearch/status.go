// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/sgsearch/internal/bootstrap"
	"github.com/kraklabs/sgsearch/internal/errors"
	"github.com/kraklabs/sgsearch/internal/output"
	"github.com/kraklabs/sgsearch/internal/ui"
	"github.com/kraklabs/sgsearch/pkg/sourcegraph"
	"github.com/kraklabs/sgsearch/pkg/tools"
)

// probeQuery is a cheap search used to check connectivity and the token.
const probeQuery = "type:repo count:1"

// StatusResult is the outcome of a status check.
type StatusResult struct {
	URL        string    `json:"url"`
	Token      string    `json:"token"`
	ConfigPath string    `json:"config_path,omitempty"`
	Connected  bool      `json:"connected"`
	LatencyMS  int64     `json:"latency_ms,omitempty"`
	Error      string    `json:"error,omitempty"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// runStatus prints the resolved configuration and checks the backend.
func runStatus(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	jsonOutput := fs.Bool("json", globals.JSON, "Output as JSON")
	timeout := fs.Duration("timeout", 10*time.Second, "Timeout for the connectivity check")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sgsearch status [options]

Shows the resolved configuration and runs a one-result search to check
that the Sourcegraph instance is reachable and accepts the token.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg, err := bootstrap.Load(globals.ConfigPath)
	if err != nil {
		errors.FatalError(err, *jsonOutput)
	}

	configPath := globals.ConfigPath
	if configPath == "" {
		configPath, _ = bootstrap.DefaultConfigPath()
	}

	ctx := context.Background()
	result := checkStatus(ctx, bootstrap.NewClient(cfg), cfg, *timeout)
	result.ConfigPath = configPath

	if *jsonOutput {
		if err := output.JSON(os.Stdout, result); err != nil {
			errors.FatalError(err, true)
		}
	} else {
		printStatus(os.Stdout, result)
	}

	if !result.Connected {
		os.Exit(errors.ExitNetwork)
	}
}

// checkStatus runs the probe search and records the outcome.
func checkStatus(ctx context.Context, searcher sourcegraph.Searcher, cfg *bootstrap.Config, timeout time.Duration) *StatusResult {
	result := &StatusResult{
		URL:       cfg.URL,
		Token:     cfg.MaskedToken(),
		Timestamp: time.Now().UTC(),
	}

	query, vars := sourcegraph.BuildQuery(probeQuery, sourcegraph.PatternKeyword, 0)
	start := time.Now()
	_, err := searcher.Execute(ctx, query, vars, timeout)
	if err != nil {
		result.Error = err.Error()
		var se *sourcegraph.SearchError
		if stderrors.As(err, &se) {
			result.ErrorKind = string(se.Kind)
		}
		return result
	}

	result.Connected = true
	result.LatencyMS = time.Since(start).Milliseconds()
	return result
}

func printStatus(w io.Writer, r *StatusResult) {
	ui.Header(w, "sgsearch status")
	ui.Field(w, "URL", r.URL)
	ui.Field(w, "Token", r.Token)
	if r.ConfigPath != "" {
		ui.Field(w, "Config", ui.DimText(r.ConfigPath))
	}
	fmt.Fprintln(w)

	if r.Connected {
		ui.Success(w, "Connected to %s (%d ms)", r.URL, r.LatencyMS)
		return
	}
	ui.Failure(w, "%s", tools.FailureMessage(r.Error))
	if r.ErrorKind == string(sourcegraph.KindHTTP) {
		ui.Warning(w, "Check %s and %s", bootstrap.EnvURL, bootstrap.EnvToken)
	}
}
