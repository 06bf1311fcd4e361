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
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/sgsearch/internal/bootstrap"
	"github.com/kraklabs/sgsearch/internal/contract"
	"github.com/kraklabs/sgsearch/internal/errors"
	"github.com/kraklabs/sgsearch/internal/output"
	"github.com/kraklabs/sgsearch/pkg/sourcegraph"
	"github.com/kraklabs/sgsearch/pkg/tools"
)

// SearchOutput is the --json form of a search.
type SearchOutput struct {
	Query       string                       `json:"query"`
	PatternType string                       `json:"pattern_type"`
	Count       int                          `json:"count"`
	Result      *sourcegraph.SearchResultSet `json:"result"`
}

// runSearch runs one search from the command line.
func runSearch(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	patternType := fs.StringP("pattern-type", "p", sourcegraph.PatternKeyword, "Pattern type: keyword or regexp")
	count := fs.IntP("count", "n", contract.DefaultCount, "Maximum number of results (1-1000)")
	timeout := fs.IntP("timeout", "t", contract.DefaultTimeout, "Search timeout in seconds (5-60)")
	jsonOutput := fs.Bool("json", globals.JSON, "Print the raw result set as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: sgsearch search [options] <query>

Description:
  Run one Sourcegraph search and print the same report the MCP tool returns.
  All remaining arguments are joined into the query.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nQuery syntax:\n%s\n\n", tools.SearchDescription)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	searchArgs := tools.SearchArgs{
		Query:       strings.Join(fs.Args(), " "),
		PatternType: *patternType,
		Count:       *count,
		Timeout:     *timeout,
	}
	if err := searchArgs.Validate(); err != nil {
		errors.FatalError(errors.NewInputError(
			"Invalid search arguments",
			err.Error(),
			"Run 'sgsearch search --help' for usage",
		), *jsonOutput)
	}

	cfg, err := bootstrap.Load(globals.ConfigPath)
	if err != nil {
		errors.FatalError(err, *jsonOutput)
	}

	level := logLevel("warn", globals)
	logger := bootstrap.NewLogger(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = executeSearch(ctx, os.Stdout, bootstrap.NewClient(cfg), logger, searchArgs, *jsonOutput)
	if err == nil {
		return
	}

	var se *sourcegraph.SearchError
	if *jsonOutput && stderrors.As(err, &se) {
		_ = output.Error(os.Stdout, se)
		os.Exit(errors.ExitNetwork)
	}
	errors.FatalError(err, *jsonOutput)
}

// executeSearch runs args against searcher and writes the report, or the raw
// result set when jsonOutput is set, to w.
func executeSearch(ctx context.Context, w io.Writer, searcher sourcegraph.Searcher, logger *slog.Logger, args tools.SearchArgs, jsonOutput bool) error {
	query, vars := sourcegraph.BuildQuery(args.Query, args.PatternType, args.Count)
	logger.Debug("search.start", "query", query, "pattern_type", vars.PatternType, "timeout", args.Timeout)

	start := time.Now()
	rs, err := searcher.Execute(ctx, query, vars, time.Duration(args.Timeout)*time.Second)
	if err != nil {
		var se *sourcegraph.SearchError
		if stderrors.As(err, &se) {
			logger.Debug("search.failed", "kind", se.Kind, "cause", se.Cause)
			if jsonOutput {
				return se
			}
			return errors.FromSearchError(se)
		}
		return errors.NewInternalError("Search failed", err.Error(), "", err)
	}
	logger.Debug("search.done", "results", len(rs.Results.Items), "duration", time.Since(start))

	if jsonOutput {
		return output.JSON(w, SearchOutput{
			Query:       query,
			PatternType: vars.PatternType,
			Count:       args.Count,
			Result:      rs,
		})
	}

	_, err = fmt.Fprintln(w, tools.FormatReport(rs, args.Count))
	return err
}
