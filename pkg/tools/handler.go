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

package tools

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kraklabs/sgsearch/pkg/sourcegraph"
)

// ToolSearch is the name of the only tool served.
const ToolSearch = "search"

// Handler runs tool calls against a Sourcegraph searcher.
type Handler struct {
	searcher sourcegraph.Searcher
	logger   *slog.Logger
}

// NewHandler creates a Handler. A nil logger discards log output.
func NewHandler(searcher sourcegraph.Searcher, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{searcher: searcher, logger: logger}
}

// Call dispatches a tool invocation by name.
//
// A returned error means the invocation itself was invalid (*UnknownToolError
// or *ValidationError). Search failures are reported in the ToolResult.
func (h *Handler) Call(ctx context.Context, name string, args map[string]any) (*ToolResult, error) {
	if name != ToolSearch {
		return nil, &UnknownToolError{Name: name}
	}
	parsed, err := ParseSearchArgs(args)
	if err != nil {
		return nil, err
	}
	return h.Search(ctx, parsed)
}

// Search validates args, runs the query and formats the result set.
func (h *Handler) Search(ctx context.Context, args SearchArgs) (*ToolResult, error) {
	if err := args.Validate(); err != nil {
		return nil, err
	}

	log := h.logger.With(slog.String("request_id", uuid.NewString()))
	query, vars := sourcegraph.BuildQuery(args.Query, args.PatternType, args.Count)
	log.Info("search.start",
		"query", query,
		"pattern_type", vars.PatternType,
		"count", args.Count,
		"timeout", args.Timeout,
	)

	start := time.Now()
	rs, err := h.searcher.Execute(ctx, query, vars, time.Duration(args.Timeout)*time.Second)
	if err != nil {
		var serr *sourcegraph.SearchError
		if errors.As(err, &serr) {
			log.Warn("search.failed", "kind", serr.Kind, "cause", serr.Cause, "duration", time.Since(start))
			return NewError(FailureMessage(serr.Cause)), nil
		}
		log.Error("search.failed", "err", err, "duration", time.Since(start))
		return NewError(FailureMessage(err.Error())), nil
	}

	report := FormatReport(rs, args.Count)
	log.Info("search.done",
		"results", len(rs.Results.Items),
		"lines", len(report.Lines),
		"duration", time.Since(start),
	)
	return NewResult(report.String()), nil
}

// failurePrefix leads every failed-search message.
const failurePrefix = "Search failed: "

// FailureMessage renders cause as "Search failed: <cause>". Causes that
// already carry the prefix are returned unchanged.
func FailureMessage(cause string) string {
	if strings.HasPrefix(cause, failurePrefix) {
		return cause
	}
	return failurePrefix + cause
}
