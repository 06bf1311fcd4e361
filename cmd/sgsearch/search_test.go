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
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/sgsearch/internal/errors"
	sgtest "github.com/kraklabs/sgsearch/internal/testing"
	"github.com/kraklabs/sgsearch/pkg/sourcegraph"
	"github.com/kraklabs/sgsearch/pkg/tools"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExecuteSearch_Report(t *testing.T) {
	backend := sgtest.NewFakeBackend(t, sgtest.RespondSearch(sgtest.SearchPayload(
		sgtest.FileMatchJSON("cmd/app/main.go", "acme/app", "func main() {"),
		sgtest.RepositoryJSON("acme/lib", "Shared helpers"),
	)))
	client := sourcegraph.NewClient(backend.URL(), "test-token")

	var buf bytes.Buffer
	args := tools.DefaultSearchArgs("main")
	err := executeSearch(context.Background(), &buf, client, discardLogger(), args, false)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Found 2 results:")
	assert.Contains(t, out, "1. cmd/app/main.go\n   Repository: acme/app\n   Line 1: func main() {")
	assert.Contains(t, out, "2. Repository: acme/lib\n   Shared helpers")

	req := backend.LastRequest(t)
	assert.Equal(t, "main count:10", req.Body.Variables["query"])
	assert.Equal(t, "token test-token", req.Authorization)
}

func TestExecuteSearch_JSON(t *testing.T) {
	backend := sgtest.NewFakeBackend(t, sgtest.RespondSearch(sgtest.SearchPayload(
		sgtest.CommitJSON("0123456789abcdef", "Fix the build", "Ada"),
	)))
	client := sourcegraph.NewClient(backend.URL(), "test-token")

	args := tools.SearchArgs{Query: `func\s+main`, PatternType: sourcegraph.PatternRegexp, Count: 3, Timeout: 10}
	var buf bytes.Buffer
	require.NoError(t, executeSearch(context.Background(), &buf, client, discardLogger(), args, true))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, `func\s+main count:3`, got["query"])
	assert.Equal(t, "regexp", got["pattern_type"])
	assert.EqualValues(t, 3, got["count"])
	assert.NotNil(t, got["result"])
}

func TestExecuteSearch_Errors(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		kind     sourcegraph.ErrorKind
		fixMatch string
	}{
		{
			name:     "rejected token",
			handler:  sgtest.RespondStatus(http.StatusUnauthorized, `{"error":"bad token"}`),
			kind:     sourcegraph.KindHTTP,
			fixMatch: "SOURCEGRAPH_TOKEN",
		},
		{
			name:     "unknown endpoint",
			handler:  sgtest.RespondStatus(http.StatusNotFound, "not found"),
			kind:     sourcegraph.KindHTTP,
			fixMatch: "SOURCEGRAPH_URL",
		},
		{
			name:     "graphql error",
			handler:  sgtest.RespondGraphQLErrors("invalid query"),
			kind:     sourcegraph.KindGraphQL,
			fixMatch: "query syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := sgtest.NewFakeBackend(t, tt.handler)
			client := sourcegraph.NewClient(backend.URL(), "test-token")

			var buf bytes.Buffer
			err := executeSearch(context.Background(), &buf, client, discardLogger(), tools.DefaultSearchArgs("main"), false)
			require.Error(t, err)
			assert.Empty(t, buf.String())

			var ue *errors.UserError
			require.True(t, stderrors.As(err, &ue))
			assert.Equal(t, errors.ExitNetwork, ue.ExitCode)
			assert.Contains(t, ue.Fix, tt.fixMatch)

			var se *sourcegraph.SearchError
			require.True(t, stderrors.As(err, &se))
			assert.Equal(t, tt.kind, se.Kind)
		})
	}
}

func TestExecuteSearch_JSONErrorIsSearchError(t *testing.T) {
	backend := sgtest.NewFakeBackend(t, sgtest.RespondStatus(http.StatusBadGateway, "bad gateway"))
	client := sourcegraph.NewClient(backend.URL(), "test-token")

	err := executeSearch(context.Background(), io.Discard, client, discardLogger(), tools.DefaultSearchArgs("main"), true)

	var se *sourcegraph.SearchError
	require.True(t, stderrors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)

	var ue *errors.UserError
	assert.False(t, stderrors.As(err, &ue))
}
