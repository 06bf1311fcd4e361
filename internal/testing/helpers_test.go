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

package testing

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFakeBackend_RecordsRequests verifies requests are captured with headers and body.
func TestFakeBackend_RecordsRequests(t *testing.T) {
	backend := NewFakeBackend(t, RespondSearch(SearchPayload()))

	req, err := http.NewRequest(http.MethodPost, backend.URL()+"/.api/graphql",
		strings.NewReader(`{"query":"q","variables":{"query":"foo","version":"V3"}}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "token abc")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	require.Equal(t, 1, backend.Calls())
	rec := backend.LastRequest(t)
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/.api/graphql", rec.Path)
	assert.Equal(t, "token abc", rec.Authorization)
	assert.Equal(t, "foo", rec.Body.Variables["query"])
}

// TestSearchPayloadWith verifies the fixture shape matches the search API.
func TestSearchPayloadWith(t *testing.T) {
	body := SearchPayloadWith(Status{
		ApproximateResultCount: 42,
		AlertTitle:             "Too many files",
		Timedout:               []string{"a", "b"},
	}, RepositoryJSON("github.com/acme/app", "demo"))

	var decoded struct {
		Data struct {
			Search struct {
				Results struct {
					Results  []map[string]any `json:"results"`
					Timedout []map[string]any `json:"timedout"`
					Alert    map[string]any   `json:"alert"`
				} `json:"results"`
				Stats map[string]any `json:"stats"`
			} `json:"search"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))

	res := decoded.Data.Search.Results
	require.Len(t, res.Results, 1)
	assert.Equal(t, "Repository", res.Results[0]["__typename"])
	assert.Len(t, res.Timedout, 2)
	assert.Equal(t, "Too many files", res.Alert["title"])
	assert.EqualValues(t, 42, decoded.Data.Search.Stats["approximateResultCount"])
}

// TestRespondGraphQLErrors verifies the error envelope.
func TestRespondGraphQLErrors(t *testing.T) {
	backend := NewFakeBackend(t, RespondGraphQLErrors("invalid syntax"))

	resp, err := http.Post(backend.URL(), "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"errors":[{"message":"invalid syntax"}]`)
}
