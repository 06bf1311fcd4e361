// Copyright 2025 KrakLabs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package sourcegraph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// DefaultBaseURL is the public Sourcegraph instance.
const DefaultBaseURL = "https://sourcegraph.com"

// graphQLPath is appended to the base URL for every request.
const graphQLPath = "/.api/graphql"

// maxErrorBody caps how much of a failed response body ends up in an error.
const maxErrorBody = 512

// Searcher is the interface for executing Sourcegraph searches.
// Client implements it; tests substitute their own.
type Searcher interface {
	Execute(ctx context.Context, query string, vars Variables, timeout time.Duration) (*SearchResultSet, error)
}

// Client provides access to the Sourcegraph GraphQL API.
//
// A Client holds only immutable configuration. Every Execute call builds its
// own HTTP client, so one Client can serve concurrent searches.
type Client struct {
	BaseURL     string
	AccessToken string
}

// NewClient creates a new Sourcegraph client.
func NewClient(baseURL, accessToken string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		AccessToken: accessToken,
	}
}

// GraphQLURL returns the GraphQL endpoint of the configured instance.
func (c *Client) GraphQLURL() string {
	return strings.TrimRight(c.BaseURL, "/") + graphQLPath
}

type graphQLRequest struct {
	Query     string    `json:"query"`
	Variables Variables `json:"variables"`
}

type graphQLResponse struct {
	Data *struct {
		Search *SearchResultSet `json:"search"`
	} `json:"data"`
	Errors []json.RawMessage `json:"errors"`
}

// Execute runs one search and returns the "search" field of the response.
//
// The request is bounded by timeout and sent exactly once. All failures are
// returned as *SearchError.
func (c *Client) Execute(ctx context.Context, query string, vars Variables, timeout time.Duration) (*SearchResultSet, error) {
	start := time.Now()
	result, err := c.execute(ctx, query, vars, timeout)
	observeSearch(err, time.Since(start))
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) execute(ctx context.Context, query string, vars Variables, timeout time.Duration) (*SearchResultSet, error) {
	vars.Query = query

	base := http.DefaultTransport.(*http.Transport).Clone()
	defer base.CloseIdleConnections()

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: c.AccessToken,
				TokenType:   "token",
			}),
			Base: base,
		},
	}

	reqBody, err := json.Marshal(graphQLRequest{Query: SearchDocument, Variables: vars})
	if err != nil {
		return nil, &SearchError{Kind: KindOther, Cause: fmt.Sprintf("Search failed: encode request: %v", err), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GraphQLURL(), bytes.NewReader(reqBody))
	if err != nil {
		return nil, &SearchError{Kind: KindOther, Cause: fmt.Sprintf("Search failed: %v", err), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, transportError(err, timeout)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err, timeout)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &SearchError{
			Kind:       KindHTTP,
			StatusCode: resp.StatusCode,
			Cause:      fmt.Sprintf("HTTP error: status %d: %s", resp.StatusCode, excerpt(body)),
		}
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &SearchError{Kind: KindOther, Cause: fmt.Sprintf("Search failed: parse response: %v", err), Err: err}
	}

	if len(envelope.Errors) > 0 {
		payload, _ := json.Marshal(envelope.Errors)
		return nil, &SearchError{Kind: KindGraphQL, Cause: "GraphQL errors: " + string(payload)}
	}

	if envelope.Data == nil || envelope.Data.Search == nil {
		return nil, &SearchError{Kind: KindOther, Cause: "Search failed: response has no search data"}
	}

	return envelope.Data.Search, nil
}

// transportError maps a send or read failure to a timeout or generic SearchError.
func transportError(err error, timeout time.Duration) *SearchError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &SearchError{
			Kind:  KindTimeout,
			Cause: fmt.Sprintf("Search timeout after %s seconds", strconv.FormatFloat(timeout.Seconds(), 'f', -1, 64)),
			Err:   err,
		}
	}
	return &SearchError{Kind: KindOther, Cause: fmt.Sprintf("Search failed: %v", err), Err: err}
}

func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "..."
	}
	return s
}
