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
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// RecordedRequest is a request received by FakeBackend.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	Body          GraphQLBody
}

// GraphQLBody is the decoded body of a GraphQL request.
type GraphQLBody struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// FakeBackend is an httptest server that records GraphQL requests.
type FakeBackend struct {
	server  *httptest.Server
	handler http.HandlerFunc

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewFakeBackend starts a fake Sourcegraph server answering with handler.
// The server is closed when the test finishes.
func NewFakeBackend(t *testing.T, handler http.HandlerFunc) *FakeBackend {
	t.Helper()

	b := &FakeBackend{handler: handler}
	b.server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.server.Close)
	return b
}

func (b *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	rec := RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
	}
	if data, err := io.ReadAll(r.Body); err == nil {
		_ = json.Unmarshal(data, &rec.Body)
	}

	b.mu.Lock()
	b.requests = append(b.requests, rec)
	b.mu.Unlock()

	b.handler(w, r)
}

// URL returns the base URL of the fake instance.
func (b *FakeBackend) URL() string {
	return b.server.URL
}

// Calls returns the number of requests received so far.
func (b *FakeBackend) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

// Requests returns a copy of the recorded requests.
func (b *FakeBackend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]RecordedRequest, len(b.requests))
	copy(out, b.requests)
	return out
}

// LastRequest returns the most recent request. It fails the test if there is none.
func (b *FakeBackend) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()
	reqs := b.Requests()
	if len(reqs) == 0 {
		t.Fatal("fake backend received no requests")
	}
	return reqs[len(reqs)-1]
}

// RespondSearch answers every request with status 200 and body.
func RespondSearch(body string) http.HandlerFunc {
	return RespondStatus(http.StatusOK, body)
}

// RespondStatus answers every request with the given status and body.
func RespondStatus(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// RespondGraphQLErrors answers with a GraphQL envelope carrying one error per message.
func RespondGraphQLErrors(messages ...string) http.HandlerFunc {
	errs := make([]map[string]string, len(messages))
	for i, m := range messages {
		errs[i] = map[string]string{"message": m}
	}
	body, _ := json.Marshal(map[string]any{"data": nil, "errors": errs})
	return RespondSearch(string(body))
}

// RespondSlow waits for delay, or until the client goes away, before answering
// with body.
func RespondSlow(delay time.Duration, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
		RespondSearch(body)(w, r)
	}
}
