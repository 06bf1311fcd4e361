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

// ErrorKind classifies a SearchError.
type ErrorKind string

const (
	// KindHTTP is a non-2xx HTTP status.
	KindHTTP ErrorKind = "http"
	// KindTimeout means no response arrived within the search timeout.
	KindTimeout ErrorKind = "timeout"
	// KindGraphQL is a response with a non-empty "errors" array.
	KindGraphQL ErrorKind = "graphql"
	// KindOther covers connection, encoding and decoding failures.
	KindOther ErrorKind = "other"
)

// SearchError is the single error type returned by Client.Execute.
//
// Cause is a human-readable description that starts with the failure class,
// for example "HTTP error: status 502: bad gateway" or
// "GraphQL errors: [{\"message\":\"invalid syntax\"}]".
type SearchError struct {
	Kind ErrorKind

	// Cause is shown to the caller as-is.
	Cause string

	// StatusCode is set for KindHTTP.
	StatusCode int

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *SearchError) Error() string {
	return e.Cause
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *SearchError) Unwrap() error {
	return e.Err
}
