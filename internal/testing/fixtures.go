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
	"strings"
)

// FileMatchJSON builds a FileMatch result with one line match per preview,
// numbered from line 1.
func FileMatchJSON(path, repo string, previews ...string) string {
	lines := make([]map[string]any, len(previews))
	for i, p := range previews {
		lines[i] = map[string]any{
			"preview":          p,
			"lineNumber":       i + 1,
			"offsetAndLengths": [][]int{{0, 1}},
		}
	}
	return mustJSON(map[string]any{
		"__typename": "FileMatch",
		"file": map[string]any{
			"name": path[strings.LastIndex(path, "/")+1:],
			"path": path,
			"url":  "/" + repo + "/-/blob/" + path,
		},
		"repository": map[string]any{
			"name": repo,
			"url":  "/" + repo,
		},
		"lineMatches": lines,
	})
}

// RepositoryJSON builds a Repository result.
func RepositoryJSON(name, description string) string {
	return mustJSON(map[string]any{
		"__typename":  "Repository",
		"name":        name,
		"url":         "/" + name,
		"description": description,
	})
}

// CommitJSON builds a CommitSearchResult.
func CommitJSON(oid, message, author string) string {
	return mustJSON(map[string]any{
		"__typename": "CommitSearchResult",
		"commit": map[string]any{
			"oid":     oid,
			"message": message,
			"url":     "/commit/" + oid,
			"author": map[string]any{
				"person": map[string]any{
					"name":  author,
					"email": strings.ToLower(author) + "@example.com",
				},
			},
		},
	})
}

// Status describes the degradation signals of a fixture payload.
type Status struct {
	ApproximateResultCount int
	AlertTitle             string
	Timedout               []string
	Cloning                []string
	Missing                []string
	LimitHit               bool
}

// SearchPayload builds a complete response body holding the given results.
func SearchPayload(results ...string) string {
	return SearchPayloadWith(Status{ApproximateResultCount: len(results)}, results...)
}

// SearchPayloadWith builds a complete response body with explicit status fields.
func SearchPayloadWith(status Status, results ...string) string {
	items := make([]json.RawMessage, len(results))
	for i, r := range results {
		items[i] = json.RawMessage(r)
	}

	var alert any
	if status.AlertTitle != "" {
		alert = map[string]any{"title": status.AlertTitle, "description": ""}
	}

	return mustJSON(map[string]any{
		"data": map[string]any{
			"search": map[string]any{
				"results": map[string]any{
					"results":                items,
					"limitHit":               status.LimitHit,
					"cloning":                repoRefs(status.Cloning),
					"missing":                repoRefs(status.Missing),
					"timedout":               repoRefs(status.Timedout),
					"matchCount":             len(results),
					"approximateResultCount": status.ApproximateResultCount,
					"alert":                  alert,
				},
				"stats": map[string]any{
					"approximateResultCount": status.ApproximateResultCount,
					"sparkline":              []int{},
				},
			},
		},
	})
}

func repoRefs(names []string) []map[string]string {
	refs := make([]map[string]string, len(names))
	for i, n := range names {
		refs[i] = map[string]string{"name": n}
	}
	return refs
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
