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
	"encoding/json"
	"strconv"
	"strings"
)

// Unknown is the placeholder for names the backend did not send.
const Unknown = "Unknown"

// GraphQL type names of the result variants.
const (
	TypeFileMatch  = "FileMatch"
	TypeRepository = "Repository"
	TypeCommit     = "CommitSearchResult"
)

// SearchResultSet is the "search" field of a search response.
type SearchResultSet struct {
	Results SearchResults `json:"results"`
	Stats   Stats         `json:"stats"`
}

// SearchResults holds the matches and the degradation signals of one search.
type SearchResults struct {
	Items                  ResultList      `json:"results"`
	LimitHit               bool            `json:"limitHit"`
	Cloning                []RepositoryRef `json:"cloning"`
	Missing                []RepositoryRef `json:"missing"`
	Timedout               []RepositoryRef `json:"timedout"`
	MatchCount             int             `json:"matchCount"`
	ApproximateResultCount ApproxCount     `json:"approximateResultCount"`
	Alert                  *Alert          `json:"alert,omitempty"`
}

// Stats is the top-level statistics block of a search.
type Stats struct {
	ApproximateResultCount ApproxCount `json:"approximateResultCount"`
	Sparkline              []int       `json:"sparkline,omitempty"`
}

// Alert is a backend notice such as "Too many files".
type Alert struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ApproxCount is an approximate result count. The backend sends it either as
// a number or as a string like "500+"; Text keeps the string form.
type ApproxCount struct {
	Value int
	Text  string
}

// UnmarshalJSON accepts numbers, null and strings such as "120", "500+" or "1.2k".
func (c *ApproxCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.Text = s
		c.Value = parseApprox(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	c.Value = int(f)
	return nil
}

// MarshalJSON writes the original string form when there was one.
func (c ApproxCount) MarshalJSON() ([]byte, error) {
	if c.Text != "" {
		return json.Marshal(c.Text)
	}
	return json.Marshal(c.Value)
}

// String renders the count for display.
func (c ApproxCount) String() string {
	if c.Text != "" {
		return c.Text
	}
	return strconv.Itoa(c.Value)
}

// Known reports whether the backend sent a usable count. A string that does
// not parse as a number is not usable.
func (c ApproxCount) Known() bool {
	return c.Value > 0
}

// parseApprox reads a display count like "500+", "1.2k" or "3M". It returns 0
// when s is not a count.
func parseApprox(s string) int {
	s = strings.TrimSuffix(strings.TrimSpace(s), "+")
	mult := 1.0
	switch {
	case strings.HasSuffix(s, "k"), strings.HasSuffix(s, "K"):
		mult, s = 1e3, s[:len(s)-1]
	case strings.HasSuffix(s, "m"), strings.HasSuffix(s, "M"):
		mult, s = 1e6, s[:len(s)-1]
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0
	}
	return int(f * mult)
}

// ResultItem is one entry of the result list: *FileMatch, *Repository,
// *CommitMatch or *UnknownResult.
type ResultItem interface {
	TypeName() string
	isResultItem()
}

// FileMatch is a file with one or more matching lines.
type FileMatch struct {
	Typename    string        `json:"__typename"`
	File        FileInfo      `json:"file"`
	Repository  RepositoryRef `json:"repository"`
	LineMatches []LineMatch   `json:"lineMatches"`
}

// FileInfo identifies a file in a repository.
type FileInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"url,omitempty"`
}

// RepositoryRef names a repository.
type RepositoryRef struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// LineMatch is a single matching line of a file.
type LineMatch struct {
	Preview          string  `json:"preview"`
	LineNumber       int     `json:"lineNumber"`
	OffsetAndLengths [][]int `json:"offsetAndLengths,omitempty"`
}

// Repository is a repository-name match.
type Repository struct {
	Typename    string `json:"__typename"`
	Name        string `json:"name"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

// CommitMatch is a CommitSearchResult.
type CommitMatch struct {
	Typename string `json:"__typename"`
	Commit   Commit `json:"commit"`
}

// Commit is the commit carried by a CommitMatch.
type Commit struct {
	OID     string `json:"oid"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
	Author  Person `json:"author"`
}

// Person is a commit author.
type Person struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// UnknownResult stands in for a result type this package does not know.
type UnknownResult struct {
	Typename string `json:"__typename"`
}

func (*FileMatch) TypeName() string { return TypeFileMatch }
func (*Repository) TypeName() string { return TypeRepository }
func (*CommitMatch) TypeName() string { return TypeCommit }
func (u *UnknownResult) TypeName() string { return u.Typename }

func (*FileMatch) isResultItem() {}
func (*Repository) isResultItem() {}
func (*CommitMatch) isResultItem() {}
func (*UnknownResult) isResultItem() {}

// ResultList decodes the polymorphic result array into ResultItem values.
type ResultList []ResultItem

// UnmarshalJSON dispatches on __typename and fills defaults for missing fields.
// Items are decoded one at a time; an item that does not fit its wire shape
// becomes an *UnknownResult and the rest of the list is kept.
func (l *ResultList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	items := make(ResultList, 0, len(raw))
	for _, elem := range raw {
		var w wireItem
		if err := json.Unmarshal(elem, &w); err != nil {
			items = append(items, &UnknownResult{Typename: peekTypename(elem)})
			continue
		}
		items = append(items, w.decode())
	}
	*l = items
	return nil
}

// peekTypename returns the __typename of a raw item, or Unknown.
func peekTypename(elem json.RawMessage) string {
	var head struct {
		Typename *string `json:"__typename"`
	}
	if err := json.Unmarshal(elem, &head); err != nil {
		return Unknown
	}
	return str(head.Typename, Unknown)
}

// Wire shapes: every field is optional.

type wireItem struct {
	Typename    *string         `json:"__typename"`
	File        *wireFile       `json:"file"`
	Repository  *wireRepository `json:"repository"`
	LineMatches []wireLineMatch `json:"lineMatches"`
	Name        *string         `json:"name"`
	URL         *string         `json:"url"`
	Description *string         `json:"description"`
	Commit      *wireCommit     `json:"commit"`
}

type wireFile struct {
	Name *string `json:"name"`
	Path *string `json:"path"`
	URL  *string `json:"url"`
}

type wireRepository struct {
	Name *string `json:"name"`
	URL  *string `json:"url"`
}

type wireLineMatch struct {
	Preview          *string `json:"preview"`
	LineNumber       *int    `json:"lineNumber"`
	OffsetAndLengths [][]int `json:"offsetAndLengths"`
}

type wireCommit struct {
	OID     *string `json:"oid"`
	Message *string `json:"message"`
	URL     *string `json:"url"`
	Author  *struct {
		Person *struct {
			Name  *string `json:"name"`
			Email *string `json:"email"`
		} `json:"person"`
	} `json:"author"`
}

func (w wireItem) decode() ResultItem {
	typename := str(w.Typename, Unknown)
	switch typename {
	case TypeFileMatch:
		fm := &FileMatch{
			Typename: typename,
			File:     FileInfo{Path: Unknown, Name: Unknown},
			Repository: RepositoryRef{
				Name: Unknown,
			},
		}
		if w.File != nil {
			fm.File = FileInfo{
				Name: str(w.File.Name, Unknown),
				Path: str(w.File.Path, Unknown),
				URL:  str(w.File.URL, ""),
			}
		}
		if w.Repository != nil {
			fm.Repository = RepositoryRef{
				Name: str(w.Repository.Name, Unknown),
				URL:  str(w.Repository.URL, ""),
			}
		}
		for _, lm := range w.LineMatches {
			line := LineMatch{
				Preview:          str(lm.Preview, ""),
				OffsetAndLengths: lm.OffsetAndLengths,
			}
			if lm.LineNumber != nil {
				line.LineNumber = *lm.LineNumber
			}
			fm.LineMatches = append(fm.LineMatches, line)
		}
		return fm

	case TypeRepository:
		return &Repository{
			Typename:    typename,
			Name:        str(w.Name, Unknown),
			URL:         str(w.URL, ""),
			Description: str(w.Description, ""),
		}

	case TypeCommit:
		cm := &CommitMatch{
			Typename: typename,
			Commit:   Commit{OID: Unknown, Author: Person{Name: Unknown}},
		}
		if c := w.Commit; c != nil {
			cm.Commit.OID = str(c.OID, Unknown)
			cm.Commit.Message = str(c.Message, "")
			cm.Commit.URL = str(c.URL, "")
			if c.Author != nil && c.Author.Person != nil {
				cm.Commit.Author = Person{
					Name:  str(c.Author.Person.Name, Unknown),
					Email: str(c.Author.Person.Email, ""),
				}
			}
		}
		return cm

	default:
		return &UnknownResult{Typename: typename}
	}
}

// str dereferences p, returning def for nil or empty values.
func str(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}
