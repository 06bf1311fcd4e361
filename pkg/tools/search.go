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

package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/kraklabs/sgsearch/internal/contract"
	"github.com/kraklabs/sgsearch/pkg/sourcegraph"
)

// Argument names of the search tool.
const (
	ArgQuery       = "query"
	ArgPatternType = "pattern_type"
	ArgCount       = "count"
	ArgTimeout     = "timeout"
)

// Pattern types accepted by the search tool.
var PatternTypes = []string{sourcegraph.PatternKeyword, sourcegraph.PatternRegexp}

// SearchArgs holds the validated arguments of a search.
type SearchArgs struct {
	Query       string
	PatternType string // "keyword" or "regexp"
	Count       int    // maximum number of results shown
	Timeout     int    // seconds
}

// DefaultSearchArgs returns SearchArgs for query with every optional
// argument at its default.
func DefaultSearchArgs(query string) SearchArgs {
	return SearchArgs{
		Query:       query,
		PatternType: sourcegraph.PatternKeyword,
		Count:       contract.DefaultCount,
		Timeout:     contract.DefaultTimeout,
	}
}

// Validate checks every field against the tool schema.
func (a SearchArgs) Validate() error {
	if res := contract.ValidateQuery(a.Query); !res.OK {
		return &ValidationError{Field: ArgQuery, Message: res.Message}
	}
	if !isPatternType(a.PatternType) {
		return &ValidationError{
			Field:   ArgPatternType,
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(PatternTypes, ", "), a.PatternType),
		}
	}
	if res := contract.CheckRange(ArgCount, a.Count, contract.MinCount, contract.MaxCount); !res.OK {
		return &ValidationError{Field: ArgCount, Message: res.Message}
	}
	if res := contract.CheckRange(ArgTimeout, a.Timeout, contract.MinTimeout, contract.MaxTimeout); !res.OK {
		return &ValidationError{Field: ArgTimeout, Message: res.Message}
	}
	return nil
}

// ParseSearchArgs reads loosely typed tool arguments, fills in defaults and
// validates the result. Unrecognized keys are ignored.
func ParseSearchArgs(args map[string]any) (SearchArgs, error) {
	out := DefaultSearchArgs("")

	switch q := args[ArgQuery].(type) {
	case nil:
		return out, &ValidationError{Field: ArgQuery, Message: "query is required"}
	case string:
		out.Query = q
	default:
		return out, &ValidationError{Field: ArgQuery, Message: fmt.Sprintf("must be a string, got %T", q)}
	}

	if v, ok := args[ArgPatternType]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return out, &ValidationError{Field: ArgPatternType, Message: fmt.Sprintf("must be a string, got %T", v)}
		}
		out.PatternType = s
	}

	var err error
	if out.Count, err = intArg(args, ArgCount, out.Count); err != nil {
		return out, err
	}
	if out.Timeout, err = intArg(args, ArgTimeout, out.Timeout); err != nil {
		return out, err
	}

	return out, out.Validate()
}

// intArg reads an integer argument. JSON numbers arrive as float64 and are
// accepted only when integral.
func intArg(args map[string]any, name string, def int) (int, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return def, nil
	}
	notInt := &ValidationError{Field: name, Message: fmt.Sprintf("must be an integer, got %v", v)}
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, notInt
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, notInt
		}
		return int(i), nil
	default:
		return 0, notInt
	}
}

func isPatternType(s string) bool {
	for _, p := range PatternTypes {
		if s == p {
			return true
		}
	}
	return false
}
