// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package contract

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// MinCount and MaxCount bound the number of results per search.
	MinCount     = 1
	MaxCount     = 1000
	DefaultCount = 10

	// MinTimeout and MaxTimeout bound the search timeout, in seconds.
	MinTimeout     = 5
	MaxTimeout     = 60
	DefaultTimeout = 10

	// DefaultMaxQueryBytes is the baseline cap on query length.
	DefaultMaxQueryBytes = 8 << 10 // 8 KiB
)

// MaxQueryBytes returns the effective query size cap.
// Controlled via env SGSEARCH_MAX_QUERY_BYTES; falls back to DefaultMaxQueryBytes.
func MaxQueryBytes() int {
	if v := os.Getenv("SGSEARCH_MAX_QUERY_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxQueryBytes
}

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	OK      bool
	Message string
}

// ValidateQuery checks that a query is non-blank and within MaxQueryBytes.
func ValidateQuery(query string) *ValidationResult {
	if strings.TrimSpace(query) == "" {
		return &ValidationResult{Message: "query is required"}
	}
	if limit := MaxQueryBytes(); len(query) > limit {
		return &ValidationResult{Message: fmt.Sprintf("query exceeds %d bytes", limit)}
	}
	return &ValidationResult{OK: true}
}

// CheckRange validates that v lies in [lo, hi].
func CheckRange(name string, v, lo, hi int) *ValidationResult {
	if v < lo || v > hi {
		return &ValidationResult{Message: fmt.Sprintf("%s must be between %d and %d, got %d", name, lo, hi, v)}
	}
	return &ValidationResult{OK: true}
}
