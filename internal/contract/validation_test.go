// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package contract

import (
	"strings"
	"testing"
)

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantOK  bool
		wantMsg string
	}{
		{"plain query", "repo:facebook/react useState", true, ""},
		{"empty", "", false, "query is required"},
		{"blank", "   \t", false, "query is required"},
		{"too long", strings.Repeat("a", DefaultMaxQueryBytes+1), false, "exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateQuery(tt.query)
			if got.OK != tt.wantOK {
				t.Fatalf("ValidateQuery().OK = %v, want %v (%s)", got.OK, tt.wantOK, got.Message)
			}
			if !strings.Contains(got.Message, tt.wantMsg) {
				t.Errorf("ValidateQuery().Message = %q, want substring %q", got.Message, tt.wantMsg)
			}
		})
	}
}

func TestMaxQueryBytes_Env(t *testing.T) {
	t.Setenv("SGSEARCH_MAX_QUERY_BYTES", "16")
	if got := MaxQueryBytes(); got != 16 {
		t.Errorf("MaxQueryBytes() = %d, want 16", got)
	}
	if ValidateQuery(strings.Repeat("a", 17)).OK {
		t.Error("expected 17-byte query to exceed a 16-byte cap")
	}

	t.Setenv("SGSEARCH_MAX_QUERY_BYTES", "not-a-number")
	if got := MaxQueryBytes(); got != DefaultMaxQueryBytes {
		t.Errorf("MaxQueryBytes() = %d, want default %d", got, DefaultMaxQueryBytes)
	}
}

func TestCheckRange(t *testing.T) {
	tests := []struct {
		v      int
		wantOK bool
	}{
		{0, false}, {1, true}, {500, true}, {1000, true}, {1001, false},
	}
	for _, tt := range tests {
		got := CheckRange("count", tt.v, MinCount, MaxCount)
		if got.OK != tt.wantOK {
			t.Errorf("CheckRange(%d).OK = %v, want %v", tt.v, got.OK, tt.wantOK)
		}
		if !got.OK && !strings.Contains(got.Message, "count must be between 1 and 1000") {
			t.Errorf("unexpected message %q", got.Message)
		}
	}
}
