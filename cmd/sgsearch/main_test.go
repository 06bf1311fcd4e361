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
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/sgsearch/internal/errors"
)

func TestWriteCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish"} {
		t.Run(shell, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeCompletion(&buf, shell))

			out := buf.String()
			for _, cmd := range []string{"serve", "search", "status", "init", "completion"} {
				assert.Contains(t, out, cmd)
			}
			assert.Contains(t, out, "pattern-type")
			assert.Contains(t, out, "keyword regexp")
		})
	}
}

func TestWriteCompletion_UnsupportedShell(t *testing.T) {
	var buf bytes.Buffer
	err := writeCompletion(&buf, "powershell")

	var ue *errors.UserError
	require.True(t, stderrors.As(err, &ue))
	assert.Equal(t, errors.ExitInput, ue.ExitCode)
	assert.Contains(t, ue.Cause, "powershell")
	assert.Empty(t, buf.String())
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, "warn", logLevel("warn", GlobalFlags{}))
	assert.Equal(t, "", logLevel("", GlobalFlags{}))
	assert.Equal(t, "debug", logLevel("warn", GlobalFlags{Debug: true}))
}
