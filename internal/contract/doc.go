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

// Package contract holds the argument limits of the search tool.
//
// The limits are shared by the tool adapter, which enforces them, and the
// protocol layer, which publishes them in the tool's input schema.
//
// # Argument Bounds
//
//	count   1..1000, default 10
//	timeout 5..60 seconds, default 10
//
// # Query Size
//
// Queries are capped at DefaultMaxQueryBytes (8 KiB). The cap can be changed
// with the SGSEARCH_MAX_QUERY_BYTES environment variable:
//
//	export SGSEARCH_MAX_QUERY_BYTES=16384
//
// Invalid or non-positive values fall back to the default.
//
//	result := contract.ValidateQuery(query)
//	if !result.OK {
//	    return fmt.Errorf("invalid query: %s", result.Message)
//	}
package contract
