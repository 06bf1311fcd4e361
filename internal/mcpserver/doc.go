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

// Package mcpserver exposes the sgsearch tools over the Model Context
// Protocol.
//
// The server registers a single tool, "search", whose input schema mirrors
// tools.SearchArgs. Calls are decoded into a loose argument map and handed to
// tools.Handler, which owns validation and formatting. Invalid invocations
// (unknown tool, bad arguments) surface as protocol errors; failed searches
// come back as a text result with IsError set.
package mcpserver
