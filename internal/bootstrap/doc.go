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

// Package bootstrap resolves sgsearch configuration and builds the objects
// every command needs: the logger and the Sourcegraph client.
//
// # Configuration Sources
//
// Settings are read in this order, later sources winning:
//
//   - built-in defaults (https://sourcegraph.com, log level info)
//   - the YAML config file, ~/.sgsearch/config.yaml unless --config is given
//   - the environment: SOURCEGRAPH_URL and SOURCEGRAPH_TOKEN
//
// A missing default config file is not an error; a missing file named with
// --config is. The access token is required: Load returns an
// errors.UserError with ExitConfig when no source provides one.
//
// # Usage
//
//	cfg, err := bootstrap.Load(configPath)
//	if err != nil {
//	    errors.FatalError(err, false)
//	}
//	logger := bootstrap.NewLogger(os.Stderr, cfg.LogLevel)
//	client := bootstrap.NewClient(cfg)
//
// The resolved Config is immutable once loaded and is passed explicitly to
// the constructors that need it.
//
// # Config File
//
//	url: https://sourcegraph.example.com
//	token: sgp_0123456789abcdef
//	metrics_addr: 127.0.0.1:9464
//	log_level: info
package bootstrap
