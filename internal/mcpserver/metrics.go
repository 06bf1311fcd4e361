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

package mcpserver

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK      = "ok"
	outcomeError   = "error"
	outcomeInvalid = "invalid"
)

// metricsTools holds Prometheus metrics for MCP tool calls.
type metricsTools struct {
	once sync.Once

	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var toolMetrics metricsTools

func (m *metricsTools) init() {
	m.once.Do(func() {
		m.calls = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sgsearch_tool_calls_total",
			Help: "MCP tool calls, by tool and outcome",
		}, []string{"tool", "outcome"})

		m.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sgsearch_tool_call_seconds",
			Help:    "Duration of MCP tool calls",
			Buckets: prometheus.DefBuckets,
		}, []string{"tool"})

		prometheus.MustRegister(m.calls, m.duration)
	})
}

func observeCall(tool, outcome string, d time.Duration) {
	toolMetrics.init()
	toolMetrics.calls.WithLabelValues(tool, outcome).Inc()
	toolMetrics.duration.WithLabelValues(tool).Observe(d.Seconds())
}
