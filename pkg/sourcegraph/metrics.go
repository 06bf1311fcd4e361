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

package sourcegraph

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsSearch holds Prometheus metrics for outbound searches.
type metricsSearch struct {
	once sync.Once

	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

var searchMetrics metricsSearch

func (m *metricsSearch) init() {
	m.once.Do(func() {
		m.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sgsearch_search_requests_total",
			Help: "Searches sent to Sourcegraph, by outcome",
		}, []string{"outcome"})

		buckets := []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60}
		m.duration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sgsearch_search_seconds",
			Help:    "Duration of Sourcegraph searches",
			Buckets: buckets,
		})

		prometheus.MustRegister(m.requests, m.duration)
	})
}

// observeSearch records one Execute call. The outcome label is "ok" or the
// SearchError kind.
func observeSearch(err error, d time.Duration) {
	searchMetrics.init()
	outcome := "ok"
	if err != nil {
		outcome = string(KindOther)
		var se *SearchError
		if errors.As(err, &se) {
			outcome = string(se.Kind)
		}
	}
	searchMetrics.requests.WithLabelValues(outcome).Inc()
	searchMetrics.duration.Observe(d.Seconds())
}
