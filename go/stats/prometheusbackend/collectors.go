/*
Copyright 2026 The Crossdata Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package prometheusbackend

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vikasyadav15/crossdata/go/stats"
)

type metricWithMultiLabelsCollector struct {
	cml  *stats.CountersWithMultiLabels
	desc *prometheus.Desc
}

// Describe implements Collector.
func (c *metricWithMultiLabelsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements Collector.
func (c *metricWithMultiLabelsCollector) Collect(ch chan<- prometheus.Metric) {
	for lvs, val := range c.cml.Counts() {
		labelValues := strings.Split(lvs, ".")
		value := float64(val)
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.CounterValue, value, labelValues...)
	}
}

type timingsCollector struct {
	t    *stats.Timings
	desc *prometheus.Desc
}

// Describe implements Collector.
func (c *timingsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements Collector.
func (c *timingsCollector) Collect(ch chan<- prometheus.Metric) {
	for cat, his := range c.t.Histograms() {
		ch <- prometheus.MustNewConstHistogram(
			c.desc,
			uint64(his.Count()),
			float64(his.Total())/float64(time.Second),
			makeCumulativeBuckets(his.Cutoffs(), his.Buckets()),
			cat)
	}
}

// makeCumulativeBuckets converts nanosecond cutoffs and per bucket counts to
// the cumulative, second based buckets Prometheus expects. The overflow
// bucket is implied by the sample count.
func makeCumulativeBuckets(cutoffs, buckets []int64) map[float64]uint64 {
	output := make(map[float64]uint64, len(cutoffs))
	last := uint64(0)
	for i, key := range cutoffs {
		last += uint64(buckets[i])
		output[float64(key)/float64(time.Second)] = last
	}
	return output
}
