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

// Package prometheusbackend exports the variables of the stats package as
// Prometheus collectors.
package prometheusbackend

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vikasyadav15/crossdata/go/stats"
	"github.com/vikasyadav15/crossdata/go/vt/log"
)

// PromBackend implements PullBackend using Prometheus as the backing metrics storage.
type PromBackend struct {
	namespace  string
	registerer prometheus.Registerer
}

// Init initializes the Prometheus backend with the given namespace and
// serves the default registry on /metrics.
func Init(namespace string) {
	http.Handle("/metrics", promhttp.Handler())
	InitWithRegisterer(prometheus.DefaultRegisterer, namespace)
}

// InitWithRegisterer exports every current and future stats variable to reg.
func InitWithRegisterer(reg prometheus.Registerer, namespace string) *PromBackend {
	be := &PromBackend{namespace: namespace, registerer: reg}
	stats.Register(be.publishPrometheusMetric)
	return be
}

// publishPrometheusMetric is used to publish the metric to Prometheus.
func (be *PromBackend) publishPrometheusMetric(name string, v stats.Variable) {
	var collector prometheus.Collector
	switch st := v.(type) {
	case *stats.CountersWithMultiLabels:
		collector = &metricWithMultiLabelsCollector{
			cml: st,
			desc: prometheus.NewDesc(
				be.buildPromName(name),
				st.Help(),
				labelsToSnake(st.Labels()),
				nil),
		}
	case *stats.Timings:
		collector = &timingsCollector{
			t: st,
			desc: prometheus.NewDesc(
				be.buildPromName(name),
				st.Help(),
				[]string{normalizeMetric(st.Label())},
				nil),
		}
	default:
		log.Warningf("Not exporting to Prometheus an unsupported metric type of %T: %s", st, name)
		return
	}
	if err := be.registerer.Register(collector); err != nil {
		log.Errorf("Failed to register Prometheus collector for %s: %v", name, err)
	}
}

// buildPromName specifies the namespace as a prefix to the metric name
func (be *PromBackend) buildPromName(name string) string {
	s := strings.TrimPrefix(normalizeMetric(name), be.namespace+"_")
	return prometheus.BuildFQName("", be.namespace, s)
}

func labelsToSnake(labels []string) []string {
	output := make([]string, len(labels))
	for i, l := range labels {
		output[i] = normalizeMetric(l)
	}
	return output
}

// normalizeMetric produces a compliant name by applying
// special case conversions and then applying a camel case to snake case converter.
func normalizeMetric(name string) string {
	// Special cases
	r := strings.NewReplacer("CQL", "cql", "DDL", "ddl")
	name = r.Replace(name)

	return stats.GetSnakeName(name)
}
