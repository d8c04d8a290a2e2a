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

package connector

import (
	"time"

	"github.com/vikasyadav15/crossdata/go/stats"
	"github.com/vikasyadav15/crossdata/go/vt/log"
	"github.com/vikasyadav15/crossdata/go/vt/names"
)

var connectTimings = stats.NewTimings(
	"ConnectorConnectTimings",
	"Time spent connecting to clusters, by connector",
	"Connector")

// RecordConnect records a connect attempt of connector to cluster that
// started at start. Connectors call it, usually deferred, from Connect.
func RecordConnect(connector names.ConnectorName, cluster names.ClusterName, start time.Time) {
	elapsed := time.Since(start)
	connectTimings.Add(string(connector), elapsed)
	log.InfoS("connect", "connector", string(connector), "cluster", string(cluster), "millis", elapsed.Milliseconds())
}

// ConnectCount returns the number of connect attempts recorded for
// connector.
func ConnectCount(connector names.ConnectorName) int64 {
	return connectTimings.Counts()[string(connector)]
}
