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

package cmd

import (
	"context"
	"time"

	"github.com/spf13/pflag"

	"github.com/vikasyadav15/crossdata/go/vt/catalog"
	"github.com/vikasyadav15/crossdata/go/vt/connector"
	"github.com/vikasyadav15/crossdata/go/vt/connector/cassandra"
	"github.com/vikasyadav15/crossdata/go/vt/names"
)

// cliCluster names the single cluster a command connects to.
const cliCluster names.ClusterName = "crossdatactl"

// newCassandraConnector is replaced in tests.
var newCassandraConnector = cassandra.New

type cassandraFlags struct {
	hosts       string
	port        string
	consistency string
	timeout     time.Duration
	username    string
	password    string
}

func (f *cassandraFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.hosts, "cassandra-hosts", "127.0.0.1", "comma separated Cassandra contact points")
	fs.StringVar(&f.port, "cassandra-port", "", "Cassandra native protocol port (default 9042)")
	fs.StringVar(&f.consistency, "cassandra-consistency", "", "consistency level, e.g. QUORUM or LOCAL_ONE")
	fs.DurationVar(&f.timeout, "cassandra-timeout", 0, "timeout of Cassandra requests (default 10s)")
	fs.StringVar(&f.username, "cassandra-username", "", "Cassandra user name")
	fs.StringVar(&f.password, "cassandra-password", "", "Cassandra password")
}

func (f *cassandraFlags) clusterConfig() connector.ClusterConfig {
	options := map[string]string{cassandra.PropHosts: f.hosts}
	if f.port != "" {
		options[cassandra.PropPort] = f.port
	}
	if f.consistency != "" {
		options[cassandra.PropConsistency] = f.consistency
	}
	if f.timeout > 0 {
		options[cassandra.PropTimeout] = f.timeout.String()
	}
	return connector.ClusterConfig{Name: cliCluster, ClusterOptions: options}
}

// connect connects conn to cliCluster.
func (f *cassandraFlags) connect(ctx context.Context, conn *cassandra.Connector) error {
	creds := connector.Credentials{Username: f.username, Password: f.password}
	return conn.Connect(ctx, creds, f.clusterConfig())
}

// liveSnapshot reads keyspaces from the cluster conn is connected to.
func liveSnapshot(ctx context.Context, conn *cassandra.Connector, keyspaces []string) (*catalog.Snapshot, error) {
	cache := catalog.NewCache(conn.Loader(cliCluster), catalog.CacheConfig{Concurrency: catalog.DefaultConcurrency})
	return cache.Snapshot(ctx, keyspaces...)
}
