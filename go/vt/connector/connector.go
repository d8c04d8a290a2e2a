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

// Package connector defines the contract between the engine and the
// connectors that talk to data stores.
//
// A Connector manages connections to the clusters of the data stores it
// declares in its Descriptor and exposes up to three capability engines:
// a StorageEngine executing plan steps, a QueryEngine running queries and a
// MetadataEngine reading catalog metadata. A connector that lacks a
// capability returns ErrUnsupported from the matching getter.
package connector

import (
	"context"
	"slices"

	"google.golang.org/grpc/codes"

	"github.com/vikasyadav15/crossdata/go/vt/catalog"
	"github.com/vikasyadav15/crossdata/go/vt/names"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
	"github.com/vikasyadav15/crossdata/go/vt/vtgate/engine"
)

// ErrUnsupported is returned by the engine getters of a connector that does
// not provide the capability.
var ErrUnsupported = vterrors.NewErrorf(codes.Unimplemented, vterrors.NotSupportedYet, "operation not supported by connector")

// Descriptor describes a connector.
type Descriptor struct {
	Name    names.ConnectorName
	Version string
	// DataStores lists the data stores the connector can talk to. Several
	// connectors may declare the same data store.
	DataStores []names.DataStoreName
	// RequiredProperties must be present in the cluster options passed to
	// Connect.
	RequiredProperties []string
	OptionalProperties []string
}

// Clone returns a deep copy of d.
func (d Descriptor) Clone() Descriptor {
	d.DataStores = slices.Clone(d.DataStores)
	d.RequiredProperties = slices.Clone(d.RequiredProperties)
	d.OptionalProperties = slices.Clone(d.OptionalProperties)
	return d
}

// Supports reports whether the connector declares ds.
func (d Descriptor) Supports(ds names.DataStoreName) bool {
	return slices.Contains(d.DataStores, ds)
}

// Credentials authenticate a connection.
type Credentials struct {
	Username string
	Password string
}

// ClusterConfig is the configuration of one cluster connection.
type ClusterConfig struct {
	Name names.ClusterName
	// ClusterOptions describe the cluster, e.g. its hosts.
	ClusterOptions map[string]string
	// ConnectorOptions tune the connector for this cluster.
	ConnectorOptions map[string]string
}

// Result is the result of a query.
type Result struct {
	Columns []string
	Rows    []map[string]any
}

// StorageEngine executes plan steps.
type StorageEngine interface {
	Execute(ctx context.Context, cluster names.ClusterName, step *engine.Step) error
}

// QueryEngine runs native queries.
type QueryEngine interface {
	Query(ctx context.Context, cluster names.ClusterName, keyspace, query string) (*Result, error)
}

// MetadataEngine reads catalog metadata.
type MetadataEngine interface {
	LoadKeyspace(ctx context.Context, cluster names.ClusterName, keyspace string) ([]*catalog.Table, error)
}

// Connector is implemented by every connector.
type Connector interface {
	// Descriptor returns a copy of the connector descriptor.
	Descriptor() Descriptor
	// Connect opens a connection to cfg.Name. Connecting to an already
	// connected cluster replaces the previous connection.
	Connect(ctx context.Context, creds Credentials, cfg ClusterConfig) error
	// IsConnected reports whether a connection to cluster is open.
	IsConnected(cluster names.ClusterName) bool
	// Close closes the connection to cluster.
	Close(cluster names.ClusterName) error
	// Shutdown closes every connection.
	Shutdown() error

	StorageEngine() (StorageEngine, error)
	QueryEngine() (QueryEngine, error)
	MetadataEngine() (MetadataEngine, error)
}

// RequireProperties checks that options contains a non-empty value for each
// key. The error lists every missing key.
func RequireProperties(cluster names.ClusterName, options map[string]string, keys ...string) error {
	var missing []string
	for _, key := range keys {
		if options[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return NewConnectionError(cluster, nil, "missing required properties %v", missing)
}
