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

package names

// Prefixes of the first-level entities.
const (
	ClusterPrefix   = "cluster"
	ConnectorPrefix = "connector"
	DataStorePrefix = "datastore"
	NodePrefix      = "node"
)

// ClusterName names a cluster of a data store.
type ClusterName string

// QualifiedName returns "cluster.<name>".
func (n ClusterName) QualifiedName() string {
	return ClusterPrefix + "." + string(n)
}

// ConnectorName names a connector implementation.
type ConnectorName string

// QualifiedName returns "connector.<name>".
func (n ConnectorName) QualifiedName() string {
	return ConnectorPrefix + "." + string(n)
}

// DataStoreName names a kind of data store, e.g. Cassandra.
type DataStoreName string

// QualifiedName returns "datastore.<name>".
func (n DataStoreName) QualifiedName() string {
	return DataStorePrefix + "." + string(n)
}

// NodeName names a node of the engine.
type NodeName string

// QualifiedName returns "node.<name>".
func (n NodeName) QualifiedName() string {
	return NodePrefix + "." + string(n)
}
