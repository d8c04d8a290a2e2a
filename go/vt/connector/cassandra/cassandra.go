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

// Package cassandra implements the Cassandra connector: it executes plan
// steps as CQL statements, runs queries and reads catalog metadata from
// system_schema.
package cassandra

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"google.golang.org/grpc/codes"

	"github.com/vikasyadav15/crossdata/go/vt/catalog"
	"github.com/vikasyadav15/crossdata/go/vt/catalog/cqlcatalog"
	"github.com/vikasyadav15/crossdata/go/vt/connector"
	"github.com/vikasyadav15/crossdata/go/vt/log"
	"github.com/vikasyadav15/crossdata/go/vt/names"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
	"github.com/vikasyadav15/crossdata/go/vt/vtgate/engine"
)

const (
	// Name is the name of the connector.
	Name names.ConnectorName = "CassandraConnector"
	// DataStore is the data store served by the connector.
	DataStore names.DataStoreName = "Cassandra"

	// PropHosts is a comma separated list of contact points.
	PropHosts       = "hosts"
	PropPort        = "port"
	PropConsistency = "consistency"
	PropTimeout     = "timeout"

	version = "0.1.0"
)

var consistencies = map[string]gocql.Consistency{
	"ANY":          gocql.Any,
	"ONE":          gocql.One,
	"TWO":          gocql.Two,
	"THREE":        gocql.Three,
	"QUORUM":       gocql.Quorum,
	"ALL":          gocql.All,
	"LOCAL_QUORUM": gocql.LocalQuorum,
	"EACH_QUORUM":  gocql.EachQuorum,
	"LOCAL_ONE":    gocql.LocalOne,
}

// Settings are the parsed connection settings of a cluster.
type Settings struct {
	Hosts       []string
	Port        int
	Consistency gocql.Consistency
	Timeout     time.Duration
	Credentials connector.Credentials
}

// Session is the part of a Cassandra session used by the connector. ctx
// bounds the request sent to the cluster.
type Session interface {
	Exec(ctx context.Context, stmt string) error
	MapScan(ctx context.Context, stmt string) (columns []string, rows []map[string]any, err error)
	Querier() cqlcatalog.Querier
	Close()
}

// SessionFactory opens a session bound to keyspace, or to no keyspace when
// keyspace is empty.
type SessionFactory func(settings Settings, keyspace string) (Session, error)

// Connector is the Cassandra connector.
type Connector struct {
	newSession SessionFactory
	clusters   connector.Sessions[*clusterSessions]
}

var (
	_ connector.Connector      = (*Connector)(nil)
	_ connector.StorageEngine  = (*Connector)(nil)
	_ connector.QueryEngine    = (*Connector)(nil)
	_ connector.MetadataEngine = (*Connector)(nil)
)

// New returns a connector opening gocql sessions.
func New() *Connector {
	return NewWithFactory(newGocqlSession)
}

// NewWithFactory returns a connector opening sessions through factory.
func NewWithFactory(factory SessionFactory) *Connector {
	return &Connector{newSession: factory}
}

// Descriptor implements connector.Connector.
func (c *Connector) Descriptor() connector.Descriptor {
	return connector.Descriptor{
		Name:               Name,
		Version:            version,
		DataStores:         []names.DataStoreName{DataStore},
		RequiredProperties: []string{PropHosts},
		OptionalProperties: []string{PropPort, PropConsistency, PropTimeout},
	}
}

// ParseSettings validates and parses the options of a cluster.
func ParseSettings(cluster names.ClusterName, options map[string]string, creds connector.Credentials) (Settings, error) {
	if err := connector.RequireProperties(cluster, options, PropHosts); err != nil {
		return Settings{}, err
	}
	settings := Settings{
		Port:        9042,
		Consistency: gocql.Quorum,
		Timeout:     10 * time.Second,
		Credentials: creds,
	}
	for _, host := range strings.Split(options[PropHosts], ",") {
		if host = strings.TrimSpace(host); host != "" {
			settings.Hosts = append(settings.Hosts, host)
		}
	}
	if len(settings.Hosts) == 0 {
		return Settings{}, connector.NewConnectionError(cluster, nil, "no hosts in %q", options[PropHosts])
	}
	if v := options[PropPort]; v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			return Settings{}, connector.NewConnectionError(cluster, nil, "invalid port %q", v)
		}
		settings.Port = port
	}
	if v := options[PropConsistency]; v != "" {
		consistency, ok := consistencies[strings.ToUpper(v)]
		if !ok {
			return Settings{}, connector.NewConnectionError(cluster, nil, "invalid consistency %q", v)
		}
		settings.Consistency = consistency
	}
	if v := options[PropTimeout]; v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return Settings{}, connector.NewConnectionError(cluster, err, "invalid timeout %q", v)
		}
		settings.Timeout = timeout
	}
	return settings, nil
}

// Connect implements connector.Connector. A session without keyspace is
// opened right away; keyspace sessions are opened on first use.
func (c *Connector) Connect(ctx context.Context, creds connector.Credentials, cfg connector.ClusterConfig) error {
	defer connector.RecordConnect(Name, cfg.Name, time.Now())
	log.Infof("Connecting to %s: cluster options %v, connector options %v", cfg.Name, cfg.ClusterOptions, cfg.ConnectorOptions)

	if err := ctx.Err(); err != nil {
		return err
	}
	settings, err := ParseSettings(cfg.Name, cfg.ClusterOptions, creds)
	if err != nil {
		return err
	}
	base, err := c.newSession(settings, "")
	if err != nil {
		return connector.NewConnectionError(cfg.Name, err, "cannot connect to %v", settings.Hosts)
	}
	cs := &clusterSessions{
		settings:   settings,
		newSession: c.newSession,
		base:       base,
		byKeyspace: make(map[string]Session),
	}
	if previous, replaced := c.clusters.Put(cfg.Name, cs); replaced {
		previous.close()
	}
	return nil
}

// IsConnected implements connector.Connector.
func (c *Connector) IsConnected(cluster names.ClusterName) bool {
	_, ok := c.clusters.Get(cluster)
	return ok
}

// Close implements connector.Connector.
func (c *Connector) Close(cluster names.ClusterName) error {
	cs, ok := c.clusters.Take(cluster)
	if !ok {
		return connector.NotConnected(cluster)
	}
	cs.close()
	log.Infof("Disconnected from cluster %s", cluster)
	return nil
}

// Shutdown implements connector.Connector.
func (c *Connector) Shutdown() error {
	log.Infof("Shutting down %s", Name)
	for _, cs := range c.clusters.TakeAll() {
		cs.close()
	}
	return nil
}

// StorageEngine implements connector.Connector.
func (c *Connector) StorageEngine() (connector.StorageEngine, error) { return c, nil }

// QueryEngine implements connector.Connector.
func (c *Connector) QueryEngine() (connector.QueryEngine, error) { return c, nil }

// MetadataEngine implements connector.Connector.
func (c *Connector) MetadataEngine() (connector.MetadataEngine, error) { return c, nil }

// Execute implements connector.StorageEngine.
func (c *Connector) Execute(ctx context.Context, cluster names.ClusterName, step *engine.Step) error {
	if step.Backend != engine.Cassandra {
		return vterrors.Errorf(codes.InvalidArgument, "%s cannot execute %s steps", Name, step.Backend)
	}
	session, err := c.session(ctx, cluster, step.Keyspace)
	if err != nil {
		return err
	}
	if log.V(1) {
		log.Infof("Executing on %s: %s", cluster, step.Query)
	}
	if err := session.Exec(ctx, step.Query); err != nil {
		return vterrors.Wrapf(err, "failed to execute %q", step.Query)
	}
	return nil
}

// Query implements connector.QueryEngine.
func (c *Connector) Query(ctx context.Context, cluster names.ClusterName, keyspace, query string) (*connector.Result, error) {
	session, err := c.session(ctx, cluster, keyspace)
	if err != nil {
		return nil, err
	}
	columns, rows, err := session.MapScan(ctx, query)
	if err != nil {
		return nil, vterrors.Wrapf(err, "failed to run %q", query)
	}
	return &connector.Result{Columns: columns, Rows: rows}, nil
}

// LoadKeyspace implements connector.MetadataEngine.
func (c *Connector) LoadKeyspace(ctx context.Context, cluster names.ClusterName, keyspace string) ([]*catalog.Table, error) {
	session, err := c.session(ctx, cluster, "")
	if err != nil {
		return nil, err
	}
	return cqlcatalog.NewLoader(session.Querier()).LoadKeyspace(ctx, keyspace)
}

// Loader returns a catalog.Loader reading the metadata of cluster.
func (c *Connector) Loader(cluster names.ClusterName) catalog.Loader {
	return loaderFunc(func(ctx context.Context, keyspace string) ([]*catalog.Table, error) {
		return c.LoadKeyspace(ctx, cluster, keyspace)
	})
}

type loaderFunc func(ctx context.Context, keyspace string) ([]*catalog.Table, error)

func (f loaderFunc) LoadKeyspace(ctx context.Context, keyspace string) ([]*catalog.Table, error) {
	return f(ctx, keyspace)
}

func (c *Connector) session(ctx context.Context, cluster names.ClusterName, keyspace string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cs, ok := c.clusters.Get(cluster)
	if !ok {
		return nil, connector.NotConnected(cluster)
	}
	session, err := cs.get(keyspace)
	if err != nil {
		return nil, connector.NewConnectionError(cluster, err, "cannot open session for keyspace %s", keyspace)
	}
	return session, nil
}

// clusterSessions holds the sessions of one cluster.
type clusterSessions struct {
	settings   Settings
	newSession SessionFactory
	base       Session

	mu         sync.Mutex
	byKeyspace map[string]Session
}

func (cs *clusterSessions) get(keyspace string) (Session, error) {
	if keyspace == "" {
		return cs.base, nil
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if s, ok := cs.byKeyspace[keyspace]; ok {
		return s, nil
	}
	s, err := cs.newSession(cs.settings, keyspace)
	if err != nil {
		return nil, err
	}
	cs.byKeyspace[keyspace] = s
	return s, nil
}

func (cs *clusterSessions) close() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for keyspace, s := range cs.byKeyspace {
		s.Close()
		delete(cs.byKeyspace, keyspace)
	}
	cs.base.Close()
}
