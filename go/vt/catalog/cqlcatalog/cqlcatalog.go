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

// Package cqlcatalog loads catalog metadata from the system_schema keyspace
// of a Cassandra cluster.
package cqlcatalog

import (
	"context"
	"maps"
	"slices"
	"strings"

	gocql "github.com/apache/cassandra-gocql-driver/v2"

	"github.com/vikasyadav15/crossdata/go/vt/catalog"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
)

// Iter iterates over the rows of a query result. *gocql.Iter implements it.
type Iter interface {
	Scan(dest ...any) bool
	Close() error
}

// Querier runs a CQL query.
type Querier interface {
	Query(stmt string, values ...any) Iter
}

// QuerierFunc adapts a function to Querier.
type QuerierFunc func(stmt string, values ...any) Iter

// Query implements Querier.
func (f QuerierFunc) Query(stmt string, values ...any) Iter {
	return f(stmt, values...)
}

// SessionQuerier runs queries on a gocql session.
func SessionQuerier(session *gocql.Session) Querier {
	return QuerierFunc(func(stmt string, values ...any) Iter {
		return session.Query(stmt, values...).Iter()
	})
}

const (
	keyspaceQuery = "SELECT keyspace_name FROM system_schema.keyspaces WHERE keyspace_name = ?"
	tablesQuery   = "SELECT table_name FROM system_schema.tables WHERE keyspace_name = ?"
	columnsQuery  = "SELECT table_name, column_name, type, kind, position FROM system_schema.columns WHERE keyspace_name = ?"
	indexesQuery  = "SELECT table_name, index_name, kind, options FROM system_schema.indexes WHERE keyspace_name = ?"

	// classNameOption holds the implementing class of a custom index.
	classNameOption = "class_name"
)

// Loader implements catalog.Loader on top of system_schema.
type Loader struct {
	q Querier
}

var _ catalog.Loader = (*Loader)(nil)

// NewLoader returns a loader reading through q.
func NewLoader(q Querier) *Loader {
	return &Loader{q: q}
}

type columnRow struct {
	column   catalog.Column
	kind     string
	position int
}

// kindRank orders columns the way DESCRIBE TABLE does.
var kindRank = map[string]int{
	"partition_key": 0,
	"clustering":    1,
	"static":        2,
	"regular":       3,
}

// LoadKeyspace implements catalog.Loader.
func (l *Loader) LoadKeyspace(ctx context.Context, keyspace string) ([]*catalog.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	iter := l.q.Query(keyspaceQuery, keyspace)
	var name string
	found := iter.Scan(&name)
	if err := iter.Close(); err != nil {
		return nil, vterrors.Wrapf(err, "failed to fetch keyspace %s", keyspace)
	}
	if !found {
		return nil, &catalog.NotFoundError{Kind: catalog.KindKeyspace, Name: keyspace}
	}

	tables := make(map[string]*catalog.Table)
	iter = l.q.Query(tablesQuery, keyspace)
	var tableName string
	for iter.Scan(&tableName) {
		tables[tableName] = &catalog.Table{Keyspace: keyspace, Name: tableName}
	}
	if err := iter.Close(); err != nil {
		return nil, vterrors.Wrapf(err, "failed to fetch tables of %s", keyspace)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	columns := make(map[string][]columnRow)
	iter = l.q.Query(columnsQuery, keyspace)
	var colName, colType, kind string
	var position int
	for iter.Scan(&tableName, &colName, &colType, &kind, &position) {
		columns[tableName] = append(columns[tableName], columnRow{
			column:   catalog.Column{Name: colName, Type: colType},
			kind:     kind,
			position: position,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, vterrors.Wrapf(err, "failed to fetch columns of %s", keyspace)
	}
	for table, rows := range columns {
		t, ok := tables[table]
		if !ok {
			continue
		}
		slices.SortStableFunc(rows, func(a, b columnRow) int {
			if d := kindRank[a.kind] - kindRank[b.kind]; d != 0 {
				return d
			}
			if d := a.position - b.position; d != 0 {
				return d
			}
			return strings.Compare(a.column.Name, b.column.Name)
		})
		for _, row := range rows {
			t.Columns = append(t.Columns, row.column)
		}
	}

	iter = l.q.Query(indexesQuery, keyspace)
	var indexName, indexKind string
	var options map[string]string
	for iter.Scan(&tableName, &indexName, &indexKind, &options) {
		t, ok := tables[tableName]
		if !ok {
			continue
		}
		// gocql reuses the map between rows.
		optsCopy := maps.Clone(options)
		t.Indexes = append(t.Indexes, catalog.Index{
			Name:    indexName,
			Kind:    indexKind,
			Class:   optsCopy[classNameOption],
			Options: optsCopy,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, vterrors.Wrapf(err, "failed to fetch indexes of %s", keyspace)
	}

	result := slices.Collect(maps.Values(tables))
	slices.SortFunc(result, func(a, b *catalog.Table) int { return strings.Compare(a.Name, b.Name) })
	for _, t := range result {
		slices.SortFunc(t.Indexes, func(a, b catalog.Index) int { return strings.Compare(a.Name, b.Name) })
	}
	return result, nil
}
