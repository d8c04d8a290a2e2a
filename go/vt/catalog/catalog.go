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

// Package catalog describes the metadata the engine validates statements
// against: keyspaces, their tables, columns and secondary indexes.
//
// A Catalog is read-only. Snapshot is the in-memory implementation used
// during validation; Cache fills snapshots from a live backend through a
// Loader.
package catalog

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"google.golang.org/grpc/codes"

	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
)

// Catalog gives read access to table metadata.
type Catalog interface {
	// FindTable returns the table, or a *NotFoundError when either the
	// keyspace or the table does not exist.
	FindTable(keyspace, table string) (*Table, error)
	// Tables returns all tables of a keyspace ordered by name.
	Tables(keyspace string) ([]*Table, error)
}

// Column is a column of a table. Type is the CQL type name, e.g. "text".
type Column struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// Index kinds as reported by the backend.
const (
	IndexKindComposites = "COMPOSITES"
	IndexKindCustom     = "CUSTOM"
	IndexKindKeys       = "KEYS"
)

// Index is a secondary index of a table.
type Index struct {
	Name string `yaml:"name" json:"name"`
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"`
	// Class is the implementing class of a custom index.
	Class   string            `yaml:"class,omitempty" json:"class,omitempty"`
	Options map[string]string `yaml:"options,omitempty" json:"options,omitempty"`
}

// Table is the metadata of one table.
type Table struct {
	Keyspace string   `yaml:"-" json:"keyspace"`
	Name     string   `yaml:"name" json:"name"`
	Columns  []Column `yaml:"columns" json:"columns"`
	Indexes  []Index  `yaml:"indexes,omitempty" json:"indexes,omitempty"`
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnWithPrefix returns the first column whose name starts with prefix.
func (t *Table) ColumnWithPrefix(prefix string) (Column, bool) {
	for _, c := range t.Columns {
		if strings.HasPrefix(c.Name, prefix) {
			return c, true
		}
	}
	return Column{}, false
}

// FindIndex looks an index up by name, ignoring case.
func (t *Table) FindIndex(name string) (Index, bool) {
	for _, idx := range t.Indexes {
		if strings.EqualFold(idx.Name, name) {
			return idx, true
		}
	}
	return Index{}, false
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	clone := &Table{
		Keyspace: t.Keyspace,
		Name:     t.Name,
		Columns:  slices.Clone(t.Columns),
		Indexes:  slices.Clone(t.Indexes),
	}
	for i := range clone.Indexes {
		clone.Indexes[i].Options = maps.Clone(clone.Indexes[i].Options)
	}
	return clone
}

// QualifiedName returns "keyspace.table".
func (t *Table) QualifiedName() string {
	return t.Keyspace + "." + t.Name
}

// Kinds of entities reported by NotFoundError.
const (
	KindKeyspace = "keyspace"
	KindTable    = "table"
)

// NotFoundError is returned when a keyspace or table does not exist.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s does not exist", e.Kind, e.Name)
}

// ErrorCode implements vterrors.ErrorWithCode.
func (e *NotFoundError) ErrorCode() codes.Code {
	return codes.NotFound
}

// ErrorState implements vterrors.ErrorWithState.
func (e *NotFoundError) ErrorState() vterrors.State {
	if e.Kind == KindKeyspace {
		return vterrors.BadDb
	}
	return vterrors.NoSuchTable
}
