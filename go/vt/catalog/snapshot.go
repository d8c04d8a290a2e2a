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

package catalog

import (
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
)

// Keyspace groups the tables of one keyspace.
type Keyspace struct {
	Name   string   `yaml:"name"`
	Tables []*Table `yaml:"tables"`
}

type snapshotFile struct {
	Keyspaces []Keyspace `yaml:"keyspaces"`
}

// Snapshot is an immutable, in-memory Catalog. Tables handed out are copies.
type Snapshot struct {
	keyspaces map[string]map[string]*Table
}

var _ Catalog = (*Snapshot)(nil)

// NewSnapshot builds a snapshot from tables, grouping them by keyspace.
func NewSnapshot(tables ...*Table) *Snapshot {
	s := &Snapshot{keyspaces: make(map[string]map[string]*Table)}
	for _, t := range tables {
		s.add(t.Keyspace, t)
	}
	return s
}

// NewSnapshotFromKeyspaces builds a snapshot that also knows about
// keyspaces without tables.
func NewSnapshotFromKeyspaces(keyspaces ...Keyspace) *Snapshot {
	s := &Snapshot{keyspaces: make(map[string]map[string]*Table)}
	for _, ks := range keyspaces {
		if _, ok := s.keyspaces[ks.Name]; !ok {
			s.keyspaces[ks.Name] = make(map[string]*Table)
		}
		for _, t := range ks.Tables {
			s.add(ks.Name, t)
		}
	}
	return s
}

func (s *Snapshot) add(keyspace string, t *Table) {
	tables, ok := s.keyspaces[keyspace]
	if !ok {
		tables = make(map[string]*Table)
		s.keyspaces[keyspace] = tables
	}
	clone := t.Clone()
	clone.Keyspace = keyspace
	tables[t.Name] = clone
}

// FindTable implements Catalog.
func (s *Snapshot) FindTable(keyspace, table string) (*Table, error) {
	tables, ok := s.keyspaces[keyspace]
	if !ok {
		return nil, &NotFoundError{Kind: KindKeyspace, Name: keyspace}
	}
	t, ok := tables[table]
	if !ok {
		return nil, &NotFoundError{Kind: KindTable, Name: keyspace + "." + table}
	}
	return t.Clone(), nil
}

// Tables implements Catalog.
func (s *Snapshot) Tables(keyspace string) ([]*Table, error) {
	tables, ok := s.keyspaces[keyspace]
	if !ok {
		return nil, &NotFoundError{Kind: KindKeyspace, Name: keyspace}
	}
	result := make([]*Table, 0, len(tables))
	for _, t := range tables {
		result = append(result, t.Clone())
	}
	slices.SortFunc(result, func(a, b *Table) int { return strings.Compare(a.Name, b.Name) })
	return result, nil
}

// Keyspaces returns the known keyspace names, sorted.
func (s *Snapshot) Keyspaces() []string {
	names := make([]string, 0, len(s.keyspaces))
	for name := range s.keyspaces {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MarshalYAML renders the snapshot in the snapshot file layout.
func (s *Snapshot) MarshalYAML() (any, error) {
	file := snapshotFile{}
	for _, name := range s.Keyspaces() {
		tables, _ := s.Tables(name)
		file.Keyspaces = append(file.Keyspaces, Keyspace{Name: name, Tables: tables})
	}
	return file, nil
}

// ParseSnapshot reads a snapshot from its YAML representation.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var file snapshotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, vterrors.Wrap(err, "cannot parse catalog snapshot")
	}
	return NewSnapshotFromKeyspaces(file.Keyspaces...), nil
}

// LoadSnapshotFile reads a YAML snapshot file.
func LoadSnapshotFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vterrors.Wrapf(err, "cannot read catalog snapshot %s", path)
	}
	return ParseSnapshot(data)
}

// WriteFile writes the snapshot to path as YAML.
func (s *Snapshot) WriteFile(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return vterrors.Wrap(err, "cannot encode catalog snapshot")
	}
	return os.WriteFile(path, data, 0o644)
}
