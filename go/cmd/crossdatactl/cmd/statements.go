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
	"maps"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"google.golang.org/grpc/codes"

	"github.com/vikasyadav15/crossdata/go/vt/catalog"
	"github.com/vikasyadav15/crossdata/go/vt/engineconfig"
	"github.com/vikasyadav15/crossdata/go/vt/names"
	"github.com/vikasyadav15/crossdata/go/vt/statement"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
)

// statementFlags build a statement from command line flags.
type statementFlags interface {
	register(fs *pflag.FlagSet)
	build() (statement.Statement, error)
}

// createIndexFlags describe a CREATE INDEX statement on the command line.
type createIndexFlags struct {
	indexType   string
	name        string
	table       string
	columns     []string
	using       string
	options     string
	ifNotExists bool
}

func (f *createIndexFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.indexType, "type", statement.IndexDefault.String(), "index type: DEFAULT, CUSTOM or LUCENE")
	fs.StringVar(&f.name, "name", "", "index name, optionally qualified by its keyspace")
	fs.StringVar(&f.table, "table", "", "target table, optionally qualified by its keyspace")
	fs.StringSliceVar(&f.columns, "columns", nil, "comma separated target columns")
	fs.StringVar(&f.using, "using", "", "class implementing a CUSTOM index")
	fs.StringVar(&f.options, "options", "", "space separated key=value index options")
	fs.BoolVar(&f.ifNotExists, "if-not-exists", false, "do nothing if the index already exists")
}

func (f *createIndexFlags) build() (statement.Statement, error) {
	typ, err := statement.ParseIndexType(f.indexType)
	if err != nil {
		return nil, err
	}
	ci := &statement.CreateIndex{
		Type:        typ,
		IfNotExists: f.ifNotExists,
		Name:        names.ParseQualifiedName(f.name),
		Table:       names.ParseQualifiedName(f.table),
		Columns:     slices.Clone(f.columns),
		Using:       f.using,
	}
	if f.options != "" {
		opts, err := engineconfig.ParseOptionOverrides(f.options)
		if err != nil {
			return nil, err
		}
		for _, k := range slices.Sorted(maps.Keys(opts)) {
			ci.Options = append(ci.Options, statement.Option{Key: cqlString(k), Value: cqlString(opts[k])})
		}
	}
	return ci, nil
}

// dropIndexFlags describe a DROP INDEX statement on the command line.
type dropIndexFlags struct {
	name     string
	ifExists bool
}

func (f *dropIndexFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "index name, optionally qualified by its keyspace")
	fs.BoolVar(&f.ifExists, "if-exists", false, "do nothing if the index does not exist")
}

func (f *dropIndexFlags) build() (statement.Statement, error) {
	return &statement.DropIndex{IfExists: f.ifExists, Name: names.ParseQualifiedName(f.name)}, nil
}

// statementKeyspaces returns the keyspaces stmt may touch, given the default
// keyspace.
func statementKeyspaces(stmt statement.Statement, def string) []string {
	var keyspaces []string
	add := func(ks string) {
		if ks != "" && !slices.Contains(keyspaces, ks) {
			keyspaces = append(keyspaces, ks)
		}
	}
	switch stmt := stmt.(type) {
	case *statement.CreateIndex:
		add(stmt.Table.Resolve(stmt.Name.Resolve(def)))
	case *statement.DropIndex:
		add(stmt.Name.Resolve(def))
	}
	return keyspaces
}

// loadCatalogFile reads the snapshot named by --catalog-file.
func loadCatalogFile() (*catalog.Snapshot, error) {
	if catalogFile == "" {
		return nil, vterrors.New(codes.InvalidArgument, "--catalog-file is required")
	}
	return catalog.LoadSnapshotFile(catalogFile)
}

func cqlString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
