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

package statement

import (
	"fmt"
	"strings"

	"github.com/vikasyadav15/crossdata/go/vt/catalog"
	"github.com/vikasyadav15/crossdata/go/vt/lucene"
	"github.com/vikasyadav15/crossdata/go/vt/names"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
	"github.com/vikasyadav15/crossdata/go/vt/vtgate/engine"
)

// DropIndex is the DROP INDEX statement:
//
//	DROP INDEX [IF EXISTS] [keyspace.]name
//
// Lucene indexes can be dropped by their user-facing name, i.e. without the
// Lucene prefix.
type DropIndex struct {
	IfExists bool
	Name     names.QualifiedName
}

var _ Statement = (*DropIndex)(nil)

func (*DropIndex) iStatement() {}

// Kind implements Statement.
func (di *DropIndex) Kind() Kind {
	return KindDropIndex
}

// String implements Statement.
func (di *DropIndex) String() string {
	var sb strings.Builder
	sb.WriteString("DROP INDEX ")
	if di.IfExists {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(di.Name.String())
	return sb.String()
}

// Validate implements Statement.
func (di *DropIndex) Validate(cat catalog.Catalog, env Env) (Validated, error) {
	if di.Name.Name == "" {
		return nil, newValidationError(vterrors.BadFieldError, "", "DROP INDEX requires an index name")
	}
	keyspace := di.Name.Resolve(env.DefaultKeyspace)
	if keyspace == "" {
		return nil, newValidationError(vterrors.NoDB, di.Name.Name,
			"No keyspace specified for index %s and no default keyspace set", di.Name.Name)
	}
	if lucene.IsReserved(di.Name.Name) {
		return nil, newValidationError(vterrors.WrongNameForIndex, di.Name.Name,
			"Internal namespace %s cannot be used on index name %s", lucene.ReservedPrefix, di.Name.Name)
	}
	tables, err := findTables(cat, keyspace)
	if err != nil {
		return nil, err
	}

	table, index, found := lookupIndex(tables, di.Name.Name)
	if !found {
		if di.IfExists {
			return &validatedDropIndex{stmt: *di, keyspace: keyspace}, nil
		}
		return nil, newValidationError(vterrors.UnknownIndex, di.Name.Name,
			"Index %s does not exist in keyspace %s", di.Name.Name, keyspace)
	}
	_, sidecar := table.Column(index.Name)
	return &validatedDropIndex{
		stmt:          *di,
		keyspace:      keyspace,
		table:         table.Name,
		storedName:    index.Name,
		lucene:        sidecar,
		shouldExecute: true,
	}, nil
}

// lookupIndex finds an index by its stored name first, then by the
// user-facing name of a Lucene index.
func lookupIndex(tables []*catalog.Table, name string) (*catalog.Table, catalog.Index, bool) {
	for _, t := range tables {
		if idx, ok := t.FindIndex(name); ok {
			return t, idx, true
		}
	}
	for _, t := range tables {
		if idx, ok := t.FindIndex(lucene.IndexName(name)); ok {
			return t, idx, true
		}
	}
	return nil, catalog.Index{}, false
}

type validatedDropIndex struct {
	stmt          DropIndex
	keyspace      string
	table         string
	storedName    string
	lucene        bool
	shouldExecute bool
}

var _ Validated = (*validatedDropIndex)(nil)

func (*validatedDropIndex) iValidated() {}

func (v *validatedDropIndex) Statement() Statement {
	stmt := v.stmt
	return &stmt
}

func (v *validatedDropIndex) Keyspace() string    { return v.keyspace }
func (v *validatedDropIndex) ShouldExecute() bool { return v.shouldExecute }

// IndexName returns the stored name of the dropped index.
func (v *validatedDropIndex) IndexName() string { return v.storedName }

func (v *validatedDropIndex) qualified(name string) string {
	if v.stmt.Name.IsQualified() {
		return v.keyspace + "." + name
	}
	return name
}

// Plan implements Validated.
func (v *validatedDropIndex) Plan() *engine.Plan {
	if !v.shouldExecute {
		return engine.NewPlan(KindDropIndex.String(), v.stmt.String(), nil)
	}
	root := engine.NewStep(engine.Cassandra, v.keyspace, v.Translate())
	if v.lucene {
		root.AddChild(engine.NewStep(engine.Cassandra, v.keyspace,
			"ALTER TABLE "+v.qualified(v.table)+" DROP "+v.storedName+";"))
	}
	return engine.NewPlan(KindDropIndex.String(), v.stmt.String(), root)
}

// Translate implements Validated.
func (v *validatedDropIndex) Translate() string {
	if !v.shouldExecute {
		panic(fmt.Sprintf("[BUG] Translate called on DROP INDEX %s, which is a no-op", v.stmt.Name))
	}
	var sb strings.Builder
	sb.WriteString("DROP INDEX ")
	if v.stmt.IfExists {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(v.qualified(v.storedName))
	return sb.String()
}
