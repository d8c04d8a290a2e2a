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
	"slices"
	"strings"

	"google.golang.org/grpc/codes"

	"github.com/vikasyadav15/crossdata/go/vt/catalog"
	"github.com/vikasyadav15/crossdata/go/vt/lucene"
	"github.com/vikasyadav15/crossdata/go/vt/names"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
	"github.com/vikasyadav15/crossdata/go/vt/vtgate/engine"
)

// IndexType is the kind of index created by CREATE INDEX.
type IndexType int

const (
	IndexDefault IndexType = iota
	IndexCustom
	IndexLucene
)

var indexTypeNames = [...]string{
	IndexDefault: "DEFAULT",
	IndexCustom:  "CUSTOM",
	IndexLucene:  "LUCENE",
}

func (t IndexType) String() string {
	if t < 0 || int(t) >= len(indexTypeNames) {
		return fmt.Sprintf("IndexType(%d)", int(t))
	}
	return indexTypeNames[t]
}

// ParseIndexType parses DEFAULT, CUSTOM or LUCENE, ignoring case.
func ParseIndexType(s string) (IndexType, error) {
	for i, name := range indexTypeNames {
		if strings.EqualFold(name, s) {
			return IndexType(i), nil
		}
	}
	return 0, vterrors.Errorf(codes.InvalidArgument, "unknown index type %q", s)
}

// CreateIndex is the CREATE INDEX statement:
//
//	CREATE {DEFAULT | CUSTOM | LUCENE} INDEX [IF NOT EXISTS] [name]
//	ON [keyspace.]table (col, ...) [USING class] [WITH OPTIONS = {k: v, ...}]
type CreateIndex struct {
	Type        IndexType
	IfNotExists bool
	// Name is optional. A qualified name also selects the keyspace.
	Name    names.QualifiedName
	Table   names.QualifiedName
	Columns []string
	// Using is the implementing class of a custom index.
	Using   string
	Options Options
}

var _ Statement = (*CreateIndex)(nil)

func (*CreateIndex) iStatement() {}

// Kind implements Statement.
func (ci *CreateIndex) Kind() Kind {
	return KindCreateIndex
}

func (ci *CreateIndex) hasName() bool {
	return ci.Name.Name != ""
}

// IndexName returns the effective name of the index. Lucene indexes always
// live under the Lucene prefix; unnamed indexes get a name derived from the
// table and the target columns.
func (ci *CreateIndex) IndexName() string {
	if ci.hasName() {
		if ci.Type == IndexLucene {
			return lucene.IndexName(ci.Name.Name)
		}
		return ci.Name.Name
	}
	if ci.Type == IndexLucene {
		return lucene.IndexName(ci.Table.Name)
	}
	var sb strings.Builder
	sb.WriteString(ci.Table.Name)
	for _, c := range ci.Columns {
		sb.WriteByte('_')
		sb.WriteString(c)
	}
	sb.WriteString("_idx")
	return sb.String()
}

func (ci *CreateIndex) keyspaceIncluded() bool {
	return ci.Table.IsQualified() || ci.Name.IsQualified()
}

// effectiveKeyspace prefers the table qualifier, then the index name
// qualifier, then def.
func (ci *CreateIndex) effectiveKeyspace(def string) string {
	switch {
	case ci.Table.IsQualified():
		return ci.Table.Qualifier
	case ci.Name.IsQualified():
		return ci.Name.Qualifier
	}
	return def
}

// String implements Statement.
func (ci *CreateIndex) String() string {
	return ci.render(ci.effectiveKeyspace(""), ci.Columns, ci.Using, ci.Options)
}

func (ci *CreateIndex) render(keyspace string, columns []string, using string, options Options) string {
	var sb strings.Builder
	sb.WriteString("CREATE ")
	sb.WriteString(ci.Type.String())
	sb.WriteString(" INDEX ")
	if ci.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	if ci.hasName() {
		sb.WriteString(ci.IndexName())
		sb.WriteByte(' ')
	}
	sb.WriteString("ON ")
	if ci.keyspaceIncluded() {
		sb.WriteString(keyspace)
		sb.WriteByte('.')
	}
	sb.WriteString(ci.Table.Name)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(columns, ", "))
	sb.WriteByte(')')
	if using != "" {
		sb.WriteString(" USING ")
		sb.WriteString(using)
	}
	if len(options) > 0 {
		sb.WriteString(" WITH OPTIONS = ")
		sb.WriteString(options.String())
	}
	return sb.String()
}

func (ci *CreateIndex) clone() *CreateIndex {
	clone := *ci
	clone.Columns = slices.Clone(ci.Columns)
	clone.Options = ci.Options.clone()
	return &clone
}

// Validate implements Statement.
func (ci *CreateIndex) Validate(cat catalog.Catalog, env Env) (Validated, error) {
	indexName := ci.IndexName()

	// Target resolution.
	if ci.Table.Name == "" {
		return nil, newValidationError(vterrors.BadFieldError, "", "CREATE INDEX requires a target table")
	}
	if ci.Table.IsQualified() && ci.Name.IsQualified() && ci.Table.Qualifier != ci.Name.Qualifier {
		return nil, newValidationError(vterrors.WrongNameForIndex, ci.Name.String(),
			"Index %s and table %s belong to different keyspaces", ci.Name, ci.Table)
	}
	keyspace := ci.effectiveKeyspace(env.DefaultKeyspace)
	if keyspace == "" {
		return nil, newValidationError(vterrors.NoDB, ci.Table.Name,
			"No keyspace specified for table %s and no default keyspace set", ci.Table.Name)
	}
	table, err := findTable(cat, keyspace, ci.Table.Name)
	if err != nil {
		return nil, err
	}

	// Option legality. Only user supplied options are rejected here, Lucene
	// options are synthesized at the end.
	if len(ci.Options) > 0 {
		return nil, newValidationError(vterrors.CantUseOptionHere, indexName,
			"WITH OPTIONS clause not supported in index creation.")
	}
	if !ci.IfNotExists && ci.Type == IndexLucene {
		if col, ok := table.ColumnWithPrefix(lucene.SidecarPrefix); ok {
			return nil, newValidationError(vterrors.DupKeyName, lucene.UserName(col.Name),
				"Cannot create index: A Lucene index already exists on table %s. Use DROP INDEX %s; to remove the index.",
				table.QualifiedName(), lucene.UserName(col.Name))
		}
	}

	// Naming policy.
	if ci.hasName() && lucene.IsReserved(ci.Name.Name) {
		return nil, newValidationError(vterrors.WrongNameForIndex, ci.Name.Name,
			"Internal namespace %s cannot be used on index name %s", lucene.ReservedPrefix, ci.Name.Name)
	}

	// Uniqueness.
	_, exists := table.FindIndex(indexName)
	if exists && !ci.IfNotExists {
		return nil, newValidationError(vterrors.DupKeyName, indexName,
			"Index %s already exists in table %s", indexName, table.QualifiedName())
	}

	// Target columns.
	if len(ci.Columns) == 0 {
		return nil, newValidationError(vterrors.BadFieldError, indexName,
			"Index %s has no target columns", indexName)
	}
	targets := make([]catalog.Column, 0, len(ci.Columns))
	for _, c := range ci.Columns {
		if lucene.IsReserved(c) {
			return nil, newValidationError(vterrors.BadFieldError, c,
				"Internal column %s cannot be part of the index", c)
		}
		col, ok := table.Column(c)
		if !ok {
			return nil, newValidationError(vterrors.BadFieldError, c,
				"Column '%s' does not exist in table %s", c, table.QualifiedName())
		}
		if slices.ContainsFunc(targets, func(t catalog.Column) bool { return t.Name == col.Name }) {
			return nil, newValidationError(vterrors.BadFieldError, c,
				"Column '%s' is repeated in index %s", c, indexName)
		}
		targets = append(targets, col)
	}

	// Kind specific completion.
	using, options := ci.Using, ci.Options.clone()
	switch ci.Type {
	case IndexCustom:
		if using == "" {
			return nil, newValidationError(vterrors.CantUseOptionHere, indexName,
				"CUSTOM index %s requires a USING class", indexName)
		}
	case IndexLucene:
		if len(options) == 0 || using == "" {
			cfg := env.luceneConfig()
			options = fromLucene(cfg.Options(targets))
			using = cfg.IndexClass
		}
	}

	return &validatedCreateIndex{
		stmt:          ci.clone(),
		keyspace:      keyspace,
		indexName:     indexName,
		shouldExecute: !exists,
		using:         using,
		options:       options,
	}, nil
}

// IndexDefinition exposes the index definition completed by validation.
type IndexDefinition interface {
	IndexName() string
	Using() string
	Options() Options
}

type validatedCreateIndex struct {
	stmt          *CreateIndex
	keyspace      string
	indexName     string
	shouldExecute bool
	using         string
	options       Options
}

var (
	_ Validated       = (*validatedCreateIndex)(nil)
	_ IndexDefinition = (*validatedCreateIndex)(nil)
)

func (*validatedCreateIndex) iValidated() {}

func (v *validatedCreateIndex) Statement() Statement { return v.stmt.clone() }
func (v *validatedCreateIndex) Keyspace() string     { return v.keyspace }
func (v *validatedCreateIndex) ShouldExecute() bool  { return v.shouldExecute }
func (v *validatedCreateIndex) IndexName() string    { return v.indexName }
func (v *validatedCreateIndex) Using() string        { return v.using }
func (v *validatedCreateIndex) Options() Options     { return v.options.clone() }

// Plan implements Validated.
func (v *validatedCreateIndex) Plan() *engine.Plan {
	if !v.shouldExecute {
		return engine.NewPlan(KindCreateIndex.String(), v.stmt.String(), nil)
	}
	root := engine.NewStep(engine.Cassandra, v.keyspace, v.Translate())
	if v.stmt.Type == IndexLucene {
		root.AddChild(engine.NewStep(engine.Cassandra, v.keyspace, v.sidecarColumn()))
	}
	return engine.NewPlan(KindCreateIndex.String(), v.stmt.String(), root)
}

func (v *validatedCreateIndex) sidecarColumn() string {
	var sb strings.Builder
	sb.WriteString("ALTER TABLE ")
	if v.stmt.keyspaceIncluded() {
		sb.WriteString(v.keyspace)
		sb.WriteByte('.')
	}
	sb.WriteString(v.stmt.Table.Name)
	sb.WriteString(" ADD ")
	sb.WriteString(v.indexName)
	sb.WriteString(" TEXT;")
	return sb.String()
}

// Translate implements Validated.
func (v *validatedCreateIndex) Translate() string {
	if !v.shouldExecute {
		panic(fmt.Sprintf("[BUG] Translate called on CREATE INDEX %s, which is a no-op", v.indexName))
	}
	columns := v.stmt.Columns
	if v.stmt.Type == IndexLucene {
		// Lucene indexes are built on their sidecar column.
		columns = []string{v.indexName}
	}
	cql := v.stmt.render(v.keyspace, columns, v.using, v.options)

	if v.stmt.Type == IndexDefault {
		cql = strings.Replace(cql, " DEFAULT ", " ", 1)
	}
	if v.stmt.Type == IndexLucene {
		cql = strings.Replace(cql, "CREATE LUCENE ", "CREATE CUSTOM ", 1)
	}
	if !v.stmt.hasName() {
		marker := "INDEX "
		if v.stmt.IfNotExists {
			marker = "INDEX IF NOT EXISTS "
		}
		cql = strings.Replace(cql, marker+"ON ", marker+v.indexName+" ON ", 1)
	}
	if v.using != "" && !strings.HasPrefix(v.using, "'") {
		cql = strings.Replace(cql, " USING ", " USING '", 1)
		if strings.Contains(cql, " WITH OPTIONS") {
			cql = strings.Replace(cql, " WITH OPTIONS", "' WITH OPTIONS", 1)
		} else {
			cql += "'"
		}
	}
	return cql
}
