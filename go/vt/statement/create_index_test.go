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
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/vikasyadav15/crossdata/go/vt/lucene"
	"github.com/vikasyadav15/crossdata/go/vt/names"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
	"github.com/vikasyadav15/crossdata/go/vt/vtgate/engine"
)

const luceneSchemaA = `'{default_analyzer:"org.apache.lucene.analysis.standard.StandardAnalyzer",fields:{a:{type:"string"}}}'`

func TestIndexName(t *testing.T) {
	tests := []struct {
		name string
		stmt CreateIndex
		want string
	}{{
		name: "default derived from table and columns",
		stmt: CreateIndex{Type: IndexDefault, Table: qn("t"), Columns: []string{"a", "b"}},
		want: "t_a_b_idx",
	}, {
		name: "custom derived from table and columns",
		stmt: CreateIndex{Type: IndexCustom, Table: qn("ks.t"), Columns: []string{"b"}},
		want: "t_b_idx",
	}, {
		name: "lucene derived from table",
		stmt: CreateIndex{Type: IndexLucene, Table: qn("t"), Columns: []string{"a", "b"}},
		want: "stratio_lucene_t",
	}, {
		name: "lucene explicit name is prefixed",
		stmt: CreateIndex{Type: IndexLucene, Name: qn("myidx"), Table: qn("t"), Columns: []string{"a"}},
		want: "stratio_lucene_myidx",
	}, {
		name: "explicit qualified name",
		stmt: CreateIndex{Type: IndexDefault, Name: qn("ks.myidx"), Table: qn("t"), Columns: []string{"a"}},
		want: "myidx",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stmt.IndexName())
		})
	}
}

func TestCreateIndexString(t *testing.T) {
	stmt := &CreateIndex{
		Type:        IndexLucene,
		IfNotExists: true,
		Name:        qn("myidx"),
		Table:       qn("ks.t"),
		Columns:     []string{"a", "b"},
		Using:       "com.example.Index",
		Options:     Options{{Key: "'k'", Value: "'v'"}, {Key: "'x'", Value: "'y'"}},
	}
	assert.Equal(t, "CREATE LUCENE INDEX IF NOT EXISTS stratio_lucene_myidx ON ks.t (a, b) USING com.example.Index WITH OPTIONS = {'k': 'v', 'x': 'y'}", stmt.String())
	assert.Equal(t, KindCreateIndex, stmt.Kind())

	unqualified := &CreateIndex{Type: IndexDefault, Table: qn("t"), Columns: []string{"a"}}
	assert.Equal(t, "CREATE DEFAULT INDEX ON t (a)", unqualified.String())
}

func TestParseIndexType(t *testing.T) {
	for _, s := range []string{"default", "CUSTOM", "Lucene"} {
		typ, err := ParseIndexType(s)
		require.NoError(t, err)
		assert.Equal(t, strings.ToUpper(s), typ.String())
	}
	_, err := ParseIndexType("bitmap")
	assert.Equal(t, codes.InvalidArgument, vterrors.Code(err))
	assert.Equal(t, "IndexType(7)", IndexType(7).String())
}

func TestCreateIndexValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		stmt       *CreateIndex
		env        Env
		state      vterrors.State
		entity     string
		msg        string
		msgContain string
	}{{
		name:  "no table",
		stmt:  &CreateIndex{Type: IndexDefault, Columns: []string{"a"}},
		env:   Env{DefaultKeyspace: "ks"},
		state: vterrors.BadFieldError,
		msg:   "CREATE INDEX requires a target table",
	}, {
		name:  "no keyspace",
		stmt:  &CreateIndex{Type: IndexDefault, Table: qn("t"), Columns: []string{"a"}},
		state: vterrors.NoDB,
		msg:   "No keyspace specified for table t and no default keyspace set",
	}, {
		name:   "missing keyspace",
		stmt:   &CreateIndex{Type: IndexDefault, Table: qn("nope.t"), Columns: []string{"a"}},
		state:  vterrors.BadDb,
		entity: "nope",
		msg:    "Keyspace nope does not exist",
	}, {
		name:   "missing table",
		stmt:   &CreateIndex{Type: IndexDefault, Table: qn("missing"), Columns: []string{"a"}},
		env:    Env{DefaultKeyspace: "ks"},
		state:  vterrors.NoSuchTable,
		entity: "ks.missing",
		msg:    "Table ks.missing does not exist",
	}, {
		name:  "missing table wins over options",
		stmt:  &CreateIndex{Type: IndexLucene, Table: qn("ks.missing"), Columns: []string{"a"}, Options: Options{{Key: "'k'", Value: "'v'"}}},
		state: vterrors.NoSuchTable,
		msg:   "Table ks.missing does not exist",
	}, {
		name:   "conflicting keyspaces",
		stmt:   &CreateIndex{Type: IndexDefault, Name: qn("demo.idx"), Table: qn("ks.t"), Columns: []string{"a"}},
		state:  vterrors.WrongNameForIndex,
		entity: "demo.idx",
		msg:    "Index demo.idx and table ks.t belong to different keyspaces",
	}, {
		name:   "user options",
		stmt:   &CreateIndex{Type: IndexDefault, Table: qn("ks.t"), Columns: []string{"b"}, Options: Options{{Key: "'k'", Value: "'v'"}}},
		state:  vterrors.CantUseOptionHere,
		entity: "t_b_idx",
		msg:    "WITH OPTIONS clause not supported in index creation.",
	}, {
		name:   "lucene sidecar already present",
		stmt:   &CreateIndex{Type: IndexLucene, Name: qn("other"), Table: qn("demo.events"), Columns: []string{"payload"}},
		state:  vterrors.DupKeyName,
		entity: "events",
		msg:    "Cannot create index: A Lucene index already exists on table demo.events. Use DROP INDEX events; to remove the index.",
	}, {
		name:   "reserved name default",
		stmt:   &CreateIndex{Type: IndexDefault, Name: qn("stratio_foo"), Table: qn("ks.t"), Columns: []string{"b"}},
		state:  vterrors.WrongNameForIndex,
		entity: "stratio_foo",
		msg:    "Internal namespace stratio cannot be used on index name stratio_foo",
	}, {
		name:  "reserved name custom",
		stmt:  &CreateIndex{Type: IndexCustom, Name: qn("Stratio_Foo"), Table: qn("ks.t"), Columns: []string{"b"}, Using: "com.example.Index"},
		state: vterrors.WrongNameForIndex,
	}, {
		name:  "reserved name lucene",
		stmt:  &CreateIndex{Type: IndexLucene, Name: qn("stratio_foo"), Table: qn("ks.t"), Columns: []string{"a"}},
		state: vterrors.WrongNameForIndex,
	}, {
		name:   "duplicate derived name",
		stmt:   &CreateIndex{Type: IndexDefault, Table: qn("ks.t"), Columns: []string{"a"}},
		state:  vterrors.DupKeyName,
		entity: "t_a_idx",
		msg:    "Index t_a_idx already exists in table ks.t",
	}, {
		name:       "duplicate explicit name ignores case",
		stmt:       &CreateIndex{Type: IndexDefault, Name: qn("T_A_IDX"), Table: qn("ks.t"), Columns: []string{"b"}},
		state:      vterrors.DupKeyName,
		msgContain: "already exists",
	}, {
		name:   "no columns",
		stmt:   &CreateIndex{Type: IndexDefault, Name: qn("idx"), Table: qn("ks.t")},
		state:  vterrors.BadFieldError,
		entity: "idx",
		msg:    "Index idx has no target columns",
	}, {
		name:   "unknown column",
		stmt:   &CreateIndex{Type: IndexDefault, Table: qn("ks.t"), Columns: []string{"b", "zzz"}},
		state:  vterrors.BadFieldError,
		entity: "zzz",
		msg:    "Column 'zzz' does not exist in table ks.t",
	}, {
		name:   "reserved column",
		stmt:   &CreateIndex{Type: IndexDefault, Table: qn("ks.t"), Columns: []string{"stratio_internal"}},
		state:  vterrors.BadFieldError,
		entity: "stratio_internal",
		msg:    "Internal column stratio_internal cannot be part of the index",
	}, {
		name:   "repeated column",
		stmt:   &CreateIndex{Type: IndexDefault, Table: qn("ks.t"), Columns: []string{"b", "b"}},
		state:  vterrors.BadFieldError,
		entity: "b",
		msg:    "Column 'b' is repeated in index t_b_b_idx",
	}, {
		name:   "first column violation wins",
		stmt:   &CreateIndex{Type: IndexDefault, Table: qn("ks.t"), Columns: []string{"zzz", "stratio_internal"}},
		state:  vterrors.BadFieldError,
		entity: "zzz",
	}, {
		name:   "custom without class",
		stmt:   &CreateIndex{Type: IndexCustom, Table: qn("ks.t"), Columns: []string{"b"}},
		state:  vterrors.CantUseOptionHere,
		entity: "t_b_idx",
		msg:    "CUSTOM index t_b_idx requires a USING class",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.stmt.Validate(testCatalog(), tt.env)
			assert.Nil(t, v)
			verr := requireValidationError(t, err, tt.state)
			if tt.entity != "" {
				assert.Equal(t, tt.entity, verr.Entity)
			}
			if tt.msg != "" {
				assert.EqualError(t, err, tt.msg)
			}
			if tt.msgContain != "" {
				assert.ErrorContains(t, err, tt.msgContain)
			}
			assert.Equal(t, tt.state.Code(), vterrors.Code(err))
		})
	}
}

func TestCreateIndexDefault(t *testing.T) {
	stmt := &CreateIndex{Type: IndexDefault, Table: qn("ks.t"), Columns: []string{"a", "b"}}
	v, err := stmt.Validate(testCatalog(), Env{})
	require.NoError(t, err)
	assert.True(t, v.ShouldExecute())
	assert.Equal(t, "ks", v.Keyspace())

	cql := v.Translate()
	assert.Equal(t, "CREATE INDEX t_a_b_idx ON ks.t (a, b)", cql)
	// The derived name sits right after the INDEX keyword and before ON.
	assert.Less(t, strings.Index(cql, "INDEX"), strings.Index(cql, "t_a_b_idx"))
	assert.Less(t, strings.Index(cql, "t_a_b_idx"), strings.Index(cql, " ON "))

	plan := v.Plan()
	require.NotNil(t, plan.Root)
	assert.Equal(t, engine.NewStep(engine.Cassandra, "ks", cql), plan.Root)
	assert.Empty(t, plan.Root.Children)
	assert.Equal(t, "CreateIndex", plan.Kind)
	assert.Equal(t, "CREATE DEFAULT INDEX ON ks.t (a, b)", plan.Original)
}

func TestCreateIndexLucene(t *testing.T) {
	stmt := &CreateIndex{Type: IndexLucene, Table: qn("ks.t"), Columns: []string{"a"}}
	v, err := stmt.Validate(testCatalog(), Env{})
	require.NoError(t, err)
	require.True(t, v.ShouldExecute())

	def, ok := v.(IndexDefinition)
	require.True(t, ok)
	assert.Equal(t, "stratio_lucene_t", def.IndexName())
	assert.Equal(t, rowIndex, def.Using())
	schema, ok := def.Options().Get("'schema'")
	require.True(t, ok)
	assert.Equal(t, luceneSchemaA, schema)

	wantCreate := "CREATE CUSTOM INDEX stratio_lucene_t ON ks.t (stratio_lucene_t) USING '" + rowIndex + "' WITH OPTIONS = {" +
		"'refresh_seconds': '1', 'num_cached_filters': '1', 'ram_buffer_mb': '32', 'max_merge_mb': '5', 'max_cached_mb': '30', " +
		"'schema': " + luceneSchemaA + "}"
	assert.Equal(t, wantCreate, v.Translate())

	plan := v.Plan()
	want := engine.NewStep(engine.Cassandra, "ks", wantCreate).
		AddChild(engine.NewStep(engine.Cassandra, "ks", "ALTER TABLE ks.t ADD stratio_lucene_t TEXT;"))
	assert.Equal(t, want, plan.Root)
	assert.Equal(t, engine.PlanComplex, plan.Type)
}

func TestCreateIndexLuceneOverridesClass(t *testing.T) {
	stmt := &CreateIndex{Type: IndexLucene, Name: qn("myidx"), Table: qn("t"), Columns: []string{"a"}, Using: "com.example.Other"}
	v, err := stmt.Validate(testCatalog(), Env{DefaultKeyspace: "ks"})
	require.NoError(t, err)
	def := v.(IndexDefinition)
	assert.Equal(t, rowIndex, def.Using())
	assert.Equal(t, "stratio_lucene_myidx", def.IndexName())

	plan := v.Plan()
	require.Len(t, plan.Root.Children, 1)
	// The table was unqualified, so is the sidecar statement.
	assert.Equal(t, "ALTER TABLE t ADD stratio_lucene_myidx TEXT;", plan.Root.Children[0].Query)
	assert.Equal(t, "ks", plan.Root.Children[0].Keyspace)
	assert.True(t, strings.HasPrefix(v.Translate(), "CREATE CUSTOM INDEX stratio_lucene_myidx ON t (stratio_lucene_myidx) USING '"))
}

// User options are rejected before Lucene options are synthesized: both
// rules coexist only because of this ordering.
func TestCreateIndexOptionRejectionPrecedesSynthesis(t *testing.T) {
	withOptions := &CreateIndex{Type: IndexLucene, Table: qn("ks.t"), Columns: []string{"a"}, Options: Options{{Key: "'refresh_seconds'", Value: "'5'"}}}
	_, err := withOptions.Validate(testCatalog(), Env{})
	requireValidationError(t, err, vterrors.CantUseOptionHere)

	withoutOptions := &CreateIndex{Type: IndexLucene, Table: qn("ks.t"), Columns: []string{"a"}}
	v, err := withoutOptions.Validate(testCatalog(), Env{})
	require.NoError(t, err)
	assert.Len(t, v.(IndexDefinition).Options(), 6)

	// Validating the synthesized statement again must not trip the rule:
	// synthesized options never flow back into the statement.
	again, err := v.Statement().Validate(testCatalog(), Env{})
	require.NoError(t, err)
	assert.Equal(t, v.Translate(), again.Translate())
	assert.Empty(t, withoutOptions.Options)
	assert.Empty(t, withoutOptions.Using)
}

func TestCreateIndexEmptyOptionsNeverRejected(t *testing.T) {
	for _, typ := range []IndexType{IndexDefault, IndexCustom, IndexLucene} {
		stmt := &CreateIndex{Type: typ, Table: qn("ks.t"), Columns: []string{"b"}, Using: "com.example.Index", Options: Options{}}
		_, err := stmt.Validate(testCatalog(), Env{})
		assert.NoError(t, err, typ.String())
	}
}

func TestCreateIndexLuceneSchemaUsesRegistry(t *testing.T) {
	stmt := &CreateIndex{Type: IndexLucene, Table: qn("ks.t"), Columns: []string{"a", "b", "c"}}

	v, err := stmt.Validate(testCatalog(), Env{})
	require.NoError(t, err)
	schema, _ := v.(IndexDefinition).Options().Get("'schema'")
	assert.Contains(t, schema, `fields:{a:{type:"string"},b:{type:"integer"}}`)

	cfg := lucene.DefaultConfig()
	cfg.Registry = cfg.Registry.With("timestamp", `{type:"date"}`)
	cfg.IndexClass = "com.example.LuceneIndex"
	cfg.BaseOptions = []lucene.Option{{Key: "'refresh_seconds'", Value: "'10'"}}
	v, err = stmt.Validate(testCatalog(), Env{Lucene: cfg})
	require.NoError(t, err)
	def := v.(IndexDefinition)
	assert.Equal(t, "com.example.LuceneIndex", def.Using())
	assert.Equal(t, Options{
		{Key: "'refresh_seconds'", Value: "'10'"},
		{Key: "'schema'", Value: `'{default_analyzer:"org.apache.lucene.analysis.standard.StandardAnalyzer",fields:{a:{type:"string"},b:{type:"integer"},c:{type:"date"}}}'`},
	}, def.Options())
}

func TestCreateIndexIfNotExists(t *testing.T) {
	stmt := &CreateIndex{Type: IndexDefault, IfNotExists: true, Table: qn("ks.t"), Columns: []string{"a"}}
	v, err := stmt.Validate(testCatalog(), Env{})
	require.NoError(t, err)
	assert.False(t, v.ShouldExecute())

	plan := v.Plan()
	assert.True(t, plan.IsEmpty())
	assert.Equal(t, engine.PlanEmpty, plan.Type)
	assert.PanicsWithValue(t, "[BUG] Translate called on CREATE INDEX t_a_idx, which is a no-op", func() { v.Translate() })

	fresh := &CreateIndex{Type: IndexDefault, IfNotExists: true, Table: qn("ks.t"), Columns: []string{"b"}}
	v, err = fresh.Validate(testCatalog(), Env{})
	require.NoError(t, err)
	assert.True(t, v.ShouldExecute())
	assert.Equal(t, "CREATE INDEX IF NOT EXISTS t_b_idx ON ks.t (b)", v.Translate())
}

func TestCreateIndexLuceneIfNotExistsOnExistingSidecar(t *testing.T) {
	stmt := &CreateIndex{Type: IndexLucene, IfNotExists: true, Table: qn("demo.events"), Columns: []string{"payload"}}
	v, err := stmt.Validate(testCatalog(), Env{})
	require.NoError(t, err)
	assert.False(t, v.ShouldExecute())
	assert.True(t, v.Plan().IsEmpty())
}

func TestCreateIndexCustom(t *testing.T) {
	tests := []struct {
		name  string
		using string
		want  string
	}{
		{name: "unquoted", using: "com.example.MyIndex", want: "CREATE CUSTOM INDEX cidx ON ks.t (b) USING 'com.example.MyIndex'"},
		{name: "already quoted", using: "'com.example.MyIndex'", want: "CREATE CUSTOM INDEX cidx ON ks.t (b) USING 'com.example.MyIndex'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := &CreateIndex{Type: IndexCustom, Name: qn("cidx"), Table: qn("ks.t"), Columns: []string{"b"}, Using: tt.using}
			v, err := stmt.Validate(testCatalog(), Env{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Translate())
			assert.Empty(t, v.Plan().Root.Children)
		})
	}
}

func TestCreateIndexKeyspaceFromIndexName(t *testing.T) {
	stmt := &CreateIndex{Type: IndexDefault, Name: qn("ks.tb_idx"), Table: qn("t"), Columns: []string{"b"}}
	v, err := stmt.Validate(testCatalog(), Env{DefaultKeyspace: "demo"})
	require.NoError(t, err)
	assert.Equal(t, "ks", v.Keyspace())
	assert.Equal(t, "CREATE INDEX tb_idx ON ks.t (b)", v.Translate())
}

func TestCreateIndexDefaultKeyspace(t *testing.T) {
	stmt := &CreateIndex{Type: IndexDefault, Table: qn("t"), Columns: []string{"b"}}
	v, err := stmt.Validate(testCatalog(), Env{DefaultKeyspace: "ks"})
	require.NoError(t, err)
	assert.Equal(t, "ks", v.Keyspace())
	assert.Equal(t, "CREATE INDEX t_b_idx ON t (b)", v.Translate())
	assert.Equal(t, "ks", v.Plan().Root.Keyspace)
}

func TestCreateIndexIdempotentValidation(t *testing.T) {
	cat := testCatalog()
	stmts := []*CreateIndex{
		{Type: IndexDefault, Table: qn("ks.t"), Columns: []string{"b", "c"}},
		{Type: IndexLucene, Table: qn("ks.t"), Columns: []string{"a"}},
		{Type: IndexDefault, Table: qn("ks.t"), Columns: []string{"a"}},
	}
	for _, stmt := range stmts {
		v1, err1 := stmt.Validate(cat, Env{})
		v2, err2 := stmt.Validate(cat, Env{})
		assert.Equal(t, err1, err2)
		assert.Equal(t, v1, v2)
		if v1 != nil {
			assert.Equal(t, v1.Translate(), v2.Translate())
			assert.Equal(t, v1.Plan().Root, v2.Plan().Root)
		}
	}
}

func TestCreateIndexValidatedIsDetached(t *testing.T) {
	stmt := &CreateIndex{Type: IndexDefault, Table: qn("ks.t"), Columns: []string{"b"}}
	v, err := stmt.Validate(testCatalog(), Env{})
	require.NoError(t, err)

	stmt.Columns[0] = "c"
	stmt.Table = names.NewQualifiedName("ks", "other")
	assert.Equal(t, "CREATE INDEX t_b_idx ON ks.t (b)", v.Translate())

	copied := v.Statement().(*CreateIndex)
	copied.Columns[0] = "a"
	assert.Equal(t, "CREATE INDEX t_b_idx ON ks.t (b)", v.Translate())
}

// Plan and Translate are only reachable through a successful validation.
func TestPlanRequiresValidation(t *testing.T) {
	stmtType := reflect.TypeOf((*Statement)(nil)).Elem()
	for _, method := range []string{"Plan", "Translate"} {
		_, ok := stmtType.MethodByName(method)
		assert.False(t, ok, "Statement must not expose %s", method)
	}
	validatedType := reflect.TypeOf((*Validated)(nil)).Elem()
	for _, method := range []string{"Plan", "Translate"} {
		_, ok := validatedType.MethodByName(method)
		assert.True(t, ok, "Validated must expose %s", method)
	}
}
