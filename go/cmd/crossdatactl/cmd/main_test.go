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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikasyadav15/crossdata/go/vt/catalog/cqlcatalog"
	"github.com/vikasyadav15/crossdata/go/vt/connector/cassandra"
	"github.com/vikasyadav15/crossdata/go/vt/lucene"
	"github.com/vikasyadav15/crossdata/go/vt/names"
	"github.com/vikasyadav15/crossdata/go/vt/statement"
)

const testCatalog = `keyspaces:
  - name: ks
    tables:
      - name: t
        columns:
          - {name: id, type: uuid}
          - {name: a, type: text}
          - {name: b, type: int}
        indexes:
          - {name: t_a_idx, kind: COMPOSITES}
`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := Main()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// jsonPlan is the part of a JSON plan the tests look at.
type jsonPlan struct {
	Type         string
	QueryType    string
	Original     string
	Instructions *struct {
		Variant  string
		Keyspace string
		Query    string
		Inputs   []struct {
			Query string
		}
	}
}

func decodePlan(t *testing.T, out string) jsonPlan {
	t.Helper()
	var plan jsonPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan), out)
	return plan
}

func TestPlanCreateIndexJSON(t *testing.T) {
	out, err := run(t, "plan", "create-index", "--catalog-file", writeCatalog(t), "--format", "json",
		"--table", "ks.t", "--columns", "b")
	require.NoError(t, err)

	plan := decodePlan(t, out)
	assert.Equal(t, "CreateIndex", plan.QueryType)
	assert.Equal(t, "DirectDDL", plan.Type)
	assert.Equal(t, "CREATE DEFAULT INDEX ON ks.t (b)", plan.Original)
	require.NotNil(t, plan.Instructions)
	assert.Equal(t, "CASSANDRA", plan.Instructions.Variant)
	assert.Equal(t, "ks", plan.Instructions.Keyspace)
	assert.Equal(t, "CREATE INDEX t_b_idx ON ks.t (b)", plan.Instructions.Query)
	assert.Empty(t, plan.Instructions.Inputs)
}

func TestPlanLuceneIndexJSON(t *testing.T) {
	out, err := run(t, "plan", "create-index", "--catalog-file", writeCatalog(t), "--format", "json",
		"--type", "lucene", "--table", "ks.t", "--columns", "a,b")
	require.NoError(t, err)

	plan := decodePlan(t, out)
	assert.Equal(t, "Complex", plan.Type)
	require.NotNil(t, plan.Instructions)
	assert.Contains(t, plan.Instructions.Query, "CREATE CUSTOM INDEX stratio_lucene_t ON ks.t (stratio_lucene_t) USING '"+lucene.DefaultIndexClass+"'")
	require.Len(t, plan.Instructions.Inputs, 1)
	assert.Equal(t, "ALTER TABLE ks.t ADD stratio_lucene_t TEXT;", plan.Instructions.Inputs[0].Query)
}

func TestPlanTable(t *testing.T) {
	out, err := run(t, "plan", "create-index", "--catalog-file", writeCatalog(t),
		"--type", "lucene", "--table", "ks.t", "--columns", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "CreateIndex: CREATE LUCENE INDEX ON ks.t (a)")
	assert.Contains(t, out, "CASSANDRA")
	assert.Contains(t, out, "stratio_lucene_t")
}

func TestPlanNoop(t *testing.T) {
	out, err := run(t, "plan", "create-index", "--catalog-file", writeCatalog(t),
		"--if-not-exists", "--name", "t_a_idx", "--table", "ks.t", "--columns", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to execute.")
}

func TestPlanDropIndexJSON(t *testing.T) {
	out, err := run(t, "plan", "drop-index", "--catalog-file", writeCatalog(t), "--format", "json",
		"--name", "ks.t_a_idx")
	require.NoError(t, err)

	plan := decodePlan(t, out)
	assert.Equal(t, "DropIndex", plan.QueryType)
	require.NotNil(t, plan.Instructions)
	assert.Equal(t, "DROP INDEX ks.t_a_idx", plan.Instructions.Query)
}

func TestPlanDefaultKeyspaceFlag(t *testing.T) {
	out, err := run(t, "plan", "drop-index", "--catalog-file", writeCatalog(t), "--format", "json",
		"--keyspace", "ks", "--name", "t_a_idx")
	require.NoError(t, err)

	plan := decodePlan(t, out)
	require.NotNil(t, plan.Instructions)
	assert.Equal(t, "ks", plan.Instructions.Keyspace)
	assert.Equal(t, "DROP INDEX t_a_idx", plan.Instructions.Query)
}

func TestPlanErrors(t *testing.T) {
	catalogPath := writeCatalog(t)

	_, err := run(t, "plan", "create-index", "--table", "ks.t", "--columns", "a")
	require.EqualError(t, err, "--catalog-file is required")

	_, err = run(t, "plan", "create-index", "--catalog-file", catalogPath, "--table", "ks.missing", "--columns", "a")
	var verr *statement.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = run(t, "plan", "create-index", "--catalog-file", catalogPath, "--type", "bitmap", "--table", "ks.t", "--columns", "a")
	require.EqualError(t, err, `unknown index type "bitmap"`)

	_, err = run(t, "plan", "create-index", "--catalog-file", catalogPath, "--format", "xml", "--table", "ks.t", "--columns", "a")
	require.EqualError(t, err, `invalid --format "xml": expected table or json`)
}

func TestValidateCreateIndex(t *testing.T) {
	out, err := run(t, "validate", "create-index", "--catalog-file", writeCatalog(t), "--format", "json",
		"--type", "lucene", "--name", "books", "--table", "ks.t", "--columns", "a")
	require.NoError(t, err)

	var got validation
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	assert.Equal(t, "CreateIndex", got.Kind)
	assert.Equal(t, "ks", got.Keyspace)
	assert.Equal(t, "stratio_lucene_books", got.Index)
	assert.Equal(t, lucene.DefaultIndexClass, got.Using)
	assert.Contains(t, got.Options, "'schema'")
	assert.True(t, got.ShouldExecute)
}

func TestValidateDropIndexTable(t *testing.T) {
	out, err := run(t, "validate", "drop-index", "--catalog-file", writeCatalog(t),
		"--if-exists", "--name", "ks.missing_idx")
	require.NoError(t, err)
	assert.Contains(t, out, "DropIndex")
	assert.Contains(t, out, "false")
}

func TestCreateIndexFlagsOptions(t *testing.T) {
	flags := &createIndexFlags{
		indexType: "custom",
		name:      "ks.i",
		table:     "t",
		columns:   []string{"a"},
		using:     "org.example.Index",
		options:   "b=2 a='x y'",
	}
	stmt, err := flags.build()
	require.NoError(t, err)
	assert.Equal(t, &statement.CreateIndex{
		Type:    statement.IndexCustom,
		Name:    names.NewQualifiedName("ks", "i"),
		Table:   names.NewQualifiedName("", "t"),
		Columns: []string{"a"},
		Using:   "org.example.Index",
		Options: statement.Options{
			{Key: "'a'", Value: "'x y'"},
			{Key: "'b'", Value: "'2'"},
		},
	}, stmt)
}

func TestStatementKeyspaces(t *testing.T) {
	tests := []struct {
		name string
		stmt statement.Statement
		def  string
		want []string
	}{{
		name: "table qualifier wins",
		stmt: &statement.CreateIndex{Table: names.NewQualifiedName("a", "t"), Name: names.NewQualifiedName("b", "i")},
		def:  "c",
		want: []string{"a"},
	}, {
		name: "index qualifier",
		stmt: &statement.CreateIndex{Table: names.NewQualifiedName("", "t"), Name: names.NewQualifiedName("b", "i")},
		def:  "c",
		want: []string{"b"},
	}, {
		name: "default",
		stmt: &statement.DropIndex{Name: names.NewQualifiedName("", "i")},
		def:  "c",
		want: []string{"c"},
	}, {
		name: "none",
		stmt: &statement.DropIndex{Name: names.NewQualifiedName("", "i")},
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statementKeyspaces(tt.stmt, tt.def))
		})
	}
}

type recordingSession struct {
	mu       *sync.Mutex
	executed *[]string
}

func (s recordingSession) Exec(_ context.Context, stmt string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.executed = append(*s.executed, stmt)
	return nil
}

func (s recordingSession) MapScan(context.Context, string) ([]string, []map[string]any, error) {
	return nil, nil, nil
}

func (s recordingSession) Querier() cqlcatalog.Querier { return nil }
func (s recordingSession) Close()                      {}

// fakeCassandra replaces the Cassandra connector of the commands with one
// recording executed statements and session settings.
func fakeCassandra(t *testing.T) (executed *[]string, settings *[]cassandra.Settings) {
	var mu sync.Mutex
	executed, settings = &[]string{}, &[]cassandra.Settings{}
	factory := func(s cassandra.Settings, keyspace string) (cassandra.Session, error) {
		mu.Lock()
		*settings = append(*settings, s)
		mu.Unlock()
		return recordingSession{mu: &mu, executed: executed}, nil
	}
	previous := newCassandraConnector
	newCassandraConnector = func() *cassandra.Connector { return cassandra.NewWithFactory(factory) }
	t.Cleanup(func() { newCassandraConnector = previous })
	return executed, settings
}

func TestApplyCreateIndex(t *testing.T) {
	executed, settings := fakeCassandra(t)

	out, err := run(t, "apply", "create-index", "--catalog-file", writeCatalog(t), "--format", "json",
		"--cassandra-hosts", "10.0.0.1, 10.0.0.2", "--cassandra-port", "9142",
		"--type", "lucene", "--table", "ks.t", "--columns", "a")
	require.NoError(t, err)

	require.Len(t, *executed, 2)
	assert.Contains(t, (*executed)[0], "CREATE CUSTOM INDEX stratio_lucene_t ON ks.t (stratio_lucene_t)")
	assert.Equal(t, "ALTER TABLE ks.t ADD stratio_lucene_t TEXT;", (*executed)[1])

	require.NotEmpty(t, *settings)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, (*settings)[0].Hosts)
	assert.Equal(t, 9142, (*settings)[0].Port)

	plan := decodePlan(t, out)
	assert.Equal(t, "Complex", plan.Type)
}

func TestApplyNoop(t *testing.T) {
	executed, _ := fakeCassandra(t)

	out, err := run(t, "apply", "drop-index", "--catalog-file", writeCatalog(t),
		"--if-exists", "--name", "ks.missing_idx")
	require.NoError(t, err)
	assert.Empty(t, *executed)
	assert.Contains(t, out, "Nothing to execute.")
}

func TestApplyNeedsKeyspace(t *testing.T) {
	fakeCassandra(t)

	_, err := run(t, "apply", "drop-index", "--name", "t_a_idx")
	require.EqualError(t, err, "cannot tell which keyspace to load: qualify the names or set --keyspace")
}

func TestCatalogDumpRequiresKeyspaces(t *testing.T) {
	fakeCassandra(t)

	_, err := run(t, "catalog", "dump")
	require.EqualError(t, err, "--keyspaces is required")
}
