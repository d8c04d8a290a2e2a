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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vikasyadav15/crossdata/go/vt/catalog"
	"github.com/vikasyadav15/crossdata/go/vt/names"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
)

const rowIndex = "org.apache.cassandra.db.index.stratio.RowIndex"

func testCatalog() *catalog.Snapshot {
	return catalog.NewSnapshotFromKeyspaces(
		catalog.Keyspace{Name: "ks", Tables: []*catalog.Table{{
			Name: "t",
			Columns: []catalog.Column{
				{Name: "id", Type: "uuid"},
				{Name: "a", Type: "text"},
				{Name: "b", Type: "int"},
				{Name: "c", Type: "timestamp"},
				{Name: "stratio_internal", Type: "text"},
			},
			Indexes: []catalog.Index{{Name: "t_a_idx", Kind: catalog.IndexKindComposites}},
		}}},
		catalog.Keyspace{Name: "demo", Tables: []*catalog.Table{
			{
				Name: "users",
				Columns: []catalog.Column{
					{Name: "id", Type: "uuid"},
					{Name: "name", Type: "varchar"},
				},
				Indexes: []catalog.Index{{Name: "users_name_idx", Kind: catalog.IndexKindComposites}},
			},
			{
				Name: "events",
				Columns: []catalog.Column{
					{Name: "id", Type: "uuid"},
					{Name: "payload", Type: "text"},
					{Name: "stratio_lucene_events", Type: "text"},
				},
				Indexes: []catalog.Index{{Name: "stratio_lucene_events", Kind: catalog.IndexKindCustom, Class: rowIndex}},
			},
		}},
		catalog.Keyspace{Name: "empty"},
	)
}

func qn(raw string) names.QualifiedName {
	return names.ParseQualifiedName(raw)
}

// requireValidationError asserts err is a *ValidationError with the given
// state and returns it.
func requireValidationError(t *testing.T, err error, state vterrors.State) *ValidationError {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T: %v", err, err)
	require.Equal(t, state, verr.State, "unexpected state for %q", verr.Message)
	return verr
}
