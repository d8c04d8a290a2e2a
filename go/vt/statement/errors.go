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
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"

	"github.com/vikasyadav15/crossdata/go/vt/catalog"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
)

// ValidationError reports a user-correctable problem with a statement.
type ValidationError struct {
	State vterrors.State
	// Entity names the offending keyspace, table, column or index.
	Entity  string
	Message string
}

func newValidationError(state vterrors.State, entity, format string, args ...any) *ValidationError {
	return &ValidationError{
		State:   state,
		Entity:  entity,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrorState implements vterrors.ErrorWithState.
func (e *ValidationError) ErrorState() vterrors.State {
	return e.State
}

// ErrorCode implements vterrors.ErrorWithCode.
func (e *ValidationError) ErrorCode() codes.Code {
	return e.State.Code()
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// findTable resolves a table, turning catalog misses into validation errors.
func findTable(cat catalog.Catalog, keyspace, table string) (*catalog.Table, error) {
	t, err := cat.FindTable(keyspace, table)
	if err == nil {
		return t, nil
	}
	var nf *catalog.NotFoundError
	if !errors.As(err, &nf) {
		return nil, vterrors.Wrapf(err, "cannot look up table %s.%s", keyspace, table)
	}
	if nf.Kind == catalog.KindKeyspace {
		return nil, newValidationError(vterrors.BadDb, keyspace, "Keyspace %s does not exist", keyspace)
	}
	return nil, newValidationError(vterrors.NoSuchTable, keyspace+"."+table, "Table %s.%s does not exist", keyspace, table)
}

// findTables lists the tables of a keyspace, turning a catalog miss into a
// validation error.
func findTables(cat catalog.Catalog, keyspace string) ([]*catalog.Table, error) {
	tables, err := cat.Tables(keyspace)
	if err == nil {
		return tables, nil
	}
	var nf *catalog.NotFoundError
	if errors.As(err, &nf) {
		return nil, newValidationError(vterrors.BadDb, keyspace, "Keyspace %s does not exist", keyspace)
	}
	return nil, vterrors.Wrapf(err, "cannot list tables of %s", keyspace)
}
