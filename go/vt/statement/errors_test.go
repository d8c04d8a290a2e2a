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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/vikasyadav15/crossdata/go/vt/catalog"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
)

type brokenCatalog struct{}

func (brokenCatalog) FindTable(string, string) (*catalog.Table, error) {
	return nil, vterrors.New(codes.Unavailable, "cluster unreachable")
}

func (brokenCatalog) Tables(string) ([]*catalog.Table, error) {
	return nil, errors.New("cluster unreachable")
}

func TestValidationErrorState(t *testing.T) {
	err := newValidationError(vterrors.DupKeyName, "idx", "Index %s already exists in table %s", "idx", "ks.t")
	assert.EqualError(t, err, "Index idx already exists in table ks.t")
	assert.Equal(t, vterrors.DupKeyName, vterrors.ErrState(err))
	assert.Equal(t, codes.AlreadyExists, vterrors.Code(err))

	wrapped := vterrors.Wrap(err, "batch item 2")
	assert.True(t, IsValidationError(wrapped))
	assert.Equal(t, vterrors.DupKeyName, vterrors.ErrState(wrapped))
	assert.False(t, IsValidationError(errors.New("boom")))
}

func TestCatalogFailuresAreNotValidationErrors(t *testing.T) {
	_, err := (&CreateIndex{Type: IndexDefault, Table: qn("ks.t"), Columns: []string{"a"}}).Validate(brokenCatalog{}, Env{})
	require.Error(t, err)
	assert.False(t, IsValidationError(err))
	assert.Equal(t, codes.Unavailable, vterrors.Code(err))
	assert.ErrorContains(t, err, "cannot look up table ks.t")

	_, err = (&DropIndex{Name: qn("ks.idx")}).Validate(brokenCatalog{}, Env{})
	require.Error(t, err)
	assert.False(t, IsValidationError(err))
	assert.ErrorContains(t, err, "cannot list tables of ks")
}
