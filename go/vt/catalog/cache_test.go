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
	"context"
	"sync"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	mu        sync.Mutex
	keyspaces map[string][]*Table
	calls     map[string]int
}

func (f *fakeLoader) LoadKeyspace(ctx context.Context, keyspace string) ([]*Table, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[keyspace]++
	tables, ok := f.keyspaces[keyspace]
	if !ok {
		return nil, &NotFoundError{Kind: KindKeyspace, Name: keyspace}
	}
	return cloneTables(tables), nil
}

func (f *fakeLoader) callsFor(keyspace string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[keyspace]
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{keyspaces: map[string][]*Table{
		"demo":  {{Name: "users", Columns: []Column{{Name: "id", Type: "uuid"}}}},
		"other": {{Name: "events"}},
		"empty": {},
	}}
}

func TestCacheReusesLoadedKeyspaces(t *testing.T) {
	loader := newFakeLoader()
	c := NewCache(loader, CacheConfig{Expiration: cache.NoExpiration, Concurrency: 2})

	for range 3 {
		tables, err := c.Keyspace(context.Background(), "demo")
		require.NoError(t, err)
		require.Len(t, tables, 1)
		assert.Equal(t, "demo", tables[0].Keyspace)
	}
	assert.Equal(t, 1, loader.callsFor("demo"))

	c.Invalidate("demo")
	_, err := c.Keyspace(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, 2, loader.callsFor("demo"))
}

func TestCacheExpiry(t *testing.T) {
	loader := newFakeLoader()
	c := NewCache(loader, CacheConfig{Expiration: 10 * time.Millisecond, Concurrency: 1})

	_, err := c.Keyspace(context.Background(), "demo")
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	_, err = c.Keyspace(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, 2, loader.callsFor("demo"))
}

func TestCacheSnapshot(t *testing.T) {
	loader := newFakeLoader()
	c := NewCache(loader, CacheConfig{})

	s, err := c.Snapshot(context.Background(), "demo", "other", "empty")
	require.NoError(t, err)
	assert.Equal(t, []string{"demo", "empty", "other"}, s.Keyspaces())

	table, err := s.FindTable("demo", "users")
	require.NoError(t, err)
	assert.Equal(t, "demo.users", table.QualifiedName())

	_, err = s.FindTable("other", "events")
	require.NoError(t, err)
}

func TestCacheSnapshotMissingKeyspace(t *testing.T) {
	c := NewCache(newFakeLoader(), CacheConfig{Concurrency: 1})
	_, err := c.Snapshot(context.Background(), "demo", "missing")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "missing", nf.Name)
}
