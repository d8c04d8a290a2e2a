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
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/vikasyadav15/crossdata/go/vt/log"
)

// Loader reads the tables of one keyspace from a live backend. A missing
// keyspace is reported as a *NotFoundError.
type Loader interface {
	LoadKeyspace(ctx context.Context, keyspace string) ([]*Table, error)
}

const (
	// DefaultExpiration is how long loaded keyspaces are kept by default.
	DefaultExpiration = 5 * time.Minute
	// DefaultConcurrency bounds the number of keyspaces loaded at once.
	DefaultConcurrency = 4
)

// CacheConfig is the configuration for a Cache.
type CacheConfig struct {
	// Expiration is how long to keep a loaded keyspace. Use
	// cache.NoExpiration to keep keyspaces until invalidated.
	Expiration time.Duration
	// CleanupInterval is how often to remove expired keyspaces.
	CleanupInterval time.Duration
	// Concurrency is the number of keyspaces loaded in parallel.
	Concurrency int
}

// Cache loads keyspaces through a Loader and keeps them for a while.
// Validation never talks to the Cache directly: it works on the immutable
// Snapshot returned by Snapshot, so lookups made while validating do no I/O.
type Cache struct {
	loader Loader
	cache  *cache.Cache
	cfg    CacheConfig
}

// NewCache creates a cache over loader.
func NewCache(loader Loader, cfg CacheConfig) *Cache {
	if cfg.Expiration == 0 {
		cfg.Expiration = DefaultExpiration
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 2 * cfg.Expiration
		if cfg.CleanupInterval <= 0 {
			cfg.CleanupInterval = 2 * DefaultExpiration
		}
	}
	if cfg.Concurrency <= 0 {
		log.Warningf("Concurrency (%d) must be positive, defaulting to %d", cfg.Concurrency, DefaultConcurrency)
		cfg.Concurrency = DefaultConcurrency
	}
	return &Cache{
		loader: loader,
		cache:  cache.New(cfg.Expiration, cfg.CleanupInterval),
		cfg:    cfg,
	}
}

// Keyspace returns the tables of keyspace, loading them if they are not
// cached yet.
func (c *Cache) Keyspace(ctx context.Context, keyspace string) ([]*Table, error) {
	if v, ok := c.cache.Get(keyspace); ok {
		return cloneTables(v.([]*Table)), nil
	}
	start := time.Now()
	tables, err := c.loader.LoadKeyspace(ctx, keyspace)
	if err != nil {
		return nil, err
	}
	for _, t := range tables {
		t.Keyspace = keyspace
	}
	c.cache.SetDefault(keyspace, tables)
	log.Infof("Loaded %d tables of keyspace %s in %v", len(tables), keyspace, time.Since(start))
	return cloneTables(tables), nil
}

func cloneTables(tables []*Table) []*Table {
	clones := make([]*Table, len(tables))
	for i, t := range tables {
		clones[i] = t.Clone()
	}
	return clones
}

// Invalidate drops a keyspace so that the next lookup reloads it.
func (c *Cache) Invalidate(keyspace string) {
	c.cache.Delete(keyspace)
}

// Snapshot loads the given keyspaces concurrently and returns an immutable
// snapshot of them. The first error cancels the remaining loads.
func (c *Cache) Snapshot(ctx context.Context, keyspaces ...string) (*Snapshot, error) {
	loaded := make([]Keyspace, len(keyspaces))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(c.cfg.Concurrency)
	for i, ks := range keyspaces {
		eg.Go(func() error {
			tables, err := c.Keyspace(ctx, ks)
			if err != nil {
				return err
			}
			loaded[i] = Keyspace{Name: ks, Tables: tables}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return NewSnapshotFromKeyspaces(loaded...), nil
}
