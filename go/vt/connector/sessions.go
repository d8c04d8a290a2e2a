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

package connector

import (
	"slices"
	"sync"

	"github.com/vikasyadav15/crossdata/go/vt/names"
)

// Sessions is a table of per-cluster sessions, safe for concurrent use.
type Sessions[S any] struct {
	mu       sync.Mutex
	sessions map[names.ClusterName]S
}

// Put stores s for cluster and returns the session it replaced, if any.
func (t *Sessions[S]) Put(cluster names.ClusterName, s S) (previous S, replaced bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sessions == nil {
		t.sessions = make(map[names.ClusterName]S)
	}
	previous, replaced = t.sessions[cluster]
	t.sessions[cluster] = s
	return previous, replaced
}

// Get returns the session of cluster.
func (t *Sessions[S]) Get(cluster names.ClusterName) (S, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[cluster]
	return s, ok
}

// Take removes and returns the session of cluster.
func (t *Sessions[S]) Take(cluster names.ClusterName) (S, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[cluster]
	delete(t.sessions, cluster)
	return s, ok
}

// TakeAll removes and returns every session.
func (t *Sessions[S]) TakeAll() map[names.ClusterName]S {
	t.mu.Lock()
	defer t.mu.Unlock()
	all := t.sessions
	t.sessions = nil
	return all
}

// Clusters returns the clusters with a session, sorted.
func (t *Sessions[S]) Clusters() []names.ClusterName {
	t.mu.Lock()
	defer t.mu.Unlock()
	clusters := make([]names.ClusterName, 0, len(t.sessions))
	for c := range t.sessions {
		clusters = append(clusters, c)
	}
	slices.Sort(clusters)
	return clusters
}
