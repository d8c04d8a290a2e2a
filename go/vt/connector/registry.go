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
	"strings"
	"sync"

	"google.golang.org/grpc/codes"

	"github.com/vikasyadav15/crossdata/go/vt/log"
	"github.com/vikasyadav15/crossdata/go/vt/names"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
)

// Registry holds the connectors known to the engine by name.
type Registry struct {
	mu         sync.RWMutex
	connectors map[names.ConnectorName]registered
}

type registered struct {
	connector  Connector
	descriptor Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{connectors: make(map[names.ConnectorName]registered)}
}

// Register adds c. The descriptor is copied at registration time.
func (r *Registry) Register(c Connector) error {
	desc := c.Descriptor().Clone()
	if desc.Name == "" {
		return vterrors.New(codes.InvalidArgument, "connector descriptor has no name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.connectors[desc.Name]; ok {
		return vterrors.Errorf(codes.AlreadyExists, "connector %s already registered", desc.Name)
	}
	r.connectors[desc.Name] = registered{connector: c, descriptor: desc}
	log.Infof("Registered connector %s %s for %v", desc.Name, desc.Version, desc.DataStores)
	return nil
}

// Connector returns the connector registered as name.
func (r *Registry) Connector(name names.ConnectorName) (Connector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.connectors[name]
	if !ok {
		return nil, vterrors.Errorf(codes.NotFound, "connector %s not registered", name)
	}
	return reg.connector, nil
}

// ForDataStore returns the connectors declaring ds, sorted by name.
func (r *Registry) ForDataStore(ds names.DataStoreName) []Connector {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matches []registered
	for _, reg := range r.connectors {
		if reg.descriptor.Supports(ds) {
			matches = append(matches, reg)
		}
	}
	slices.SortFunc(matches, func(a, b registered) int {
		return strings.Compare(string(a.descriptor.Name), string(b.descriptor.Name))
	})
	connectors := make([]Connector, len(matches))
	for i, reg := range matches {
		connectors[i] = reg.connector
	}
	return connectors
}

// Descriptors returns copies of the registered descriptors, sorted by name.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptors := make([]Descriptor, 0, len(r.connectors))
	for _, reg := range r.connectors {
		descriptors = append(descriptors, reg.descriptor.Clone())
	}
	slices.SortFunc(descriptors, func(a, b Descriptor) int {
		return strings.Compare(string(a.Name), string(b.Name))
	})
	return descriptors
}

// Shutdown shuts every registered connector down and returns the first
// error.
func (r *Registry) Shutdown() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var first error
	for name, reg := range r.connectors {
		if err := reg.connector.Shutdown(); err != nil {
			log.Errorf("Shutting down connector %s: %v", name, err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
