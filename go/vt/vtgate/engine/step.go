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

package engine

import (
	"fmt"
)

// Backend identifies the kind of engine a step is executed by.
type Backend int8

const (
	// Cassandra steps are native CQL statements sent to a Cassandra cluster.
	Cassandra Backend = iota
	// Deep steps run on the batch processing engine.
	Deep
	// Streaming steps run on the streaming engine.
	Streaming
)

var backendNames = [...]string{
	Cassandra: "CASSANDRA",
	Deep:      "DEEP",
	Streaming: "STREAMING",
}

func (b Backend) String() string {
	if b < 0 || int(b) >= len(backendNames) {
		return fmt.Sprintf("Backend(%d)", int8(b))
	}
	return backendNames[b]
}

// MarshalText implements encoding.TextMarshaler.
func (b Backend) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Step is one unit of a plan: a native statement for a backend, targeted at
// a keyspace. Children run after their parent, in order.
type Step struct {
	Backend  Backend
	Keyspace string
	Query    string
	Children []*Step
}

// NewStep creates a step without children.
func NewStep(backend Backend, keyspace, query string) *Step {
	return &Step{Backend: backend, Keyspace: keyspace, Query: query}
}

// AddChild appends child to the children of s and returns s.
func (s *Step) AddChild(child *Step) *Step {
	s.Children = append(s.Children, child)
	return s
}

// Inputs returns the children of the step.
func (s *Step) Inputs() []*Step {
	return s.Children
}

func (s *Step) description() PlanDescription {
	return PlanDescription{
		OperatorType: "Send",
		Variant:      s.Backend.String(),
		Keyspace:     s.Keyspace,
		Query:        s.Query,
	}
}

// Walk visits root and its descendants in document (pre-order) order,
// passing each step's depth. It stops at the first error.
func Walk(root *Step, visit func(step *Step, depth int) error) error {
	if root == nil {
		return nil
	}
	return walk(root, 0, visit)
}

func walk(step *Step, depth int, visit func(*Step, int) error) error {
	if err := visit(step, depth); err != nil {
		return err
	}
	for _, child := range step.Children {
		if err := walk(child, depth+1, visit); err != nil {
			return err
		}
	}
	return nil
}
