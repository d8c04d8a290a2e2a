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
	"bytes"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Plan represents the execution strategy for a given statement.
// Root is a tree of steps where each step runs before its
// children. A nil Root is the empty plan: nothing has to run.
type (
	PlanType int8

	Plan struct {
		ID       string    // ID uniquely identifies the plan.
		Type     PlanType  // Type of plan
		Kind     string    // Kind of statement the plan was built from.
		Original string    // Original is the canonical text of the statement.
		Root     *Step     // Root contains the steps needed to fulfil the statement.
		Created  time.Time // Created is when the plan was built.

		ExecCount uint64 // Count of times this plan was executed
		ExecTime  uint64 // Total execution time
		StepCount uint64 // Total number of steps sent to backends
		Errors    uint64 // Total number of errors
	}
)

const (
	PlanUnknown PlanType = iota
	PlanEmpty
	PlanDirectDDL
	PlanComplex
)

// NewPlan creates a plan with a fresh ID.
func NewPlan(kind, original string, root *Step) *Plan {
	return &Plan{
		ID:       uuid.NewString(),
		Type:     getPlanType(root),
		Kind:     kind,
		Original: original,
		Root:     root,
		Created:  time.Now(),
	}
}

// IsEmpty reports whether executing the plan is a no-op.
func (p *Plan) IsEmpty() bool {
	return p.Root == nil
}

// Steps returns the steps of the plan in document order.
func (p *Plan) Steps() []*Step {
	var steps []*Step
	_ = Walk(p.Root, func(step *Step, _ int) error {
		steps = append(steps, step)
		return nil
	})
	return steps
}

// AddStats updates the execution counters of the plan.
func (p *Plan) AddStats(steps uint64, elapsed time.Duration, failed bool) {
	atomic.AddUint64(&p.ExecCount, 1)
	atomic.AddUint64(&p.ExecTime, uint64(elapsed))
	atomic.AddUint64(&p.StepCount, steps)
	if failed {
		atomic.AddUint64(&p.Errors, 1)
	}
}

// MarshalJSON serializes the plan into a JSON representation.
func (p *Plan) MarshalJSON() ([]byte, error) {
	var instructions *PlanDescription
	if p.Root != nil {
		description := PrimitiveToPlanDescription(p.Root)
		instructions = &description
	}

	marshalPlan := struct {
		ID           string
		Type         string
		QueryType    string
		Original     string           `json:",omitempty"`
		Instructions *PlanDescription `json:",omitempty"`
		ExecCount    uint64           `json:",omitempty"`
		ExecTime     time.Duration    `json:",omitempty"`
		StepCount    uint64           `json:",omitempty"`
		Errors       uint64           `json:",omitempty"`
	}{
		ID:           p.ID,
		Type:         p.Type.String(),
		QueryType:    p.Kind,
		Original:     p.Original,
		Instructions: instructions,
		ExecCount:    atomic.LoadUint64(&p.ExecCount),
		ExecTime:     time.Duration(atomic.LoadUint64(&p.ExecTime)),
		StepCount:    atomic.LoadUint64(&p.StepCount),
		Errors:       atomic.LoadUint64(&p.Errors),
	}

	b := new(bytes.Buffer)
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	err := enc.Encode(marshalPlan)
	if err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

func (p PlanType) String() string {
	switch p {
	case PlanEmpty:
		return "Empty"
	case PlanDirectDDL:
		return "DirectDDL"
	case PlanComplex:
		return "Complex"
	default:
		return "Unknown"
	}
}

func getPlanType(root *Step) PlanType {
	switch {
	case root == nil:
		return PlanEmpty
	case len(root.Children) == 0:
		return PlanDirectDDL
	default:
		return PlanComplex
	}
}
