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

package planbuilder

import (
	"time"

	"github.com/vikasyadav15/crossdata/go/stats"
	"github.com/vikasyadav15/crossdata/go/vt/catalog"
	"github.com/vikasyadav15/crossdata/go/vt/log"
	"github.com/vikasyadav15/crossdata/go/vt/statement"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
	"github.com/vikasyadav15/crossdata/go/vt/vtgate/engine"
)

// Results recorded in planBuilderValidations.
const (
	resultOK              = "OK"
	resultNoop            = "Noop"
	resultValidationError = "ValidationError"
	resultError           = "Error"
)

var (
	planBuilderValidations = stats.NewCountersWithMultiLabels(
		"PlanBuilderValidations",
		"Statements validated by the plan builder, by kind and result",
		[]string{"Kind", "Result"})
	planBuildTimings = stats.NewTimings(
		"PlanBuildTimings",
		"Time spent validating and compiling statements",
		"Kind")
)

// Build validates stmt against cat and compiles it into a plan.
// It's the main entry point for this package.
//
// A validation failure is returned as is, i.e. as a
// *statement.ValidationError. A statement that validates to a no-op, e.g.
// CREATE INDEX IF NOT EXISTS on an existing index, yields an empty plan.
func Build(stmt statement.Statement, cat catalog.Catalog, env statement.Env) (*engine.Plan, error) {
	start := time.Now()
	kind := stmt.Kind().String()
	defer planBuildTimings.Record(kind, start)

	var (
		validated statement.Validated
		err       error
	)
	switch stmt := stmt.(type) {
	case *statement.CreateIndex, *statement.DropIndex:
		validated, err = stmt.Validate(cat, env)
	default:
		panic("unexpected statement type")
	}
	if err != nil {
		result := resultError
		if statement.IsValidationError(err) {
			result = resultValidationError
		}
		planBuilderValidations.Add([]string{kind, result}, 1)
		if log.V(1) {
			log.Infof("%s rejected: %v (state %v)", stmt, err, vterrors.ErrState(err))
		}
		return nil, err
	}

	plan := validated.Plan()
	result := resultOK
	if plan.IsEmpty() {
		result = resultNoop
	}
	planBuilderValidations.Add([]string{kind, result}, 1)
	if log.V(1) {
		log.Infof("%s planned: %d steps in keyspace %s", stmt, len(plan.Steps()), validated.Keyspace())
	}
	return plan, nil
}

// BatchResult is the outcome of building one statement of a batch.
type BatchResult struct {
	Statement statement.Statement
	Plan      *engine.Plan
	Err       error
}

// BuildBatch builds every statement against the same catalog. When
// stopOnError is set, building stops at the first failure and the returned
// slice ends with the failed statement; otherwise every statement gets a
// result.
func BuildBatch(stmts []statement.Statement, cat catalog.Catalog, env statement.Env, stopOnError bool) []BatchResult {
	results := make([]BatchResult, 0, len(stmts))
	for _, stmt := range stmts {
		plan, err := Build(stmt, cat, env)
		results = append(results, BatchResult{Statement: stmt, Plan: plan, Err: err})
		if err != nil && stopOnError {
			break
		}
	}
	return results
}

// Validations returns the number of statements of kind that ended with
// result, e.g. ("CreateIndex", "OK").
func Validations(kind, result string) int64 {
	return planBuilderValidations.Counter(kind, result)
}
