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

package vtgate

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"

	"github.com/vikasyadav15/crossdata/go/stats"
	"github.com/vikasyadav15/crossdata/go/vt/catalog"
	"github.com/vikasyadav15/crossdata/go/vt/connector"
	"github.com/vikasyadav15/crossdata/go/vt/log"
	"github.com/vikasyadav15/crossdata/go/vt/names"
	"github.com/vikasyadav15/crossdata/go/vt/statement"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
	"github.com/vikasyadav15/crossdata/go/vt/vtgate/engine"
	"github.com/vikasyadav15/crossdata/go/vt/vtgate/planbuilder"
)

var (
	stepsExecuted = stats.NewCountersWithMultiLabels(
		"ExecutorSteps",
		"Plan steps sent to connectors, by backend and result",
		[]string{"Backend", "Result"})
	planTimings = stats.NewTimings(
		"ExecutorPlanTimings",
		"Time spent executing plans, by statement kind",
		"Kind")
)

// Route says which connector and cluster serve a backend.
type Route struct {
	Connector names.ConnectorName
	Cluster   names.ClusterName
}

// Executor runs plans by handing each step to the storage engine of the
// connector serving the step's backend.
type Executor struct {
	Registry *connector.Registry
	Routes   map[engine.Backend]Route
}

// NewExecutor creates a new Executor.
func NewExecutor(registry *connector.Registry, routes map[engine.Backend]Route) *Executor {
	return &Executor{Registry: registry, Routes: routes}
}

// Execute runs the steps of plan in document order: every step runs before
// its children, and children run in order. The first failing step stops the
// execution; its error is returned annotated with the step. Steps that
// already ran are not undone. Executing an empty plan is a no-op.
func (e *Executor) Execute(ctx context.Context, plan *engine.Plan) error {
	if plan.IsEmpty() {
		if log.V(1) {
			log.Infof("Nothing to execute for %s", plan.Original)
		}
		return nil
	}
	start := time.Now()
	defer planTimings.Record(plan.Kind, start)

	var executed uint64
	err := engine.Walk(plan.Root, func(step *engine.Step, depth int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.executeStep(ctx, step); err != nil {
			stepsExecuted.Add([]string{step.Backend.String(), "Error"}, 1)
			return vterrors.Wrapf(err, "step %d (%s, keyspace %s) %q failed", executed+1, step.Backend, step.Keyspace, step.Query)
		}
		stepsExecuted.Add([]string{step.Backend.String(), "OK"}, 1)
		executed++
		return nil
	})
	plan.AddStats(executed, time.Since(start), err != nil)
	if err != nil {
		log.ErrorS("plan failed", "plan", plan.ID, "kind", plan.Kind, "executed", executed, "error", err)
		return err
	}
	log.InfoS("plan executed", "plan", plan.ID, "kind", plan.Kind, "steps", executed, "elapsed", time.Since(start))
	return nil
}

func (e *Executor) executeStep(ctx context.Context, step *engine.Step) error {
	route, ok := e.Routes[step.Backend]
	if !ok {
		return vterrors.Errorf(codes.FailedPrecondition, "no connector routed for backend %s", step.Backend)
	}
	conn, err := e.Registry.Connector(route.Connector)
	if err != nil {
		return err
	}
	storage, err := conn.StorageEngine()
	if err != nil {
		return vterrors.Wrapf(err, "connector %s has no storage engine", route.Connector)
	}
	return storage.Execute(ctx, route.Cluster, step)
}

// ExecuteStatement builds the plan of stmt against cat and executes it. The
// plan is returned even when the execution fails.
func (e *Executor) ExecuteStatement(ctx context.Context, stmt statement.Statement, cat catalog.Catalog, env statement.Env) (*engine.Plan, error) {
	plan, err := planbuilder.Build(stmt, cat, env)
	if err != nil {
		return nil, err
	}
	return plan, e.Execute(ctx, plan)
}

// StepsExecuted returns the number of steps sent to backend that ended
// with result, OK or Error.
func StepsExecuted(backend engine.Backend, result string) int64 {
	return stepsExecuted.Counter(backend.String(), result)
}
