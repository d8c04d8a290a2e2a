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

/*
Package planbuilder turns statements into execution plans.

The main entry point is Build, which validates a statement against a catalog
and compiles the result into an engine.Plan. Validation and compilation are
kept apart by the statement package: a plan can only be produced from the
Validated value returned by a successful validation.

A plan is a tree of engine.Step values. Each step carries the native
statement text for one backend and runs before its children; the tree is
executed in document order. Index statements compile to at most two steps:
the index DDL itself and, for Lucene indexes, the statement maintaining the
sidecar column that backs the index.

BuildBatch builds several statements against the same catalog snapshot. The
catalog is not updated between statements, so a batch that creates an index
and then drops it is validated against the catalog as it was before the
batch.
*/
package planbuilder
