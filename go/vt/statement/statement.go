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

// Package statement implements the typed statements of the engine and their
// Validate, Plan and Translate contract.
//
// A Statement is validated against a read-only catalog. Validation either
// fails with a *ValidationError or returns a Validated value, which is the
// only way to reach Plan and Translate. Validated values are immutable and
// carry everything derived during validation: the effective keyspace, the
// completed options and whether the statement has to run at all.
package statement

import (
	"github.com/vikasyadav15/crossdata/go/vt/catalog"
	"github.com/vikasyadav15/crossdata/go/vt/lucene"
	"github.com/vikasyadav15/crossdata/go/vt/vtgate/engine"
)

// Kind is the discriminant of a statement.
type Kind int

const (
	KindCreateIndex Kind = iota
	KindDropIndex
)

func (k Kind) String() string {
	switch k {
	case KindCreateIndex:
		return "CreateIndex"
	case KindDropIndex:
		return "DropIndex"
	}
	return "Unknown"
}

// Statement is implemented by every statement variant of this package.
type Statement interface {
	// Kind returns the statement kind.
	Kind() Kind
	// String returns the canonical text of the statement.
	String() string
	// Validate runs the rules of the statement in order and stops at the
	// first failure, which is returned as a *ValidationError. Neither the
	// catalog nor the statement is modified.
	Validate(cat catalog.Catalog, env Env) (Validated, error)

	iStatement()
}

// Validated is the result of a successful validation.
type Validated interface {
	// Statement returns a copy of the validated statement.
	Statement() Statement
	// Keyspace returns the effective keyspace.
	Keyspace() string
	// ShouldExecute is false when the statement is a validated no-op,
	// e.g. CREATE INDEX IF NOT EXISTS on an existing index.
	ShouldExecute() bool
	// Plan compiles the statement. The plan is empty when ShouldExecute
	// is false.
	Plan() *engine.Plan
	// Translate renders the native statement text. It panics when
	// ShouldExecute is false.
	Translate() string

	iValidated()
}

// Env is the context of a validation.
type Env struct {
	// DefaultKeyspace is used for names written without a keyspace.
	DefaultKeyspace string
	// Lucene completes Lucene index definitions. Nil means
	// lucene.DefaultConfig().
	Lucene *lucene.Config
}

func (e Env) luceneConfig() *lucene.Config {
	if e.Lucene != nil {
		return e.Lucene
	}
	return lucene.DefaultConfig()
}
