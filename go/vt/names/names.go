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

// Package names holds the qualified names used to address catalog entities
// and the first-level entities of the engine: clusters, connectors, data
// stores and nodes.
package names

import (
	"strings"
)

// QualifiedName is an optionally namespace-qualified identifier such as
// "ks.users" or "users".
type QualifiedName struct {
	// Qualifier is empty when the name was written unqualified.
	Qualifier string
	Name      string
}

// NewQualifiedName builds a QualifiedName from its parts.
func NewQualifiedName(qualifier, name string) QualifiedName {
	return QualifiedName{Qualifier: qualifier, Name: name}
}

// ParseQualifiedName splits raw on the first '.'.
func ParseQualifiedName(raw string) QualifiedName {
	if qualifier, name, ok := strings.Cut(raw, "."); ok {
		return QualifiedName{Qualifier: qualifier, Name: name}
	}
	return QualifiedName{Name: raw}
}

// IsQualified reports whether the qualifier was given explicitly.
func (q QualifiedName) IsQualified() bool {
	return q.Qualifier != ""
}

// Resolve returns the effective qualifier: the explicit one if present,
// otherwise defaultQualifier.
func (q QualifiedName) Resolve(defaultQualifier string) string {
	if q.IsQualified() {
		return q.Qualifier
	}
	return defaultQualifier
}

// String renders the name as written, with the qualifier only when explicit.
func (q QualifiedName) String() string {
	if q.IsQualified() {
		return q.Qualifier + "." + q.Name
	}
	return q.Name
}
