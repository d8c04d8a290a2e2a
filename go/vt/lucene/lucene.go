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

// Package lucene synthesizes the options of Lucene-backed custom indexes:
// the field schema derived from column types and the base tuning options.
package lucene

import (
	"maps"
	"strings"

	"github.com/vikasyadav15/crossdata/go/vt/catalog"
)

const (
	// ReservedPrefix is reserved for engine-managed names, checked
	// case-insensitively on index and column names.
	ReservedPrefix = "stratio"
	// IndexPrefix prefixes the stored name and the sidecar column of a
	// Lucene index.
	IndexPrefix = "stratio_lucene_"
	// SidecarPrefix identifies a table that already carries a Lucene
	// sidecar column.
	SidecarPrefix = "stratio_lucene"
	// DefaultIndexClass implements Lucene indexes on the backend.
	DefaultIndexClass = "org.apache.cassandra.db.index.stratio.RowIndex"
	// DefaultAnalyzer is the analyzer put in generated schemas.
	DefaultAnalyzer = "org.apache.lucene.analysis.standard.StandardAnalyzer"
	// SchemaOption is the option key holding the generated schema.
	SchemaOption = "schema"
)

// Registry maps CQL column types to Lucene field type fragments. A Registry
// is never modified after construction; With returns a modified copy.
type Registry struct {
	types map[string]string
}

// DefaultRegistry returns the standard type mapping.
func DefaultRegistry() *Registry {
	return &Registry{types: map[string]string{
		"text":    `{type:"string"}`,
		"varchar": `{type:"string"}`,
		"inet":    `{type:"string"}`,
		"ascii":   `{type:"string"}`,
		"bigint":  `{type:"long"}`,
		"counter": `{type:"long"}`,
		"boolean": `{type:"boolean"}`,
		"double":  `{type:"double"}`,
		"float":   `{type:"float"}`,
		"int":     `{type:"integer"}`,
		"uuid":    `{type:"uuid"}`,
	}}
}

// With returns a copy of the registry where cqlType maps to fragment.
func (r *Registry) With(cqlType, fragment string) *Registry {
	types := maps.Clone(r.types)
	if types == nil {
		types = make(map[string]string)
	}
	types[strings.ToLower(cqlType)] = fragment
	return &Registry{types: types}
}

// FieldType returns the Lucene fragment for a CQL type.
func (r *Registry) FieldType(cqlType string) (string, bool) {
	fragment, ok := r.types[strings.ToLower(cqlType)]
	return fragment, ok
}

// Types returns a copy of the mapping.
func (r *Registry) Types() map[string]string {
	return maps.Clone(r.types)
}

// Option is one rendered index option. Key and Value are quoted CQL string
// literals, e.g. 'refresh_seconds' and '1'.
type Option struct {
	Key   string
	Value string
}

// DefaultBaseOptions returns the base tuning options of a Lucene index,
// in the order they are rendered.
func DefaultBaseOptions() []Option {
	return []Option{
		{Key: "'refresh_seconds'", Value: "'1'"},
		{Key: "'num_cached_filters'", Value: "'1'"},
		{Key: "'ram_buffer_mb'", Value: "'32'"},
		{Key: "'max_merge_mb'", Value: "'5'"},
		{Key: "'max_cached_mb'", Value: "'30'"},
	}
}

// Config holds everything needed to complete a Lucene index definition.
// It is shared read-only between validations.
type Config struct {
	Registry        *Registry
	IndexClass      string
	DefaultAnalyzer string
	BaseOptions     []Option
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Registry:        DefaultRegistry(),
		IndexClass:      DefaultIndexClass,
		DefaultAnalyzer: DefaultAnalyzer,
		BaseOptions:     DefaultBaseOptions(),
	}
}

// Schema renders the Lucene schema for the given columns. Columns whose type
// has no mapping are left out.
func (c *Config) Schema(columns []catalog.Column) string {
	var sb strings.Builder
	sb.WriteString(`{default_analyzer:"`)
	sb.WriteString(c.DefaultAnalyzer)
	sb.WriteString(`",fields:{`)
	first := true
	for _, col := range columns {
		fragment, ok := c.Registry.FieldType(col.Type)
		if !ok {
			continue
		}
		if !first {
			sb.WriteByte(',')
		}
		first = false
		sb.WriteString(col.Name)
		sb.WriteByte(':')
		sb.WriteString(fragment)
	}
	sb.WriteString("}}")
	return sb.String()
}

// Options returns the base options followed by the generated schema.
func (c *Config) Options(columns []catalog.Column) []Option {
	options := make([]Option, 0, len(c.BaseOptions)+1)
	options = append(options, c.BaseOptions...)
	options = append(options, Option{
		Key:   "'" + SchemaOption + "'",
		Value: "'" + c.Schema(columns) + "'",
	})
	return options
}

// IsReserved reports whether name starts with the reserved prefix, ignoring
// case.
func IsReserved(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), ReservedPrefix)
}

// IndexName returns the stored name of a Lucene index named name.
func IndexName(name string) string {
	return IndexPrefix + name
}

// UserName strips the Lucene prefix from a stored index or sidecar column
// name.
func UserName(stored string) string {
	return strings.TrimPrefix(stored, IndexPrefix)
}
