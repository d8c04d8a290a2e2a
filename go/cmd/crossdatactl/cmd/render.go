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

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/vikasyadav15/crossdata/go/vt/statement"
	"github.com/vikasyadav15/crossdata/go/vt/vtgate/engine"
)

func printPlan(w io.Writer, plan *engine.Plan) error {
	if outputFormat == formatJSON {
		return printJSON(w, plan)
	}
	if _, err := fmt.Fprintf(w, "%s: %s\n", plan.Kind, plan.Original); err != nil {
		return err
	}
	if plan.IsEmpty() {
		_, err := fmt.Fprintln(w, "Nothing to execute.")
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header("Step", "Backend", "Keyspace", "Query")
	n := 0
	err := engine.Walk(plan.Root, func(step *engine.Step, depth int) error {
		n++
		return table.Append([]string{
			strconv.Itoa(n),
			step.Backend.String(),
			step.Keyspace,
			strings.Repeat("  ", depth) + step.Query,
		})
	})
	if err != nil {
		return err
	}
	return table.Render()
}

// validation is the printable outcome of a validation.
type validation struct {
	Kind          string            `json:"kind"`
	Statement     string            `json:"statement"`
	Keyspace      string            `json:"keyspace"`
	Index         string            `json:"index,omitempty"`
	Using         string            `json:"using,omitempty"`
	Options       map[string]string `json:"options,omitempty"`
	ShouldExecute bool              `json:"should_execute"`
}

func newValidation(v statement.Validated) validation {
	stmt := v.Statement()
	out := validation{
		Kind:          stmt.Kind().String(),
		Statement:     stmt.String(),
		Keyspace:      v.Keyspace(),
		ShouldExecute: v.ShouldExecute(),
	}
	if named, ok := v.(interface{ IndexName() string }); ok {
		out.Index = named.IndexName()
	}
	if def, ok := v.(statement.IndexDefinition); ok {
		out.Using = def.Using()
		for _, o := range def.Options() {
			if out.Options == nil {
				out.Options = make(map[string]string)
			}
			out.Options[o.Key] = o.Value
		}
	}
	return out
}

func printValidation(w io.Writer, v statement.Validated) error {
	out := newValidation(v)
	if outputFormat == formatJSON {
		return printJSON(w, out)
	}
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")
	rows := [][]string{
		{"kind", out.Kind},
		{"keyspace", out.Keyspace},
		{"index", out.Index},
		{"should_execute", strconv.FormatBool(out.ShouldExecute)},
	}
	if out.Using != "" {
		rows = append(rows, []string{"using", out.Using})
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
