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
	"github.com/spf13/cobra"

	"github.com/vikasyadav15/crossdata/go/vt/statement"
	"github.com/vikasyadav15/crossdata/go/vt/vtgate/planbuilder"
)

// statementCommand creates a command that builds its statement from flags
// and hands it to run.
func statementCommand(use, short string, flags statementFlags, run func(cmd *cobra.Command, stmt statement.Statement) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stmt, err := flags.build()
			if err != nil {
				return err
			}
			return run(cmd, stmt)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func runPlan(cmd *cobra.Command, stmt statement.Statement) error {
	cat, err := loadCatalogFile()
	if err != nil {
		return err
	}
	plan, err := planbuilder.Build(stmt, cat, engineCfg.Env())
	if err != nil {
		return err
	}
	return printPlan(cmd.OutOrStdout(), plan)
}

func Plan() *cobra.Command {
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Validate a statement against --catalog-file and print its execution plan",
		Args:  cobra.NoArgs,
		Run:   func(cmd *cobra.Command, _ []string) { cmd.Help() },
	}
	planCmd.AddCommand(statementCommand("create-index", "Plan a CREATE INDEX statement", &createIndexFlags{}, runPlan))
	planCmd.AddCommand(statementCommand("drop-index", "Plan a DROP INDEX statement", &dropIndexFlags{}, runPlan))
	return planCmd
}
