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
)

func runValidate(cmd *cobra.Command, stmt statement.Statement) error {
	cat, err := loadCatalogFile()
	if err != nil {
		return err
	}
	validated, err := stmt.Validate(cat, engineCfg.Env())
	if err != nil {
		return err
	}
	return printValidation(cmd.OutOrStdout(), validated)
}

func Validate() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a statement against --catalog-file without planning it",
		Args:  cobra.NoArgs,
		Run:   func(cmd *cobra.Command, _ []string) { cmd.Help() },
	}
	validateCmd.AddCommand(statementCommand("create-index", "Validate a CREATE INDEX statement", &createIndexFlags{}, runValidate))
	validateCmd.AddCommand(statementCommand("drop-index", "Validate a DROP INDEX statement", &dropIndexFlags{}, runValidate))
	return validateCmd
}
