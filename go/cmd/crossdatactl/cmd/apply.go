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
	"google.golang.org/grpc/codes"

	"github.com/vikasyadav15/crossdata/go/vt/catalog"
	"github.com/vikasyadav15/crossdata/go/vt/connector"
	"github.com/vikasyadav15/crossdata/go/vt/connector/cassandra"
	"github.com/vikasyadav15/crossdata/go/vt/log"
	"github.com/vikasyadav15/crossdata/go/vt/statement"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
	"github.com/vikasyadav15/crossdata/go/vt/vtgate"
	"github.com/vikasyadav15/crossdata/go/vt/vtgate/engine"
)

var applyOptCassandra cassandraFlags

// runApply validates stmt against --catalog-file, or against the live
// catalog when no file is given, then executes its plan on Cassandra.
func runApply(cmd *cobra.Command, stmt statement.Statement) error {
	ctx := cmd.Context()
	conn := newCassandraConnector()
	registry := connector.NewRegistry()
	if err := registry.Register(conn); err != nil {
		return err
	}
	defer func() {
		if err := registry.Shutdown(); err != nil {
			log.Warningf("Cannot shut down connectors: %v", err)
		}
	}()
	if err := applyOptCassandra.connect(ctx, conn); err != nil {
		return err
	}

	var (
		cat catalog.Catalog
		err error
	)
	if catalogFile != "" {
		cat, err = loadCatalogFile()
	} else {
		keyspaces := statementKeyspaces(stmt, engineCfg.DefaultKeyspace)
		if len(keyspaces) == 0 {
			return vterrors.New(codes.InvalidArgument, "cannot tell which keyspace to load: qualify the names or set --keyspace")
		}
		cat, err = liveSnapshot(ctx, conn, keyspaces)
	}
	if err != nil {
		return err
	}

	executor := vtgate.NewExecutor(registry, map[engine.Backend]vtgate.Route{
		engine.Cassandra: {Connector: cassandra.Name, Cluster: cliCluster},
	})
	plan, err := executor.ExecuteStatement(ctx, stmt, cat, engineCfg.Env())
	if plan != nil {
		if perr := printPlan(cmd.OutOrStdout(), plan); perr != nil && err == nil {
			err = perr
		}
	}
	return err
}

func Apply() *cobra.Command {
	applyCmd := &cobra.Command{
		Use:   "apply",
		Short: "Validate a statement, then execute its plan on Cassandra",
		Args:  cobra.NoArgs,
		Run:   func(cmd *cobra.Command, _ []string) { cmd.Help() },
	}
	applyOptCassandra.register(applyCmd.PersistentFlags())
	applyCmd.AddCommand(statementCommand("create-index", "Create an index", &createIndexFlags{}, runApply))
	applyCmd.AddCommand(statementCommand("drop-index", "Drop an index", &dropIndexFlags{}, runApply))
	return applyCmd
}
