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
	"gopkg.in/yaml.v3"

	"github.com/vikasyadav15/crossdata/go/vt/log"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
)

var (
	dumpOptKeyspaces []string
	dumpOptOutput    string
	dumpOptCassandra cassandraFlags
)

func runDump(cmd *cobra.Command, args []string) error {
	if len(dumpOptKeyspaces) == 0 {
		return vterrors.New(codes.InvalidArgument, "--keyspaces is required")
	}
	ctx := cmd.Context()
	conn := newCassandraConnector()
	defer func() {
		if err := conn.Shutdown(); err != nil {
			log.Warningf("Cannot shut down the Cassandra connector: %v", err)
		}
	}()
	if err := dumpOptCassandra.connect(ctx, conn); err != nil {
		return err
	}

	snapshot, err := liveSnapshot(ctx, conn, dumpOptKeyspaces)
	if err != nil {
		return err
	}
	if dumpOptOutput != "" {
		if err := snapshot.WriteFile(dumpOptOutput); err != nil {
			return err
		}
		log.Infof("Wrote %d keyspaces to %s", len(snapshot.Keyspaces()), dumpOptOutput)
		return nil
	}
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func Dump() *cobra.Command {
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Read keyspaces from Cassandra and write them as a YAML catalog snapshot",
		Args:  cobra.NoArgs,
		RunE:  runDump,
	}
	dumpCmd.Flags().StringSliceVar(&dumpOptKeyspaces, "keyspaces", nil, "comma separated keyspaces to dump")
	dumpCmd.Flags().StringVarP(&dumpOptOutput, "output", "o", "", "file to write the snapshot to, standard output if empty")
	dumpOptCassandra.register(dumpCmd.Flags())
	return dumpCmd
}

func Catalog() *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with catalog snapshots",
		Args:  cobra.NoArgs,
		Run:   func(cmd *cobra.Command, _ []string) { cmd.Help() },
	}
	catalogCmd.AddCommand(Dump())
	return catalogCmd
}
