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
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/spf13/cobra"

	"github.com/vikasyadav15/crossdata/go/stats/prometheusbackend"
	"github.com/vikasyadav15/crossdata/go/vt/engineconfig"
	"github.com/vikasyadav15/crossdata/go/vt/log"
)

const (
	formatTable = "table"
	formatJSON  = "json"

	metricsNamespace = "crossdata"
	metricsJob       = "crossdatactl"
)

var (
	catalogFile  string
	outputFormat string
	pushGateway  string

	// engineCfg is loaded before any subcommand runs.
	engineCfg = engineconfig.Default()

	metricsOnce     sync.Once
	metricsRegistry = prometheus.NewRegistry()
)

func Main() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "crossdatactl",
		Short:        "Validate, plan and apply index statements",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Init(cmd.Flags()); err != nil {
				return err
			}
			if outputFormat != formatTable && outputFormat != formatJSON {
				return fmt.Errorf("invalid --format %q: expected %s or %s", outputFormat, formatTable, formatJSON)
			}
			cfg, err := engineconfig.Load(cmd.Flags())
			if err != nil {
				return err
			}
			engineCfg = cfg
			if pushGateway != "" {
				metricsOnce.Do(func() {
					prometheusbackend.InitWithRegisterer(metricsRegistry, metricsNamespace)
				})
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if pushGateway == "" {
				return nil
			}
			if err := push.New(pushGateway, metricsJob).Gatherer(metricsRegistry).Push(); err != nil {
				log.Warningf("Cannot push metrics to %s: %v", pushGateway, err)
			}
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) { cmd.Help() },
	}

	fs := rootCmd.PersistentFlags()
	log.RegisterFlags(fs)
	engineconfig.RegisterFlags(fs)
	fs.StringVar(&catalogFile, "catalog-file", "", "YAML catalog snapshot to validate against, as written by catalog dump")
	rootCmd.MarkPersistentFlagFilename("catalog-file", "yaml", "yml")
	fs.StringVar(&outputFormat, "format", formatTable, "output format: table or json")
	fs.StringVar(&pushGateway, "metrics-pushgateway", "", "Prometheus Pushgateway URL to push metrics to when the command ends")

	rootCmd.AddCommand(Plan())
	rootCmd.AddCommand(Validate())
	rootCmd.AddCommand(Catalog())
	rootCmd.AddCommand(Apply())

	return rootCmd
}
