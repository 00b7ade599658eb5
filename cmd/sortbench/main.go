// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command sortbench demonstrates and measures the algorithms of package
// sorts.
//
// Usage:
//
//	sortbench demo                         # sort the sample [64 25 12 22 11] with every algorithm
//	sortbench demo --sample 5,3,3,0,2      # sort a custom sample
//	sortbench bench --sizes 1000,100000 --patterns random,sorted --trials 5
//	sortbench list                         # show the algorithm table
//	sortbench --config run.yaml bench      # load samples, sizes, patterns... from YAML
//
// The quicksort pivot defaults to $SORTS_PIVOT (or "last") and can be set
// with --pivot.
package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sorting/sorts"
)

// app carries state shared by all subcommands once the root command's
// PersistentPreRunE has run.
type app struct {
	log   *logrus.Logger
	cfg   Config
	pivot sorts.PivotStrategy

	configPath string
	logLevel   string
	pivotName  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	root := &cobra.Command{
		Use:          "sortbench",
		Short:        "Demonstrate and benchmark classic integer sorting algorithms",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML run file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.pivotName, "pivot", "", "quicksort pivot: last, median3, random (default $"+sorts.PivotEnv+" or last)")

	root.AddCommand(newDemoCmd(a), newBenchCmd(a), newListCmd(a))
	return root
}

// setup configures logging and resolves the run configuration. Precedence
// for the pivot is --pivot, then the config file, then SORTS_PIVOT.
func (a *app) setup(cmd *cobra.Command) error {
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return errors.Wrap(err, "--log-level")
	}
	a.log.SetLevel(level)

	a.cfg = DefaultConfig()
	if a.configPath != "" {
		if a.cfg, err = LoadConfig(a.configPath); err != nil {
			return err
		}
		a.log.WithField("path", a.configPath).Debug("loaded config")
	}

	switch {
	case a.pivotName != "":
		a.pivot, err = sorts.ParsePivot(a.pivotName)
	case a.cfg.Pivot != "":
		a.pivot, err = sorts.ParsePivot(a.cfg.Pivot)
	default:
		a.pivot, err = sorts.PivotFromEnv()
	}
	if err != nil {
		return err
	}
	a.log.WithField("pivot", a.pivot).Debug("pivot strategy")
	return nil
}
