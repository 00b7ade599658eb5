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

package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sorting/internal/platform"
	"github.com/ajroetker/go-sorting/internal/workerpool"
	"github.com/ajroetker/go-sorting/sorts"
	"github.com/ajroetker/go-sorting/sorts/contrib/check"
	"github.com/ajroetker/go-sorting/sorts/contrib/workload"
)

// benchResult aggregates the trials of one algorithm on one input.
type benchResult struct {
	Algorithm string
	Pattern   workload.Pattern
	N         int
	Mean      time.Duration
	Stats     sorts.Stats
	Failures  int
}

func newBenchCmd(a *app) *cobra.Command {
	var (
		patterns, algorithms      []string
		sizes                     []int
		trials, workers, maxValue int
		seed                      uint64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every algorithm over generated inputs",
		Long: `Time every algorithm over generated inputs.

Every trial sorts its own copy of the input and is checked afterwards.
With --workers above 1, trials run concurrently and compete for caches and
memory bandwidth, so MEAN reports contended wall-clock time. Keep the
default of one worker when comparing timings; raise it to check many
trials quickly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("sizes") {
				cfg.Sizes = sizes
			}
			if flags.Changed("patterns") {
				cfg.Patterns = nil
				for _, name := range patterns {
					p, err := workload.ParsePattern(name)
					if err != nil {
						return err
					}
					cfg.Patterns = append(cfg.Patterns, p)
				}
			}
			if flags.Changed("algorithms") {
				cfg.Algorithms = algorithms
			}
			if flags.Changed("trials") {
				cfg.Trials = trials
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("max-value") {
				cfg.MaxValue = maxValue
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			algos, err := cfg.Selected(a.pivot)
			if err != nil {
				return err
			}

			pool := workerpool.New(cfg.Workers)
			defer pool.Close()

			w := cmd.OutOrStdout()
			heading := color.New(color.Bold)
			heading.Fprintf(w, "Host: %s\n", platform.Describe())
			heading.Fprintf(w, "Pivot: %s, workers: %d, trials: %d, seed: %d\n\n", a.pivot, pool.NumWorkers(), cfg.Trials, cfg.Seed)

			results := a.bench(cfg, algos, pool)
			writeResults(w, results)

			if failed := lo.SumBy(results, func(r benchResult) int { return r.Failures }); failed > 0 {
				a.log.WithField("failures", failed).Warn("some trials failed")
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.IntSliceVar(&sizes, "sizes", nil, "input sizes")
	flags.StringSliceVar(&patterns, "patterns", nil, "input patterns: "+joinPatterns())
	flags.StringSliceVar(&algorithms, "algorithms", nil, "algorithms to run (default all)")
	flags.IntVar(&trials, "trials", 0, "trials per algorithm and input")
	flags.IntVar(&workers, "workers", 0, "worker goroutines, 0 for GOMAXPROCS (default 1)")
	flags.IntVar(&maxValue, "max-value", 0, "largest generated value")
	flags.Uint64Var(&seed, "seed", 0, "input generator seed")
	return cmd
}

func joinPatterns() string {
	names := lo.Map(workload.Patterns(), func(p workload.Pattern, _ int) string { return p.String() })
	return fmt.Sprint(names)
}

// bench runs cfg.Trials trials of every algorithm for every size and pattern.
// Trials run concurrently on the pool, each on its own copy of the input.
// Quadratic algorithms skip sizes above cfg.QuadraticLimit.
func (a *app) bench(cfg Config, algos []sorts.Algorithm, pool *workerpool.Pool) []benchResult {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	var results []benchResult
	for _, n := range cfg.Sizes {
		for _, p := range cfg.Patterns {
			input := workload.Generate(p, n, cfg.MaxValue, rng)
			for _, algo := range algos {
				log := a.log.WithFields(logrus.Fields{"algorithm": algo.Name, "pattern": p.String(), "n": n})
				if algo.Quadratic && cfg.QuadraticLimit > 0 && n > cfg.QuadraticLimit {
					log.Info("skipping quadratic algorithm")
					continue
				}
				r := runTrials(algo, input, cfg.Trials, pool)
				r.Pattern = p
				if r.Failures > 0 {
					log.WithField("failures", r.Failures).Warn("trials failed")
				}
				log.WithField("mean", r.Mean).Debug("done")
				results = append(results, r)
			}
		}
	}
	return results
}

func runTrials(algo sorts.Algorithm, input []int, trials int, pool *workerpool.Pool) benchResult {
	stats := make([]sorts.Stats, trials)
	durations := make([]time.Duration, trials)
	outputs := make([][]int, trials)
	failed := make([]bool, trials)

	pool.ParallelForAtomic(trials, func(i int) {
		data := slices.Clone(input)
		start := time.Now()
		err := algo.Sort(data, &stats[i])
		durations[i] = time.Since(start)
		outputs[i] = data
		failed[i] = err != nil
	})
	// Checking is kept out of the timed section.
	pool.ParallelFor(trials, func(start, end int) {
		for i := start; i < end; i++ {
			if !failed[i] && !check.IsSortedPermutation(input, outputs[i]) {
				failed[i] = true
			}
		}
	})

	var total sorts.Stats
	for _, st := range stats {
		total.Add(st)
	}
	return benchResult{
		Algorithm: algo.Name,
		N:         len(input),
		Mean:      lo.Sum(durations) / time.Duration(trials),
		Stats:     meanStats(total, trials),
		Failures:  lo.Count(failed, true),
	}
}

// meanStats divides the additive counters of total by trials. MaxDepth is
// already a maximum.
func meanStats(total sorts.Stats, trials int) sorts.Stats {
	return sorts.Stats{
		Comparisons: total.Comparisons / trials,
		Swaps:       total.Swaps / trials,
		Writes:      total.Writes / trials,
		Passes:      total.Passes / trials,
		MaxDepth:    total.MaxDepth,
	}
}

func writeResults(w io.Writer, results []benchResult) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tPATTERN\tN\tMEAN\tCOMPARISONS\tSWAPS\tWRITES\tDEPTH\tFAILED")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			r.Algorithm, r.Pattern, humanize.Comma(int64(r.N)), r.Mean,
			humanize.Comma(int64(r.Stats.Comparisons)), humanize.Comma(int64(r.Stats.Swaps)),
			humanize.Comma(int64(r.Stats.Writes)), r.Stats.MaxDepth, r.Failures)
	}
	tw.Flush()
}
