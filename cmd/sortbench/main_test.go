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
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sorting/internal/workerpool"
	"github.com/ajroetker/go-sorting/sorts"
	"github.com/ajroetker/go-sorting/sorts/contrib/workload"
)

func init() {
	color.NoColor = true
}

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, [][]int{DefaultSample}, cfg.Samples)
	assert.Equal(t, []string{"selection", "bubble", "merge", "quick", "counting"}, cfg.Algorithms)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
samples: [[3, 1, 2]]
algorithms: [merge, quick]
sizes: [10, 20]
patterns: [sorted, few-unique]
trials: 2
pivot: median3
seed: 7
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{3, 1, 2}}, cfg.Samples)
	assert.Equal(t, []string{"merge", "quick"}, cfg.Algorithms)
	assert.Equal(t, []int{10, 20}, cfg.Sizes)
	assert.Equal(t, []workload.Pattern{workload.Sorted, workload.FewUnique}, cfg.Patterns)
	assert.Equal(t, 2, cfg.Trials)
	assert.Equal(t, "median3", cfg.Pivot)
	assert.Equal(t, uint64(7), cfg.Seed)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultConfig().MaxValue, cfg.MaxValue)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config")

	_, err = LoadConfig(writeConfig(t, "trials: [oops"))
	assert.ErrorContains(t, err, "parsing")

	_, err = LoadConfig(writeConfig(t, "trials: 0\n"))
	assert.ErrorContains(t, err, "trials must be at least 1")

	_, err = LoadConfig(writeConfig(t, "algorithms: [heap]\n"))
	assert.True(t, errors.Is(err, sorts.ErrUnknownAlgorithm))

	_, err = LoadConfig(writeConfig(t, "pivot: first\n"))
	assert.True(t, errors.Is(err, sorts.ErrUnknownPivot))

	_, err = LoadConfig(writeConfig(t, "sizes: [10, -1]\n"))
	assert.ErrorContains(t, err, "sizes must not be negative")
}

func TestSelectedUsesPivot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithms = []string{"quick", "merge", "quick"}
	algos, err := cfg.Selected(sorts.PivotRandom)
	require.NoError(t, err)
	require.Len(t, algos, 2)
	assert.Equal(t, "quick/random", algos[0].Name)
	assert.Equal(t, "merge", algos[1].Name)
}

func TestDemoDefaultSample(t *testing.T) {
	t.Setenv(sorts.PivotEnv, "")
	out, _, err := run(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, out, "Sample [64 25 12 22 11] (5 elements, 9 inversions)")
	for _, name := range []string{"selection", "bubble", "merge", "quick", "counting"} {
		assert.Regexp(t, name+` +\[11 12 22 25 64\]`, out)
	}
}

// TestDemoNegativeSample checks counting sort reports its error while the
// other algorithms still sort.
func TestDemoNegativeSample(t *testing.T) {
	out, stderr, err := run(t, "demo", "--sample", "3,-1,2", "--log-level", "warn")
	require.NoError(t, err)
	assert.Regexp(t, `merge +\[-1 2 3\]`, out)
	assert.Regexp(t, `counting +error: value -1 at index 1`, out)
	assert.Contains(t, stderr, "sort failed")
}

func TestDemoDuplicateSample(t *testing.T) {
	out, _, err := run(t, "demo", "--sample", "3,3,3")
	require.NoError(t, err)
	assert.Contains(t, out, "Sample [3 3 3] (3 elements, 0 inversions)")

	out, _, err = run(t, "demo", "--sample", "2,1,2,1")
	require.NoError(t, err)
	assert.Contains(t, out, "Sample [2 1 2 1] (4 elements, 3 inversions)")
}

func TestInversions(t *testing.T) {
	for _, tc := range []struct {
		sample []int
		want   int
	}{
		{nil, 0},
		{[]int{7}, 0},
		{[]int{5, 5}, 0},
		{[]int{2, 1}, 1},
		{[]int{64, 25, 12, 22, 11}, 9},
		{[]int{3, 1, 3, 1, 3}, 3},
	} {
		assert.Equalf(t, tc.want, inversions(tc.sample), "%v", tc.sample)
	}
}

// TestInversionsMatchBubbleSwaps checks the count against bubble sort, which
// swaps exactly once per strictly inverted pair.
func TestInversionsMatchBubbleSwaps(t *testing.T) {
	bubble, err := sorts.Lookup("bubble")
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(3, 4))
	for _, p := range workload.Patterns() {
		for _, n := range []int{2, 10, 100} {
			sample := workload.Generate(p, n, 5, rng)
			want := inversions(sample)
			var st sorts.Stats
			require.NoError(t, bubble.Sort(sample, &st))
			assert.Equalf(t, want, st.Swaps, "%s/%d", p, n)
		}
	}
}

func TestDemoConfigSamples(t *testing.T) {
	path := writeConfig(t, "samples: [[2, 1], [9, 8, 7]]\nalgorithms: [bubble]\n")
	out, _, err := run(t, "--config", path, "demo")
	require.NoError(t, err)
	assert.Regexp(t, `bubble +\[1 2\]`, out)
	assert.Regexp(t, `bubble +\[7 8 9\]`, out)
	assert.Equal(t, 2, strings.Count(out, "Sample "))
}

func TestBench(t *testing.T) {
	out, _, err := run(t, "bench",
		"--sizes", "50,200",
		"--patterns", "random,reverse",
		"--trials", "3",
		"--workers", "2",
		"--pivot", "median3")
	require.NoError(t, err)

	assert.Contains(t, out, "Host: ")
	assert.Contains(t, out, "Pivot: median3, workers: 2, trials: 3")
	assert.Contains(t, out, "ALGORITHM")
	assert.Contains(t, out, "quick/median3")
	// 5 algorithms x 2 sizes x 2 patterns, plus header lines.
	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "random") || strings.Contains(line, "reverse") {
			rows++
			fields := strings.Fields(line)
			assert.Equal(t, "0", fields[len(fields)-1], "failures in %q", line)
		}
	}
	assert.Equal(t, 20, rows)
}

func TestBenchDefaultsToOneWorker(t *testing.T) {
	out, _, err := run(t, "bench", "--sizes", "10", "--patterns", "sorted", "--trials", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "workers: 1,")
}

func TestRunTrialsCountsFailures(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	input := []int{5, 4, 3, 2, 1}
	good, err := sorts.Lookup("merge")
	require.NoError(t, err)
	r := runTrials(good, input, 7, pool)
	assert.Equal(t, 0, r.Failures)
	assert.Equal(t, "merge", r.Algorithm)
	assert.Equal(t, 5, r.N)

	broken := sorts.Algorithm{
		Name: "broken",
		Sort: func(data []int, _ *sorts.Stats) error {
			data[0] = -1
			return nil
		},
	}
	r = runTrials(broken, input, 7, pool)
	assert.Equal(t, 7, r.Failures)

	failing := sorts.Algorithm{
		Name: "failing",
		Sort: func([]int, *sorts.Stats) error { return errors.New("boom") },
	}
	r = runTrials(failing, input, 4, pool)
	assert.Equal(t, 4, r.Failures)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, input)
}

func TestBenchSkipsQuadratic(t *testing.T) {
	path := writeConfig(t, "quadratic_limit: 100\nsizes: [500]\npatterns: [random]\ntrials: 1\n")
	out, stderr, err := run(t, "--config", path, "--log-level", "info", "bench")
	require.NoError(t, err)
	assert.NotContains(t, out, "selection")
	assert.NotContains(t, out, "bubble")
	assert.Contains(t, out, "merge")
	assert.Contains(t, stderr, "skipping quadratic algorithm")
}

func TestBenchRejectsBadFlags(t *testing.T) {
	_, _, err := run(t, "bench", "--patterns", "spiral")
	assert.True(t, errors.Is(err, workload.ErrUnknownPattern))

	_, _, err = run(t, "bench", "--trials", "-1")
	assert.ErrorContains(t, err, "trials must be at least 1")
}

func TestPivotPrecedence(t *testing.T) {
	t.Setenv(sorts.PivotEnv, "random")
	out, _, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "quick/random")

	path := writeConfig(t, "pivot: median3\n")
	out, _, err = run(t, "--config", path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "quick/median3")

	out, _, err = run(t, "--config", path, "--pivot", "last", "list")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^quick +no +yes`, out)

	t.Setenv(sorts.PivotEnv, "bogus")
	_, _, err = run(t, "list")
	assert.True(t, errors.Is(err, sorts.ErrUnknownPivot))
}

func TestList(t *testing.T) {
	t.Setenv(sorts.PivotEnv, "")
	out, _, err := run(t, "list")
	require.NoError(t, err)
	assert.Regexp(t, `(?m)^merge +yes +no +O\(n log n\)`, out)
	assert.Regexp(t, `(?m)^counting +yes +no +O\(n \+ k\)`, out)
	assert.Regexp(t, `(?m)^selection +no +yes`, out)
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "list")
	assert.ErrorContains(t, err, "--log-level")
}
