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
	"os"
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-sorting/sorts"
	"github.com/ajroetker/go-sorting/sorts/contrib/workload"
)

// Config is the run file accepted by --config.
//
//	samples: [[64, 25, 12, 22, 11], [5, 3, 3, 0, 2]]
//	algorithms: [merge, quick, counting]
//	sizes: [1000, 100000]
//	patterns: [random, sorted, few-unique]
//	trials: 5
//	workers: 4
//	max_value: 65535
//	pivot: median3
//	seed: 42
type Config struct {
	Samples        [][]int            `yaml:"samples"`
	Algorithms     []string           `yaml:"algorithms"`
	Sizes          []int              `yaml:"sizes"`
	Patterns       []workload.Pattern `yaml:"patterns"`
	Trials         int                `yaml:"trials"`
	Workers        int                `yaml:"workers"`
	MaxValue       int                `yaml:"max_value"`
	QuadraticLimit int                `yaml:"quadratic_limit"`
	Pivot          string             `yaml:"pivot"`
	Seed           uint64             `yaml:"seed"`
}

// DefaultSample is the sequence the demo sorts when no sample is given.
var DefaultSample = []int{64, 25, 12, 22, 11}

// DefaultConfig returns the configuration used when no run file is given.
func DefaultConfig() Config {
	return Config{
		Samples:        [][]int{slices.Clone(DefaultSample)},
		Algorithms:     lo.Map(sorts.Algorithms(), func(a sorts.Algorithm, _ int) string { return a.Name }),
		Sizes:          []int{100, 1000, 10000},
		Patterns:       []workload.Pattern{workload.Random, workload.Sorted, workload.Reverse},
		Trials:         3,
		Workers:        1,
		MaxValue:       1 << 16,
		QuadraticLimit: 20000,
		Seed:           1,
	}
}

// LoadConfig reads a YAML run file. Keys missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "validating %s", path)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Trials < 1 {
		return errors.Errorf("trials must be at least 1, got %d", c.Trials)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.MaxValue < 0 {
		return errors.Errorf("max_value must not be negative, got %d", c.MaxValue)
	}
	if n, bad := lo.Find(c.Sizes, func(n int) bool { return n < 0 }); bad {
		return errors.Errorf("sizes must not be negative, got %d", n)
	}
	for _, name := range c.Algorithms {
		if _, err := sorts.Lookup(name); err != nil {
			return err
		}
	}
	if c.Pivot != "" {
		if _, err := sorts.ParsePivot(c.Pivot); err != nil {
			return err
		}
	}
	return nil
}

// Selected resolves the configured algorithm names. Quicksort uses the given
// pivot strategy.
func (c Config) Selected(pivot sorts.PivotStrategy) ([]sorts.Algorithm, error) {
	names := lo.Uniq(c.Algorithms)
	out := make([]sorts.Algorithm, 0, len(names))
	for _, name := range names {
		a, err := sorts.Lookup(name)
		if err != nil {
			return nil, err
		}
		if a.Name == "quick" {
			if a, err = sorts.QuickWithPivot(pivot); err != nil {
				return nil, err
			}
		}
		out = append(out, a)
	}
	return out, nil
}
