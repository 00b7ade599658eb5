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
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/twmb/algoimpl/go/various"

	"github.com/ajroetker/go-sorting/sorts"
)

func newDemoCmd(a *app) *cobra.Command {
	var sample []int
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Sort a sample with every algorithm, each on its own copy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			samples := a.cfg.Samples
			if cmd.Flags().Changed("sample") {
				samples = [][]int{sample}
			}
			algos, err := a.cfg.Selected(a.pivot)
			if err != nil {
				return err
			}
			for _, s := range samples {
				a.demo(cmd.OutOrStdout(), s, algos)
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&sample, "sample", DefaultSample, "comma-separated integers to sort")
	return cmd
}

// demo prints the result of every algorithm on sample. The sample itself is
// never modified.
func (a *app) demo(w io.Writer, sample []int, algos []sorts.Algorithm) {
	heading := color.New(color.Bold)
	heading.Fprintf(w, "Sample %v (%d elements, %d inversions)\n", sample, len(sample), inversions(sample))

	width := 0
	for _, algo := range algos {
		width = max(width, len(algo.Name))
	}
	for _, algo := range algos {
		data := slices.Clone(sample)
		var st sorts.Stats
		err := algo.Sort(data, &st)
		label := algo.Name + strings.Repeat(" ", width-len(algo.Name))
		if err != nil {
			color.New(color.FgRed).Fprintf(w, "  %s  error: %v\n", label, err)
			a.log.WithFields(logrus.Fields{"algorithm": algo.Name, "sample": sample}).WithError(err).Warn("sort failed")
			continue
		}
		fmt.Fprintf(w, "  %s  %v\n", label, data)
		a.log.WithFields(logrus.Fields{
			"algorithm":   algo.Name,
			"comparisons": st.Comparisons,
			"swaps":       st.Swaps,
			"writes":      st.Writes,
		}).Debug("sorted sample")
	}
}

// inversions counts the pairs i < j with sample[i] > sample[j].
// various.Inversions also counts equal pairs, so those are subtracted.
func inversions(sample []int) int {
	n := various.Inversions(sample)
	for _, c := range lo.CountValues(sample) {
		n -= c * (c - 1) / 2
	}
	return n
}
