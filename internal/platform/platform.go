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

// Package platform describes the host a benchmark runs on.
package platform

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Info is a snapshot of the host.
type Info struct {
	GOOS     string
	GOARCH   string
	NumCPU   int
	MaxProcs int

	// Features lists CPU features relevant to integer sorting throughput,
	// lower-case, in a fixed order. Empty when detection is unavailable or
	// disabled with SORTS_NO_CPU_DETECT.
	Features []string
}

// NoDetectEnv reports whether SORTS_NO_CPU_DETECT is set. When set, Detect
// skips CPU feature detection, which keeps benchmark headers identical
// across machines.
func NoDetectEnv() bool {
	val := os.Getenv("SORTS_NO_CPU_DETECT")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Detect returns the current host description.
func Detect() Info {
	info := Info{
		GOOS:     runtime.GOOS,
		GOARCH:   runtime.GOARCH,
		NumCPU:   runtime.NumCPU(),
		MaxProcs: runtime.GOMAXPROCS(0),
	}
	if !NoDetectEnv() {
		info.Features = cpuFeatures()
	}
	return info
}

// String formats the host as "linux/amd64, 8 cpus (gomaxprocs 8), avx2 bmi2".
func (i Info) String() string {
	s := fmt.Sprintf("%s/%s, %d cpus (gomaxprocs %d)", i.GOOS, i.GOARCH, i.NumCPU, i.MaxProcs)
	if len(i.Features) > 0 {
		s += ", " + strings.Join(i.Features, " ")
	}
	return s
}

// Describe is shorthand for Detect().String().
func Describe() string {
	return Detect().String()
}

type feature struct {
	name    string
	present bool
}

func present(fs []feature) []string {
	var out []string
	for _, f := range fs {
		if f.present {
			out = append(out, f.name)
		}
	}
	return out
}
