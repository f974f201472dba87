// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The sortbench command instruments constsort on a chosen input shape:
// it counts comparator calls, checks the result, relates the count to
// the n·log2(n) bound, and compares against golang.org/x/exp/slices as
// a baseline.
//
// Usage: sortbench [-pattern random] [-n 100000] [-trials 10] [-seed 1]
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/constsort/constsort"
	"github.com/constsort/constsort/sortpattern"
)

var patterns = map[string]func(n int, seed int64) []int{
	"random":       sortpattern.Random,
	"ascending":    func(n int, _ int64) []int { return sortpattern.Ascending(n) },
	"descending":   func(n int, _ int64) []int { return sortpattern.Descending(n) },
	"organpipe":    func(n int, _ int64) []int { return sortpattern.OrganPipe(n) },
	"sawtooth":     func(n int, _ int64) []int { return sortpattern.Sawtooth(n, 16) },
	"duplicates":   func(n int, seed int64) []int { return sortpattern.Duplicates(n, 8, seed) },
	"allequal":     func(n int, _ int64) []int { return sortpattern.AllEqual(n) },
	"mixed":        sortpattern.Mixed,
	"mediankiller": func(n int, _ int64) []int { return sortpattern.MedianKiller(n) },
}

func main() {
	var (
		pattern  = flag.String("pattern", "random", "input shape to sort")
		n        = flag.Int("n", 100000, "number of elements")
		trials   = flag.Int("trials", 10, "number of runs, seeds seed..seed+trials-1")
		seed     = flag.Int64("seed", 1, "base seed for randomized shapes")
		baseline = flag.Bool("baseline", true, "also measure golang.org/x/exp/slices.SortFunc")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: sortbench [flags]\nPatterns:")
		for name := range patterns {
			fmt.Fprintf(flag.CommandLine.Output(), " %s", name)
		}
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
	}
	flag.Parse()

	gen, ok := patterns[*pattern]
	if !ok {
		log.Fatalf("unknown pattern %q", *pattern)
	}
	if *n < 0 || *trials < 1 {
		log.Fatal("need -n >= 0 and -trials >= 1")
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	nLogN := math.Max(float64(*n)*math.Log2(math.Max(float64(*n), 2)), 1)

	comparisons := make([]float64, 0, *trials)
	for i := 0; i < *trials; i++ {
		data := gen(*n, *seed+int64(i))
		c := sortpattern.NewCounter(compareInt)

		start := time.Now()
		constsort.SortFunc(data, c.Compare)
		elapsed := time.Since(start)

		if !constsort.IsSorted(data) {
			logger.Error().Str("pattern", *pattern).Int("trial", i).Msg("output not sorted")
			os.Exit(1)
		}
		comparisons = append(comparisons, float64(c.Calls()))

		logger.Info().
			Str("pattern", *pattern).
			Int("n", *n).
			Int("trial", i).
			Int("comparisons", c.Calls()).
			Float64("per_nlogn", float64(c.Calls())/nLogN).
			Dur("elapsed", elapsed).
			Msg("constsort")
	}

	mean, stddev := meanStdDev(comparisons)
	logger.Info().
		Str("pattern", *pattern).
		Int("n", *n).
		Int("trials", *trials).
		Float64("mean_comparisons", mean).
		Float64("stddev_comparisons", stddev).
		Float64("mean_per_nlogn", mean/nLogN).
		Msg("constsort summary")

	if *baseline {
		data := gen(*n, *seed)
		c := sortpattern.NewCounter(compareInt)
		start := time.Now()
		slices.SortFunc(data, func(a, b int) bool { return c.Compare(a, b) < 0 })
		elapsed := time.Since(start)
		if !sort.IntsAreSorted(data) {
			log.Fatal("baseline output not sorted")
		}
		logger.Info().
			Str("pattern", *pattern).
			Int("n", *n).
			Int("comparisons", c.Calls()).
			Float64("per_nlogn", float64(c.Calls())/nLogN).
			Dur("elapsed", elapsed).
			Msg("x/exp/slices baseline")
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// meanStdDev returns the arithmetic mean and sample standard deviation
// of values; the deviation is zero for fewer than two values.
func meanStdDev(values []float64) (mean, stddev float64) {
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	if len(values) < 2 {
		return mean, 0
	}
	var ss float64
	for _, v := range values {
		ss += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(ss / float64(len(values)-1))
}
