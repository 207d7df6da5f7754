// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/gblas/pkg/blas"
	"github.com/janpfeifer/must"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

// benchReportEvery is the number of scans between progress bar updates.
const benchReportEvery = 100

// bench times cfg.benchIterations scans over r.x, displaying a progress bar.
func bench(r *scanResult, cfg *config) {
	if r.n == 0 {
		klog.Warningf("Skipping benchmark of empty vector %q", r.name)
		return
	}
	bar := progressbar.NewOptions(cfg.benchIterations,
		progressbar.OptionSetDescription(fmt.Sprintf("Benchmarking %q", r.name)),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("scans"),
		progressbar.OptionSetTheme(progressbar.ThemeASCII),
		progressbar.OptionClearOnFinish(),
	)
	var elapsed time.Duration
	for done := 0; done < cfg.benchIterations; {
		count := min(benchReportEvery, cfg.benchIterations-done)
		start := time.Now()
		for range count {
			_ = must.M1(blas.IamaxAny(r.n, r.x, cfg.inc, cfg.mode))
		}
		elapsed += time.Since(start)
		done += count
		_ = bar.Add(count)
	}
	_ = bar.Finish()

	perElement := float64(elapsed.Nanoseconds()) / float64(cfg.benchIterations) / float64(r.n)
	fmt.Printf("%s: %s scans of %s elements in %s, %.3f ns/element\n", r.name,
		humanize.Comma(int64(cfg.benchIterations)), humanize.Comma(int64(r.n)), elapsed, perElement)
}
