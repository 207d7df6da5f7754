// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// gblas_iamax loads vectors from a CSV or MATLAB file and reports, for each of them, the
// index of the element of largest magnitude as computed by blas.Iamax.
//
// Usage:
//
//	gblas_iamax [flags] <file.csv|file.mat>
//
// Each CSV column is a vector (or, with -complex, each pair of columns is the real and
// imaginary parts of a complex vector). For MATLAB files, -var selects the variable.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/gblas/pkg/blas"
	"github.com/gomlx/gblas/pkg/core/dtypes"
	"github.com/gomlx/gblas/pkg/support/fsutil"
	"github.com/gomlx/gblas/pkg/support/sets"
	"github.com/gomlx/gblas/pkg/support/xslices"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagFormat = flag.String("format", "", "Input format, \"csv\" or \"mat\". "+
		"If empty it is taken from the file extension.")
	flagVars = xslices.Flag("var", nil, "Comma-separated names of the variables to read from a "+
		"MATLAB (.mat) file.", parseVarName)
	flagComplex = flag.Bool("complex", false, "Pair CSV columns (0,1), (2,3), ... as the real and "+
		"imaginary parts of complex vectors.")
	flagDType = flag.String("dtype", "", "DType to convert the vectors to before the scan: one of "+
		"float16, bfloat16, float32, float64, complex64 or complex128. "+
		"Defaults to float64, or complex128 with -complex.")
	flagInc   = flag.Int("inc", 1, "Stride between the elements scanned: only every -inc element is considered.")
	flagMode  = flag.String("mode", blas.CheckNaN.String(), "Either CheckNaN or QuietNaN.")
	flagBench = flag.Int("bench", 0, "If > 0, time this many scans of each vector.")
	flagColor = flag.Bool("color", true, "Use colors in the report, if the terminal supports it.")
)

// config holds the validated command-line flags.
type config struct {
	path, format    string
	varNames        []string
	isComplex       bool
	dtype           dtypes.DType
	inc             int
	mode            blas.Mode
	benchIterations int
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		klog.Errorf("Missing file to read vectors from. See 'gblas_iamax -help'.")
		os.Exit(1)
	}
	if len(args) > 1 {
		klog.Errorf("Too many arguments. See 'gblas_iamax -help'.")
		os.Exit(1)
	}
	if !*flagColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	cfg, err := parseConfig(args[0])
	if err != nil {
		klog.Errorf("%v", err)
		os.Exit(1)
	}
	if err := run(cfg); err != nil {
		klog.Errorf("%+v", err)
		os.Exit(1)
	}
}

// parseConfig validates the flags for the input file path.
func parseConfig(path string) (*config, error) {
	path, err := fsutil.ReplaceTilde(path)
	if err != nil {
		return nil, err
	}
	cfg := &config{
		path:            path,
		format:          strings.ToLower(*flagFormat),
		varNames:        *flagVars,
		isComplex:       *flagComplex,
		inc:             *flagInc,
		benchIterations: *flagBench,
	}
	if cfg.format == "" {
		cfg.format = "csv"
		if strings.EqualFold(filepath.Ext(path), ".mat") {
			cfg.format = "mat"
		}
	}
	switch cfg.format {
	case "csv":
	case "mat":
		if len(cfg.varNames) == 0 {
			return nil, errors.New("-var is required to read MATLAB files")
		}
		if dups := sets.Duplicates(cfg.varNames); len(dups) > 0 {
			return nil, errors.Errorf("-var lists %q more than once", dups[0])
		}
		if cfg.isComplex {
			return nil, errors.New("-complex is only supported for CSV files")
		}
	default:
		return nil, errors.Errorf("unknown -format=%q, use \"csv\" or \"mat\"", cfg.format)
	}
	if cfg.inc <= 0 {
		return nil, errors.Errorf("-inc must be positive, got %d", cfg.inc)
	}

	if cfg.mode, err = blas.ModeString(*flagMode); err != nil {
		return nil, errors.Wrapf(err, "invalid -mode")
	}

	cfg.dtype = dtypes.Float64
	if cfg.isComplex {
		cfg.dtype = dtypes.Complex128
	}
	if *flagDType != "" {
		if cfg.dtype, err = dtypes.FromName(*flagDType); err != nil {
			return nil, errors.Wrapf(err, "invalid -dtype")
		}
	}
	if cfg.isComplex && !cfg.dtype.IsComplex() {
		return nil, errors.Errorf("-complex vectors can't be converted to -dtype=%s", cfg.dtype)
	}
	return cfg, nil
}

func parseVarName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("empty variable name")
	}
	return name, nil
}

func run(cfg *config) error {
	vectors, err := loadVectors(cfg)
	if err != nil {
		return err
	}
	if len(vectors) == 0 {
		return errors.Errorf("no vectors found in %q", cfg.path)
	}
	klog.V(1).Infof("Loaded %d vectors from %q", len(vectors), cfg.path)

	// The kernels are safe for concurrent use: scan all vectors in parallel.
	type scanned struct {
		r   *scanResult
		err error
	}
	results := xslices.MapParallel(vectors, func(v namedVector) scanned {
		r, err := scan(v, cfg)
		return scanned{r, err}
	})

	fmt.Println(titleStyle.Render(fmt.Sprintf("Iamax (%s, %s, inc=%d)", cfg.dtype, cfg.mode, cfg.inc)))
	for _, result := range results {
		if result.err != nil {
			return result.err
		}
		r := result.r
		fmt.Println(reportTable(r).Render())
		if cfg.benchIterations > 0 {
			bench(r, cfg)
		}
	}
	return nil
}
