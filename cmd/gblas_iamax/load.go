// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"os"

	"github.com/daniellowtw/matlab"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/gomlx/gblas/pkg/core/dtypes"
	"github.com/gomlx/gblas/pkg/core/dtypes/bfloat16"
	"github.com/gomlx/gblas/pkg/support/fsutil"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// namedVector is a vector as read from the input, before conversion to the scan dtype.
type namedVector struct {
	Name string
	Re   []float64

	// Im is nil for real vectors.
	Im []float64
}

func (v namedVector) Len() int { return len(v.Re) }

func (v namedVector) IsComplex() bool { return v.Im != nil }

func loadVectors(cfg *config) ([]namedVector, error) {
	exists, err := fsutil.FileExists(cfg.path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.Errorf("file %q not found", cfg.path)
	}
	f, err := os.Open(cfg.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %q", cfg.path)
	}
	defer func() { _ = f.Close() }()

	var vectors []namedVector
	if cfg.format == "mat" {
		vectors, err = loadMat(f, cfg.varNames)
	} else {
		vectors, err = loadCSV(f, cfg.isComplex)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "while reading %q", cfg.path)
	}
	return vectors, nil
}

// loadCSV reads one vector per column. The header row names the vectors, and every value is
// parsed as a float: "NaN", "Inf" and "-Inf" are accepted.
func loadCSV(r io.Reader, complexPairs bool) ([]namedVector, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float))
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "failed to parse CSV")
	}
	names := df.Names()
	if !complexPairs {
		vectors := make([]namedVector, 0, len(names))
		for _, name := range names {
			vectors = append(vectors, namedVector{Name: name, Re: df.Col(name).Float()})
		}
		return vectors, nil
	}

	if len(names)%2 != 0 {
		return nil, errors.Errorf("complex vectors need an even number of columns (real, imaginary), got %d", len(names))
	}
	vectors := make([]namedVector, 0, len(names)/2)
	for ii := 0; ii < len(names); ii += 2 {
		vectors = append(vectors, namedVector{
			Name: names[ii] + "+i·" + names[ii+1],
			Re:   df.Col(names[ii]).Float(),
			Im:   df.Col(names[ii+1]).Float(),
		})
	}
	return vectors, nil
}

// loadMat reads each of the variables varNames of a MATLAB file as one flat vector, with the
// values in the file's order.
func loadMat(r io.Reader, varNames []string) ([]namedVector, error) {
	matFile, err := matlab.NewFileFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse MATLAB file")
	}
	vectors := make([]namedVector, 0, len(varNames))
	for _, varName := range varNames {
		matVar, found := matFile.GetVar(varName)
		if !found {
			return nil, errors.Errorf("variable %q not found in MATLAB file", varName)
		}
		values, err := matValuesToFloat64(matVar.Value())
		if err != nil {
			return nil, errors.WithMessagef(err, "variable %q", varName)
		}
		vectors = append(vectors, namedVector{Name: varName, Re: values})
	}
	return vectors, nil
}

// matValuesToFloat64 converts the numeric values decoded from a MATLAB variable.
func matValuesToFloat64(values []interface{}) ([]float64, error) {
	result := make([]float64, len(values))
	for ii, value := range values {
		switch v := value.(type) {
		case float64:
			result[ii] = v
		case float32:
			result[ii] = float64(v)
		case int8:
			result[ii] = float64(v)
		case uint8:
			result[ii] = float64(v)
		case int16:
			result[ii] = float64(v)
		case uint16:
			result[ii] = float64(v)
		case int32:
			result[ii] = float64(v)
		case uint32:
			result[ii] = float64(v)
		case int64:
			result[ii] = float64(v)
		case uint64:
			result[ii] = float64(v)
		default:
			return nil, errors.Errorf("element #%d has non-numeric type %T", ii, value)
		}
	}
	return result, nil
}

// toDType converts v to a slice of the Go type of dtype, e.g. []float16.Float16 for
// dtypes.Float16.
func toDType(v namedVector, dtype dtypes.DType) (any, error) {
	if v.IsComplex() && !dtype.IsComplex() {
		return nil, errors.Errorf("can't convert complex vector %q to %s", v.Name, dtype)
	}
	im := func(ii int) float64 {
		if v.Im == nil {
			return 0
		}
		return v.Im[ii]
	}
	switch dtype {
	case dtypes.Float16:
		return convert(v.Re, func(ii int, re float64) float16.Float16 { return float16.Fromfloat32(float32(re)) }), nil
	case dtypes.BFloat16:
		return convert(v.Re, func(ii int, re float64) bfloat16.BFloat16 { return bfloat16.FromFloat64(re) }), nil
	case dtypes.Float32:
		return convert(v.Re, func(ii int, re float64) float32 { return float32(re) }), nil
	case dtypes.Float64:
		return convert(v.Re, func(ii int, re float64) float64 { return re }), nil
	case dtypes.Complex64:
		return convert(v.Re, func(ii int, re float64) complex64 { return complex64(complex(re, im(ii))) }), nil
	case dtypes.Complex128:
		return convert(v.Re, func(ii int, re float64) complex128 { return complex(re, im(ii)) }), nil
	}
	return nil, errors.Errorf("dtype %s not supported", dtype)
}

func convert[T any](re []float64, fn func(ii int, re float64) T) []T {
	result := make([]T, len(re))
	for ii, value := range re {
		result[ii] = fn(ii, value)
	}
	return result
}
