// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package xslices provides generic slice helpers missing from the standard slices package.
package xslices

import (
	"flag"
	"fmt"
	"runtime"
	"strings"
	"sync"
)

// Map returns fn applied to every element of in, in order.
func Map[In, Out any](in []In, fn func(e In) Out) []Out {
	out := make([]Out, len(in))
	for ii, e := range in {
		out[ii] = fn(e)
	}
	return out
}

// MapParallel is like Map, but runs fn on at most runtime.NumCPU goroutines. fn must be safe
// for concurrent use. The order of the calls is not defined, but out[ii] = fn(in[ii]).
func MapParallel[In, Out any](in []In, fn func(e In) Out) []Out {
	workers := min(runtime.NumCPU(), len(in))
	if workers <= 1 {
		return Map(in, fn)
	}
	out := make([]Out, len(in))
	indices := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for ii := range indices {
				out[ii] = fn(in[ii])
			}
		}()
	}
	for ii := range in {
		indices <- ii
	}
	close(indices)
	wg.Wait()
	return out
}

// Flag defines a flag holding a comma-separated list of T, each parsed with parserFn.
// It returns a pointer to the parsed slice, as flag.String does.
func Flag[T any](name string, defaultValue []T, usage string,
	parserFn func(valueStr string) (T, error)) *[]T {
	f := &sliceFlag[T]{values: defaultValue, parserFn: parserFn}
	flag.Var(f, name, usage)
	return &f.values
}

// sliceFlag implements flag.Value for []T.
type sliceFlag[T any] struct {
	values   []T
	parserFn func(valueStr string) (T, error)
}

func (f *sliceFlag[T]) String() string {
	if f == nil {
		return ""
	}
	return strings.Join(Map(f.values, func(v T) string { return fmt.Sprint(v) }), ",")
}

func (f *sliceFlag[T]) Set(listStr string) error {
	f.values = make([]T, 0)
	if listStr == "" {
		return nil
	}
	for _, part := range strings.Split(listStr, ",") {
		v, err := f.parserFn(part)
		if err != nil {
			return err
		}
		f.values = append(f.values, v)
	}
	return nil
}
