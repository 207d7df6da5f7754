// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package blas

// Mode selects how Iamax treats NaN values.
type Mode int

const (
	// CheckNaN guarantees that the first NaN wins over any Inf or finite value, wherever it is.
	// It is the zero value.
	CheckNaN Mode = iota

	// QuietNaN assumes the caller guarantees there are no NaNs. If there are, the returned index
	// is unspecified (but always in range). Infinities are still handled.
	QuietNaN
)

//go:generate go tool enumer -type=Mode -values -text mode.go
