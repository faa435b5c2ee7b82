// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides helper functions for logging and panicking on
// errors, and the [ContractError] type used to report caller misuse of
// the mesh generation API.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
)

// New is a re-export of [errors.New] so that this package can be
// imported in place of the standard one.
func New(text string) error {
	return errors.New(text)
}

// Is is a re-export of [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a re-export of [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// ErrContract is matched by every [ContractError] through [errors.Is].
var ErrContract = errors.New("contract violation")

// ContractError reports a programmer error in the use of the API:
// mismatched attribute lengths, an unsupported sink topology,
// inconsistent attribute presence, or reuse of a spent buffer.
type ContractError struct {
	// Op is the operation that detected the violation.
	Op string

	// Msg describes the violation.
	Msg string
}

// Contract returns a new [ContractError] for the given operation
// with a formatted message.
func Contract(op, format string, args ...any) *ContractError {
	return &ContractError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrContract, e.Msg)
}

// Is reports whether target is [ErrContract].
func (e *ContractError) Is(target error) bool {
	return target == ErrContract
}

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Must takes the given error and panics if it is non-nil.
// The intended usage is:
//
//	errors.Must(MyFunc(v))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil. The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
