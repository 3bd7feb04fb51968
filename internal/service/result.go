// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Result folds a fallible step into a single value that later steps can chain
// on. Lifecycle operations are sequences of encrypt / remote / cache steps
// where any failure must short-circuit the rest; chaining through Result keeps
// each operation a flat pipeline instead of a ladder of error checks.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail wraps a failure.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Unwrap returns the value and error in conventional Go form.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Err returns the failure, or nil.
func (r Result[T]) Err() error {
	return r.err
}

// AndThen runs fn on a successful value; failures pass through untouched.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return fn(r.value)
}

// Map transforms a successful value with an infallible fn.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return Ok(fn(r.value))
}

// Fold reduces the result to one of two branches.
func Fold[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.err != nil {
		return onErr(r.err)
	}
	return onOk(r.value)
}
