/*
Copyright 2026 The Crossdata Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package vterrors provides errors that carry a canonical error code and an
// optional State.
//
// The code space is the one used by gRPC (google.golang.org/grpc/codes), so
// errors can cross process boundaries without translation. The State gives a
// finer, SQL flavored classification that callers can use to build user
// facing messages, e.g. NoSuchTable or DupKeyName.
//
// Errors are created with New, Errorf or NewErrorf and annotated with Wrap or
// Wrapf. Code and ErrState extract the code and state from any error,
// including errors from other packages that implement ErrorWithCode or
// ErrorWithState.
package vterrors

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
)

type vtError struct {
	code  codes.Code
	state State
	msg   string
	cause error
}

// New returns an error with the supplied message and code.
func New(code codes.Code, message string) error {
	return &vtError{
		code: code,
		msg:  message,
	}
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error.
func Errorf(code codes.Code, format string, args ...any) error {
	return &vtError{
		code: code,
		msg:  fmt.Sprintf(format, args...),
	}
}

// NewErrorf formats according to a format specifier and returns the string as
// a value that satisfies error. It also sets the State of the error.
func NewErrorf(code codes.Code, state State, format string, args ...any) error {
	return &vtError{
		code:  code,
		state: state,
		msg:   fmt.Sprintf(format, args...),
	}
}

func (e *vtError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *vtError) Unwrap() error {
	return e.cause
}

// ErrorCode implements ErrorWithCode.
func (e *vtError) ErrorCode() codes.Code {
	return e.code
}

// ErrorState implements ErrorWithState.
func (e *vtError) ErrorState() State {
	return e.state
}

// Wrap returns an error annotating err with message. The code and state of
// err are preserved. If err is nil, Wrap returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &vtError{
		code:  Code(err),
		state: ErrState(err),
		msg:   message,
		cause: err,
	}
}

// Wrapf returns an error annotating err with the format specifier. If err is
// nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Code returns the error code if it's a vtError. If err is nil, it returns
// OK. Context errors are mapped to their canonical codes.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	var withCode ErrorWithCode
	if errors.As(err, &withCode) {
		return withCode.ErrorCode()
	}
	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	}
	return codes.Unknown
}

// ErrState returns the error state if it's a vtError. If err is nil or
// carries no state, it returns Undefined.
func ErrState(err error) State {
	var withState ErrorWithState
	if errors.As(err, &withState) {
		return withState.ErrorState()
	}
	return Undefined
}
