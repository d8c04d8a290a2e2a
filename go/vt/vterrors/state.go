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

package vterrors

import "google.golang.org/grpc/codes"

// State is error state
type State int

// All the error states
const (
	Undefined State = iota

	// invalid argument
	BadFieldError
	CantUseOptionHere
	WrongNameForIndex

	// failed precondition
	NoDB

	// not found
	BadDb
	NoSuchTable
	UnknownIndex

	// already exists
	DupKeyName

	// unimplemented
	NotSupportedYet

	// server not available
	ServerNotAvailable

	// No state should be added below NumOfStates
	NumOfStates
)

var stateNames = [NumOfStates]string{
	Undefined:          "Undefined",
	BadFieldError:      "BadFieldError",
	CantUseOptionHere:  "CantUseOptionHere",
	WrongNameForIndex:  "WrongNameForIndex",
	NoDB:               "NoDB",
	BadDb:              "BadDb",
	NoSuchTable:        "NoSuchTable",
	UnknownIndex:       "UnknownIndex",
	DupKeyName:         "DupKeyName",
	NotSupportedYet:    "NotSupportedYet",
	ServerNotAvailable: "ServerNotAvailable",
}

func (s State) String() string {
	if s < 0 || s >= NumOfStates {
		return "Unknown"
	}
	return stateNames[s]
}

// Code returns the canonical code for an error in this state.
func (s State) Code() codes.Code {
	switch s {
	case BadFieldError, CantUseOptionHere, WrongNameForIndex:
		return codes.InvalidArgument
	case NoDB:
		return codes.FailedPrecondition
	case BadDb, NoSuchTable, UnknownIndex:
		return codes.NotFound
	case DupKeyName:
		return codes.AlreadyExists
	case NotSupportedYet:
		return codes.Unimplemented
	case ServerNotAvailable:
		return codes.Unavailable
	}
	return codes.Unknown
}

// ErrorWithState is used to return the error State is such can be found
type ErrorWithState interface {
	ErrorState() State
}

// ErrorWithCode returns the grpc code
type ErrorWithCode interface {
	ErrorCode() codes.Code
}
