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

package connector

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"

	"github.com/vikasyadav15/crossdata/go/vt/names"
	"github.com/vikasyadav15/crossdata/go/vt/vterrors"
)

// ConnectionError reports that a cluster connection could not be
// established or used.
type ConnectionError struct {
	Cluster names.ClusterName
	Message string
	Cause   error
}

// NewConnectionError returns a ConnectionError for cluster, caused by cause
// which may be nil.
func NewConnectionError(cluster names.ClusterName, cause error, format string, args ...any) *ConnectionError {
	return &ConnectionError{Cluster: cluster, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *ConnectionError) Error() string {
	msg := fmt.Sprintf("cluster %s: %s", e.Cluster, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// ErrorCode implements vterrors.ErrorWithCode.
func (e *ConnectionError) ErrorCode() codes.Code {
	return codes.Unavailable
}

// ErrorState implements vterrors.ErrorWithState.
func (e *ConnectionError) ErrorState() vterrors.State {
	return vterrors.ServerNotAvailable
}

// IsConnectionError reports whether err is, or wraps, a *ConnectionError.
func IsConnectionError(err error) bool {
	var cerr *ConnectionError
	return errors.As(err, &cerr)
}

// NotConnected returns the error of an operation on a cluster that has no
// open connection.
func NotConnected(cluster names.ClusterName) error {
	return NewConnectionError(cluster, nil, "not connected")
}
