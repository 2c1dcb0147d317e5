// Package apperr defines the error taxonomy shared by every service in
// hive-server and maps it onto gRPC status codes at the RPC boundary.
package apperr

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind classifies an Error so callers can branch on failure category
// without string-matching messages.
type Kind int

const (
	Unknown Kind = iota
	NotFound
	Unauthorized
	InvalidArgument
	SshError
	AuthFailure
	SessionNotActive
	StoreError
	Io
	Config
)

// Error wraps a Kind with a human-readable message and, usually, the
// underlying cause that produced it.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an Error around an existing cause, following the
// `fmt.Errorf("...: %w", err)` convention used throughout the store layer.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf extracts the Kind from err if it is (or wraps) an *Error, and
// Unknown otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// ToStatus converts any error into a gRPC status, translating known Kinds
// to their matching code and falling back to Internal for everything else.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, err.Error())
	}

	switch e.Kind {
	case NotFound:
		return status.Error(codes.NotFound, e.Message)
	case Unauthorized:
		return status.Error(codes.PermissionDenied, e.Message)
	case AuthFailure:
		return status.Error(codes.Unauthenticated, e.Message)
	case InvalidArgument:
		return status.Error(codes.InvalidArgument, e.Message)
	case SessionNotActive:
		return status.Error(codes.FailedPrecondition, e.Message)
	case SshError, StoreError, Io, Config, Unknown:
		return status.Error(codes.Internal, e.Error())
	default:
		return status.Error(codes.Internal, e.Error())
	}
}
