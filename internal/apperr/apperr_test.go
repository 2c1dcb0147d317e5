package apperr

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatusMapsKnownKinds(t *testing.T) {
	cases := []struct {
		kind Kind
		want codes.Code
	}{
		{NotFound, codes.NotFound},
		{Unauthorized, codes.PermissionDenied},
		{AuthFailure, codes.Unauthenticated},
		{InvalidArgument, codes.InvalidArgument},
		{SessionNotActive, codes.FailedPrecondition},
		{StoreError, codes.Internal},
		{Unknown, codes.Internal},
	}

	for _, c := range cases {
		err := New(c.kind, "boom")
		got := status.Code(ToStatus(err))
		if got != c.want {
			t.Errorf("kind %d: expected code %v, got %v", c.kind, c.want, got)
		}
	}
}

func TestToStatusFallsBackForPlainErrors(t *testing.T) {
	got := status.Code(ToStatus(errors.New("unclassified failure")))
	if got != codes.Internal {
		t.Errorf("expected Internal for a plain error, got %v", got)
	}
}

func TestToStatusNilIsNil(t *testing.T) {
	if ToStatus(nil) != nil {
		t.Error("expected ToStatus(nil) to return nil")
	}
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	inner := New(NotFound, "missing")
	wrapped := fmt.Errorf("outer: %w", inner)
	if KindOf(wrapped) != NotFound {
		t.Errorf("expected KindOf to report NotFound, got %d", KindOf(wrapped))
	}
}

func TestKindOfUnknownForPlainError(t *testing.T) {
	if KindOf(errors.New("plain")) != Unknown {
		t.Error("expected KindOf to report Unknown for a plain error")
	}
}
