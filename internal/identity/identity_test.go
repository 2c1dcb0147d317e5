package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestUserIDFromContextDefaultsToNil(t *testing.T) {
	if got := UserIDFromContext(context.Background()); got != uuid.Nil {
		t.Errorf("expected uuid.Nil for a bare context, got %v", got)
	}
}

func TestUnaryServerInterceptorInjectsUserID(t *testing.T) {
	id := uuid.New()
	md := metadata.Pairs(metadataKey, id.String())
	ctx := metadata.NewIncomingContext(context.Background(), md)

	info := &grpc.UnaryServerInfo{FullMethod: "/hive.v1.Sessions/List"}
	var seen uuid.UUID
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = UserIDFromContext(ctx)
		return nil, nil
	}

	if _, err := UnaryServerInterceptor(ctx, nil, info, handler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != id {
		t.Errorf("expected handler to see user id %v, got %v", id, seen)
	}
}

func TestUnaryServerInterceptorRejectsMissingMetadata(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/hive.v1.Sessions/List"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called without valid metadata")
		return nil, nil
	}

	_, err := UnaryServerInterceptor(context.Background(), nil, info, handler)
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("expected Unauthenticated, got %v", err)
	}
}

func TestUnaryServerInterceptorExemptsValidateApiKey(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/hive.v1.Auth/ValidateApiKey"}
	called := false
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		return nil, nil
	}

	if _, err := UnaryServerInterceptor(context.Background(), nil, info, handler); err != nil {
		t.Fatalf("unexpected error for exempt method: %v", err)
	}
	if !called {
		t.Error("expected handler to be invoked for the exempt method even without metadata")
	}
}

func TestUnaryServerInterceptorRejectsInvalidUUID(t *testing.T) {
	md := metadata.Pairs(metadataKey, "not-a-uuid")
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: "/hive.v1.Sessions/List"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) { return nil, nil }

	_, err := UnaryServerInterceptor(ctx, nil, info, handler)
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("expected Unauthenticated for an invalid uuid, got %v", err)
	}
}
