// Package identity carries the caller's user identity through a request.
// Every non-auth RPC requires metadata key "x-user-id" carrying a UUID
// string; the interceptors here extract and validate it once so service
// implementations can just call UserIDFromContext.
package identity

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const metadataKey = "x-user-id"

// exemptMethods lists full gRPC method names that run before a caller has
// a user identity at all — Auth.ValidateApiKey is how one gets minted in
// the first place, so it cannot itself require x-user-id.
var exemptMethods = map[string]bool{
	"/hive.v1.Auth/ValidateApiKey": true,
}

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the caller's user ID, set by the
// interceptors below. It returns uuid.Nil if none was set, which should
// only happen for RPCs listed in exemptMethods (Auth.ValidateApiKey).
func UserIDFromContext(ctx context.Context) uuid.UUID {
	if v, ok := ctx.Value(userIDKey).(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}

func extractUserID(ctx context.Context) (uuid.UUID, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "missing request metadata")
	}
	values := md.Get(metadataKey)
	if len(values) == 0 || values[0] == "" {
		return uuid.Nil, status.Errorf(codes.Unauthenticated, "missing %s metadata", metadataKey)
	}
	id, err := uuid.Parse(values[0])
	if err != nil {
		return uuid.Nil, status.Errorf(codes.Unauthenticated, "invalid %s metadata: %v", metadataKey, err)
	}
	return id, nil
}

// UnaryServerInterceptor injects the caller's user ID into the context for
// unary RPCs, rejecting the call with Unauthenticated if it is missing or
// malformed.
func UnaryServerInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if exemptMethods[info.FullMethod] {
		return handler(ctx)
	}
	id, err := extractUserID(ctx)
	if err != nil {
		return nil, err
	}
	return handler(context.WithValue(ctx, userIDKey, id))
}

// wrappedStream overrides Context() so handlers see the identity-bearing
// context via ss.Context() exactly as they would in a unary call.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context { return w.ctx }

// StreamServerInterceptor injects the caller's user ID into the context
// for streaming RPCs (notably Terminal.Attach).
func StreamServerInterceptor(srv interface{}, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	id, err := extractUserID(ss.Context())
	if err != nil {
		return err
	}
	return handler(srv, &wrappedStream{ServerStream: ss, ctx: context.WithValue(ss.Context(), userIDKey, id)})
}
