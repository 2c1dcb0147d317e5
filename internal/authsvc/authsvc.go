// Package authsvc implements the Auth gRPC service: resolving an opaque
// API key to a user identity.
package authsvc

import (
	"context"
	"log/slog"

	"github.com/alexmakeev/hive-server/internal/pb"
	"github.com/alexmakeev/hive-server/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service implements pb.AuthServer.
type Service struct {
	pb.UnimplementedAuthServer
	repo store.Repository
}

// New returns a Service backed by repo.
func New(repo store.Repository) *Service {
	return &Service{repo: repo}
}

// ValidateApiKey resolves a key to a user identity by hash lookup. An
// unknown key is not an error: it is reported as {valid: false}.
func (s *Service) ValidateApiKey(ctx context.Context, req *pb.ValidateApiKeyRequest) (*pb.ValidateApiKeyResponse, error) {
	key, user, err := s.repo.ValidateAPIKey(ctx, req.GetApiKey())
	if err != nil {
		slog.Error("authsvc: database error validating api key", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	if key == nil || user == nil {
		slog.Info("authsvc: invalid api key attempted")
		return &pb.ValidateApiKeyResponse{Valid: false}, nil
	}

	slog.Info("authsvc: api key validated", "user_id", user.ID, "username", user.Username)
	return &pb.ValidateApiKeyResponse{
		Valid:    true,
		UserId:   user.ID.String(),
		Username: user.Username,
	}, nil
}
